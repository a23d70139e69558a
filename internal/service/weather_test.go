package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestWeather() *WeatherService {
	return NewWeatherService(800*time.Millisecond, InstantClock{}, rand.New(rand.NewSource(7)))
}

func TestFetchKnownCities(t *testing.T) {
	t.Parallel()

	svc := newTestWeather()
	ctx := context.Background()

	cases := []struct {
		city string
		want Reading
	}{
		{"Hyderabad", Reading{City: "Hyderabad", Temperature: "31°C", Condition: "Sunny", Wind: "11 km/h"}},
		{"london", Reading{City: "London", Temperature: "12°C", Condition: "Cloudy", Wind: "15 km/h"}},
		{"LONDON", Reading{City: "London", Temperature: "12°C", Condition: "Cloudy", Wind: "15 km/h"}},
		{"South London", Reading{City: "London", Temperature: "12°C", Condition: "Cloudy", Wind: "15 km/h"}},
		{"New York", Reading{City: "New York", Temperature: "18°C", Condition: "Windy", Wind: "22 km/h"}},
		{"  new york  ", Reading{City: "New York", Temperature: "18°C", Condition: "Windy", Wind: "22 km/h"}},
	}
	for _, tc := range cases {
		got, err := svc.Fetch(ctx, tc.city)
		require.NoError(t, err, "city %q", tc.city)
		require.Equal(t, tc.want, got, "city %q", tc.city)
		require.False(t, got.Estimated)
	}
}

func TestFetchSentinelCityFails(t *testing.T) {
	t.Parallel()

	svc := newTestWeather()
	ctx := context.Background()

	for _, city := range []string{"errorcity", "ErrorCity", "ERRORCITY", "  errorcity  "} {
		_, err := svc.Fetch(ctx, city)
		require.Error(t, err, "city %q", city)
		require.Equal(t, MsgCityUnavailable, err.Error())
		var unavailable *ServiceUnavailableError
		require.True(t, errors.As(err, &unavailable))
	}
}

func TestFetchUnknownCityFallsBack(t *testing.T) {
	t.Parallel()

	svc := newTestWeather()
	ctx := context.Background()

	got, err := svc.Fetch(ctx, "Reykjavik")
	require.NoError(t, err)
	require.True(t, got.Estimated)
	require.Equal(t, "Reykjavik", got.City)
	require.True(t, strings.HasSuffix(got.Temperature, "°C"), "temperature %q", got.Temperature)
	require.True(t, strings.HasSuffix(got.Wind, " km/h"), "wind %q", got.Wind)
	require.Contains(t, fallbackConditions, got.Condition)
	// Nothing in the table is a near-miss of Reykjavik.
	require.Empty(t, got.Suggestion)
}

func TestFetchUnknownCitySuggestsNearMiss(t *testing.T) {
	t.Parallel()

	svc := newTestWeather()

	got, err := svc.Fetch(context.Background(), "Londn")
	require.NoError(t, err)
	require.True(t, got.Estimated)
	require.Equal(t, "London", got.Suggestion)
}

func TestFetchHonoursContextCancellation(t *testing.T) {
	t.Parallel()

	svc := NewWeatherService(time.Hour, SystemClock{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Fetch(ctx, "London")
	require.ErrorIs(t, err, context.Canceled)
}
