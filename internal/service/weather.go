package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
)

// MsgCityUnavailable is returned for the sentinel city in any casing.
const MsgCityUnavailable = "City data is currently unavailable."

// sentinelCity deterministically fails a lookup; useful for demoing the
// error path without pulling the network plug.
const sentinelCity = "errorcity"

// Reading is one weather observation as the backend would report it.
type Reading struct {
	City        string
	Temperature string
	Condition   string
	Wind        string
	Estimated   bool   // set when the city was not in the lookup table
	Suggestion  string // nearest known city, only set alongside Estimated
}

type cityReading struct {
	key     string // lowercase needle matched against the query
	display string
	reading Reading
}

// knownCities is the fixed lookup table. Matching is a case-insensitive
// substring test, so "South London" still resolves to London.
var knownCities = []cityReading{
	{key: "hyderabad", display: "Hyderabad", reading: Reading{Temperature: "31°C", Condition: "Sunny", Wind: "11 km/h"}},
	{key: "london", display: "London", reading: Reading{Temperature: "12°C", Condition: "Cloudy", Wind: "15 km/h"}},
	{key: "new york", display: "New York", reading: Reading{Temperature: "18°C", Condition: "Windy", Wind: "22 km/h"}},
}

// fallbackConditions seeds the randomized reading for unknown cities.
var fallbackConditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Windy"}

// WeatherService answers city lookups from a canned table after a fixed
// simulated delay.
type WeatherService struct {
	latency time.Duration
	clock   Clock

	mu  sync.Mutex
	rng *rand.Rand
}

// NewWeatherService builds a weather backend. A nil clock means real timers;
// a nil rng means time-seeded randomness for the unknown-city fallback.
func NewWeatherService(latency time.Duration, clock Clock, rng *rand.Rand) *WeatherService {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &WeatherService{latency: latency, clock: clock, rng: rng}
}

// Fetch resolves a reading for the given city. The sentinel city fails with
// MsgCityUnavailable; cities outside the table get a randomized but plausible
// estimate plus a nearest-city suggestion.
func (s *WeatherService) Fetch(ctx context.Context, city string) (Reading, error) {
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return Reading{}, err
	}

	norm := strings.ToLower(strings.TrimSpace(city))
	if norm == sentinelCity {
		return Reading{}, &ServiceUnavailableError{Message: MsgCityUnavailable}
	}
	for _, c := range knownCities {
		if strings.Contains(norm, c.key) {
			r := c.reading
			r.City = c.display
			return r, nil
		}
	}

	s.mu.Lock()
	temp := 15 + s.rng.Intn(21)
	cond := fallbackConditions[s.rng.Intn(len(fallbackConditions))]
	wind := 4 + s.rng.Intn(27)
	s.mu.Unlock()

	return Reading{
		City:        strings.TrimSpace(city),
		Temperature: fmt.Sprintf("%d°C", temp),
		Condition:   cond,
		Wind:        fmt.Sprintf("%d km/h", wind),
		Estimated:   true,
		Suggestion:  nearestCity(norm),
	}, nil
}

// nearestCity returns the closest table entry within a small edit distance,
// or "" when nothing is plausibly a typo of a known city.
func nearestCity(norm string) string {
	best, bestDist := "", 4
	for _, c := range knownCities {
		if d := levenshtein.ComputeDistance(norm, c.key); d < bestDist {
			best, bestDist = c.display, d
		}
	}
	return best
}
