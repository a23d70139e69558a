package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestCurrency() *CurrencyService {
	return NewCurrencyService(800*time.Millisecond, InstantClock{})
}

func TestConvertSuccess(t *testing.T) {
	t.Parallel()

	svc := newTestCurrency()
	ctx := context.Background()

	cases := []struct {
		amount string
		target string
		want   Conversion
	}{
		{"5000", "USD", Conversion{Amount: 5000, Target: "USD", Rate: 0.012, Result: "60.00"}},
		{"5000", "usd", Conversion{Amount: 5000, Target: "USD", Rate: 0.012, Result: "60.00"}},
		{"1000", "EUR", Conversion{Amount: 1000, Target: "EUR", Rate: 0.011, Result: "11.00"}},
		{"1", "USD", Conversion{Amount: 1, Target: "USD", Rate: 0.012, Result: "0.01"}},
		{" 250.50 ", "EUR", Conversion{Amount: 250.50, Target: "EUR", Rate: 0.011, Result: "2.76"}},
	}
	for _, tc := range cases {
		got, err := svc.Convert(ctx, tc.amount, tc.target)
		require.NoError(t, err, "amount %q target %q", tc.amount, tc.target)
		require.Equal(t, tc.want, got)
	}
}

func TestConvertRejectsBadAmounts(t *testing.T) {
	t.Parallel()

	svc := newTestCurrency()
	ctx := context.Background()

	for _, amount := range []string{"", "   ", "abc", "12abc", "-5", "0", "-0.01", "NaN", "Inf"} {
		_, err := svc.Convert(ctx, amount, "USD")
		require.Error(t, err, "amount %q", amount)
		require.Equal(t, MsgInvalidAmount, err.Error())
		var validation *ValidationError
		require.True(t, errors.As(err, &validation), "amount %q", amount)
	}
}

func TestConvertRejectsUnsupportedCurrency(t *testing.T) {
	t.Parallel()

	svc := newTestCurrency()

	_, err := svc.Convert(context.Background(), "100", "GBP")
	require.Error(t, err)
	require.Equal(t, MsgUnsupportedCurrency, err.Error())
	var unsupported *UnsupportedOptionError
	require.True(t, errors.As(err, &unsupported))
}

func TestCurrencies(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"EUR", "USD"}, Currencies())
}
