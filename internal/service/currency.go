package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// MsgInvalidAmount is returned when the amount does not parse to a
	// positive number.
	MsgInvalidAmount = "Invalid amount entered. Please enter a positive number."
	// MsgUnsupportedCurrency is returned for targets outside the rate table.
	MsgUnsupportedCurrency = "Unsupported target currency."
)

// rates maps target currency to the INR conversion rate.
var rates = map[string]float64{
	"USD": 0.012,
	"EUR": 0.011,
}

// Conversion is the outcome of a successful INR conversion.
// Result == round(Amount*Rate, 2), formatted with exactly two decimals.
type Conversion struct {
	Amount float64
	Target string
	Rate   float64
	Result string
}

// CurrencyService converts INR amounts using a fixed rate table after a fixed
// simulated delay.
type CurrencyService struct {
	latency time.Duration
	clock   Clock
}

// NewCurrencyService builds a conversion backend. A nil clock means real timers.
func NewCurrencyService(latency time.Duration, clock Clock) *CurrencyService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &CurrencyService{latency: latency, clock: clock}
}

// Convert parses the raw amount string and applies the rate for target.
// The amount is taken raw (it comes straight from a text field), so parse
// failures are part of the contract, not a precondition violation.
func (s *CurrencyService) Convert(ctx context.Context, amount, target string) (Conversion, error) {
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return Conversion{}, err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Conversion{}, &ValidationError{Message: MsgInvalidAmount}
	}
	code := strings.ToUpper(strings.TrimSpace(target))
	rate, ok := rates[code]
	if !ok {
		return Conversion{}, &UnsupportedOptionError{Message: MsgUnsupportedCurrency}
	}
	return Conversion{
		Amount: v,
		Target: code,
		Rate:   rate,
		Result: fmt.Sprintf("%.2f", v*rate),
	}, nil
}

// Currencies lists the supported target codes in stable order.
func Currencies() []string {
	out := make([]string, 0, len(rates))
	for code := range rates {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
