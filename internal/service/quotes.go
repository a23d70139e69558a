package service

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Quote is one motivational quote.
type Quote struct {
	Text   string
	Author string
}

// quoteSet is the fixed pool. The first entry doubles as the default shown
// before any interaction.
var quoteSet = []Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
}

// DefaultQuote is what the quote panel shows before the first request.
func DefaultQuote() Quote {
	return quoteSet[0]
}

// Quotes returns a copy of the fixed pool.
func Quotes() []Quote {
	out := make([]Quote, len(quoteSet))
	copy(out, quoteSet)
	return out
}

// QuoteService serves uniformly random quotes from the fixed pool after a
// fixed simulated delay. It never fails on its own; only context cancellation
// can surface an error.
type QuoteService struct {
	latency time.Duration
	clock   Clock

	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuoteService builds a quote backend. A nil clock means real timers; a
// nil rng means time-seeded selection.
func NewQuoteService(latency time.Duration, clock Clock, rng *rand.Rand) *QuoteService {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuoteService{latency: latency, clock: clock, rng: rng}
}

// Random picks one quote uniformly from the pool.
func (s *QuoteService) Random(ctx context.Context) (Quote, error) {
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return Quote{}, err
	}
	s.mu.Lock()
	q := quoteSet[s.rng.Intn(len(quoteSet))]
	s.mu.Unlock()
	return q, nil
}
