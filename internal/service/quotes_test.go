package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRandomStaysInFixedPool(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(800*time.Millisecond, InstantClock{}, rand.New(rand.NewSource(11)))
	ctx := context.Background()
	pool := Quotes()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		q, err := svc.Random(ctx)
		require.NoError(t, err)
		require.Contains(t, pool, q)
		seen[q.Text] = true
	}
	// 200 draws from a 5-element pool should hit every entry.
	require.Len(t, seen, len(pool))
}

func TestDefaultQuoteIsInPool(t *testing.T) {
	t.Parallel()

	require.Contains(t, Quotes(), DefaultQuote())
}

func TestQuotesReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Quotes()
	first[0].Text = "mutated"
	require.NotEqual(t, first[0], Quotes()[0])
}
