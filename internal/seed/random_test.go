package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDateBetween(t *testing.T) {
	rng := NewRand(42)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Second)

	seen := make(map[time.Time]bool)
	for range 2000 {
		got, err := RandomDateBetween(rng, start, end)
		require.NoError(t, err)
		assert.False(t, got.Before(start), "before window: %s", got)
		assert.True(t, got.Before(end), "end is exclusive: %s", got)
		assert.Zero(t, got.Nanosecond())
		seen[got] = true
	}
	assert.Len(t, seen, 10, "every second of the window should be reachable")
}

func TestRandomDateBetween_EmptyWindow(t *testing.T) {
	rng := NewRand(1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := RandomDateBetween(rng, start, start)
	assert.ErrorIs(t, err, ErrEmptyWindow)

	_, err = RandomDateBetween(rng, start, start.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrEmptyWindow)

	_, err = RandomDateBetween(rng, start, start.Add(500*time.Millisecond))
	assert.ErrorIs(t, err, ErrEmptyWindow)
}

func TestNewRand_Reproducible(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for range 10 {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}
