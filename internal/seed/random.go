package seed

import (
	"errors"
	"math/rand"
	"time"
)

var ErrEmptyWindow = errors.New("date window is empty")

// RandomDateBetween returns a time uniformly distributed over [start, end)
// at one-second resolution.
func RandomDateBetween(rng *rand.Rand, start, end time.Time) (time.Time, error) {
	seconds := int64(end.Sub(start) / time.Second)
	if seconds <= 0 {
		return time.Time{}, ErrEmptyWindow
	}
	return start.Add(time.Duration(rng.Int63n(seconds)) * time.Second), nil
}

// NewRand returns a generator seeded with seed, or from the clock when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
