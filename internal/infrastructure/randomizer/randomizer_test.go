package randomizer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64NStaysInRange(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for i := 0; i < 10_000; i++ {
		require.Less(t, r.Uint64N(7), uint64(7))
	}
	require.Equal(t, uint64(0), r.Uint64N(1))
}

func TestSameSeedProducesSameSequence(t *testing.T) {
	var seed [SeedSize]byte
	seed[0] = 42
	a, b := newFromSeed(seed), newFromSeed(seed)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64N(1000), b.Uint64N(1000))
	}
}

func TestNewSeedsIndependently(t *testing.T) {
	a := MustNew()
	b := MustNew()
	same := true
	for i := 0; i < 16; i++ {
		if a.Uint64N(1<<62) != b.Uint64N(1<<62) {
			same = false
		}
	}
	require.False(t, same)
}

func TestUint64NConcurrentUse(t *testing.T) {
	r := MustNew()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = r.Uint64N(10)
			}
		}()
	}
	wg.Wait()
}

func TestUint64NPanicsOnZero(t *testing.T) {
	r := MustNew()
	require.Panics(t, func() { r.Uint64N(0) })
}
