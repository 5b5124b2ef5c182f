package hull

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run a sample through the panic/recover plumbing the public API uses, so
// exhaustion surfaces as an error instead of killing the test.
func trySample(s Sampler, n int, excluded IndexSet) (idx int, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return s.Sample(n, excluded), nil
}

func TestFirstFree(t *testing.T) {
	t.Run("skips the exclusion set", func(t *testing.T) {
		idx, err := trySample(FirstFree{}, 5, IndexSet{0: {}, 1: {}, 3: {}})
		assert.NoError(t, err)
		assert.Equal(t, 2, idx)
	})

	t.Run("fails when every index is excluded", func(t *testing.T) {
		_, err := trySample(FirstFree{}, 2, IndexSet{0: {}, 1: {}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no candidate available")
	})

	t.Run("fails on an empty collection", func(t *testing.T) {
		_, err := trySample(FirstFree{}, 0, IndexSet{})
		assert.Error(t, err)
	})
}

func TestRandom(t *testing.T) {
	t.Run("never returns an excluded index", func(t *testing.T) {
		s := Random{Rand: rand.New(rand.NewSource(10))}
		excluded := IndexSet{1: {}, 2: {}}
		for i := 0; i < 100; i++ {
			idx, err := trySample(s, 4, excluded)
			assert.NoError(t, err)
			assert.NotContains(t, []int{1, 2}, idx)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 4)
		}
	})

	t.Run("fails instead of looping when every index is excluded", func(t *testing.T) {
		s := Random{Rand: rand.New(rand.NewSource(10))}
		_, err := trySample(s, 2, IndexSet{0: {}, 1: {}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no candidate available")
	})
}
