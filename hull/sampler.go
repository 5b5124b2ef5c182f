package hull

import "math/rand"

// A Sampler seeds each wrap iteration with an arbitrary starting candidate.
// Any index outside the exclusion set is a correct seed: the inner scan
// refines whatever it is given, so the choice only affects which of several
// tied candidates is tried first. Sample must fail via fatalf rather than
// loop when every index is excluded.
type Sampler interface {
	Sample(n int, excluded IndexSet) int
}

// FirstFree picks the lowest non-excluded index. Deterministic, so hull
// output is reproducible run to run. This is the default.
type FirstFree struct{}

func (FirstFree) Sample(n int, excluded IndexSet) int {
	for i := 0; i < n; i++ {
		if !excluded.Has(i) {
			return i
		}
	}
	fatalf("no candidate available: all %d indices excluded", n)
	return 0
}

// Random picks uniformly among non-excluded indices, retrying on exclusion
// hits. The rand source is injected rather than the process-global one, so
// concurrent hull computations never share seed state.
type Random struct {
	Rand *rand.Rand
}

func (r Random) Sample(n int, excluded IndexSet) int {
	if len(excluded) >= n {
		fatalf("no candidate available: all %d indices excluded", n)
	}
	for {
		i := r.Rand.Intn(n)
		if !excluded.Has(i) {
			return i
		}
	}
}
