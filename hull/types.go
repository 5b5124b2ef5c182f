package hull

type Point struct {
	X float64
	Y float64
}

// Note that all points involved in a hull computation are pointers. This
// means they can be used as keys, and it means the output shares values with
// the input. We never modify a point value from the original list, since some
// applications require exact equality, and we cannot tolerate loss of
// precision.
type PointList []*Point

// The wrap operates on list indices rather than points, because indices are
// what the exclusion sets, membership tests, and duplicate detection work
// over. Coincident points keep distinct indices.
type IndexSet map[int]struct{}

func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}
