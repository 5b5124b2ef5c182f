package hull

import "io"

type Option func(*builder)

// WithSampler replaces the default FirstFree candidate seeding.
func WithSampler(s Sampler) Option {
	return func(b *builder) { b.sampler = s }
}

// WithTrace writes a line per wrap event to w. Debugging aid; see trace.go.
func WithTrace(w io.Writer) Option {
	return func(b *builder) { b.trace = &tracer{w: w} }
}

// ConvexHull returns the boundary of the minimal convex polygon containing
// every point in the list, by gift wrapping. The boundary starts at the
// leftmost point and proceeds clockwise (with +y up). Vertices are shared
// with the input, not copied.
//
// Degenerate sizes short-circuit: an empty list gives an empty boundary, a
// single point gives that point, and two points give both, leftmost first.
// A fully collinear list gives every distinct point in line order from the
// leftmost to the far extreme.
func (points PointList) ConvexHull(opts ...Option) PointList {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return PointList{points[0]}
	case 2:
		leftmost := LeftmostIndex(points)
		return PointList{points[leftmost], points[1-leftmost]}
	}

	b := newBuilder(points, opts...)
	b.wrap()
	return b.finalize()
}

// The builder wraps a boundary around the point list one vertex at a time.
// hull holds vertex indices in discovery order; pos maps an index to its
// first position in hull, replacing repeated linear membership scans. The
// point list itself is never mutated, so indices stay stable for the whole
// computation.
type builder struct {
	points       PointList
	hull         []int
	pos          map[int]int
	allCollinear bool
	sampler      Sampler
	trace        *tracer
}

func newBuilder(points PointList, opts ...Option) *builder {
	b := &builder{
		points:       points,
		pos:          make(map[int]int),
		allCollinear: true,
		sampler:      FirstFree{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.push(LeftmostIndex(points))
	return b
}

func (b *builder) wrap() {
	for {
		anchor := b.hull[len(b.hull)-1]

		// Seed the scan with an arbitrary non-anchor candidate, then let every
		// other point challenge it.
		candidate := b.sampler.Sample(len(b.points), IndexSet{anchor: {}})
		b.trace.seeded(b, anchor, candidate)

		for t := range b.points {
			if t == candidate || t == anchor {
				continue
			}
			o := Orient(b.points[anchor], b.points[t], b.points[candidate])
			switch {
			case o.RightTurn:
				// t is at least as clockwise as the candidate (a collinear
				// straight line counts: t lies between anchor and candidate).
				candidate = t
				b.trace.swapped(b, t, o)
			case o.Collinear && b.onHull(candidate) && !b.onHullPastFirst(t):
				// Fold-back case. The candidate is already fixed on the hull
				// while a collinear alternative is still unplaced. Taking the
				// alternative keeps the wrap from closing early past a point
				// that still belongs on the boundary. The very first vertex is
				// exempt from the "unplaced" requirement, since re-selecting it
				// is exactly how the wrap closes.
				candidate = t
				b.trace.swapped(b, t, o)
			}
			if !o.Collinear {
				b.allCollinear = false
			}
		}

		b.trace.appended(b, candidate)
		if b.push(candidate) {
			return
		}
	}
}

// push appends a vertex index and reports whether the hull closed. A repeat
// of the first vertex is the implicit closing edge and is not kept; a repeat
// of any later vertex is kept, marking where the degenerate rebuild in
// finalize must stop.
func (b *builder) push(idx int) bool {
	if p, seen := b.pos[idx]; seen {
		if p > 0 {
			b.hull = append(b.hull, idx)
		}
		return true
	}
	b.pos[idx] = len(b.hull)
	b.hull = append(b.hull, idx)
	return false
}

func (b *builder) onHull(idx int) bool {
	_, ok := b.pos[idx]
	return ok
}

func (b *builder) onHullPastFirst(idx int) bool {
	p, ok := b.pos[idx]
	return ok && p > 0
}

func (b *builder) finalize() PointList {
	if !b.allCollinear {
		boundary := make(PointList, len(b.hull))
		for i, idx := range b.hull {
			boundary[i] = b.points[idx]
		}
		return boundary
	}

	// Every examined triplet was collinear, so the orientation test never
	// ordered points by angle and the sequence above is a there-and-back walk
	// along the line, possibly skipping points on the way back. The outbound
	// leg is complete, though: keep the prefix up to the first repeated index
	// and discard the rest.
	seen := make(IndexSet)
	var boundary PointList
	for _, idx := range b.hull {
		if seen.Has(idx) {
			break
		}
		seen.Add(idx)
		boundary = append(boundary, b.points[idx])
	}
	return boundary
}
