package hull

// A hull boundary is a convex loop, so containment reduces to a half-plane
// check per edge. For a clockwise loop, the triplet (vertex, p, next) makes a
// strict right turn exactly when p is outside the edge's half-plane; interior
// points give left turns on every edge, boundary points give collinear. This
// is exposed primarily for verifying hull output (every input point must
// satisfy it), but it stands on its own for point-in-hull queries.
func (boundary PointList) Contains(p *Point) bool {
	n := len(boundary)
	switch n {
	case 0:
		return false
	case 1:
		return *p == *boundary[0]
	case 2:
		return onSegment(boundary[0], boundary[1], p)
	}

	for i, vertex := range boundary {
		next := boundary[CircularIndex(i+1, n)]
		o := Orient(vertex, p, next)
		if o.RightTurn && !o.Collinear {
			return false
		}
	}
	return true
}

// IsClockwise reports whether a boundary loop of three or more vertices winds
// clockwise (with +y up), by the sign of twice its signed area.
func (boundary PointList) IsClockwise() bool {
	var doubleArea float64
	n := len(boundary)
	for i, vertex := range boundary {
		next := boundary[CircularIndex(i+1, n)]
		doubleArea += (next.X - vertex.X) * (next.Y + vertex.Y)
	}
	return doubleArea > 0
}

// A point is on segment ab when the triplet is collinear and the point's
// coordinates fall within the segment's bounding box.
func onSegment(a, b, p *Point) bool {
	o := Orient(a, p, b)
	if !o.Collinear && !(*p == *a || *p == *b) {
		return false
	}
	inRange := func(v, lo, hi float64) bool {
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo <= v && v <= hi
	}
	return inRange(p.X, a.X, b.X) && inRange(p.Y, a.Y, b.Y)
}
