package hull

// Often we want to treat the hull boundary as a circular buffer. This gives
// the modular index given length n, but unlike the raw modulo operator, it
// only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// LeftmostIndex returns the index of the first point in list order with the
// minimal x coordinate. Two points with the same x resolve to the earlier
// one; that choice is arbitrary and only affects where the hull ordering
// starts, never its shape. The list must be non-empty.
func LeftmostIndex(points PointList) int {
	leftmost := 0
	for i, p := range points {
		if p.X < points[leftmost].X {
			leftmost = i
		}
	}
	return leftmost
}
