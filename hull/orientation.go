package hull

// Orientation classifies a traversal from p1 to p3 via a pivot p2. RightTurn
// is true when the counterclockwise angle between the two edge vectors at the
// pivot is 180 degrees or less; a straight-through line counts as a right
// turn, a fold-back does not. Collinear is true when the three points lie on
// one line.
type Orientation struct {
	RightTurn bool
	Collinear bool
}

// Orient computes the cross and dot products of the edge vectors a = p1 - p2
// and b = p3 - p2 and classifies the triplet. Comparisons are exact: the
// collinear branches only matter when coordinates were produced by exact
// arithmetic, and a tolerance would misclassify thin-but-real turns.
//
// When both products are zero, one of the edge vectors is the zero vector
// (p1 or p3 coincides with the pivot). That case is classified as a
// non-collinear left turn, i.e. the zero value. The wrap relies on this:
// a test point coinciding with the anchor or the candidate must never
// displace the candidate.
func Orient(p1, p2, p3 *Point) Orientation {
	ax, ay := p1.X-p2.X, p1.Y-p2.Y
	bx, by := p3.X-p2.X, p3.Y-p2.Y
	det := ax*by - bx*ay
	dot := ax*bx + ay*by

	switch {
	case det > 0:
		return Orientation{RightTurn: true}
	case det < 0:
		return Orientation{}
	case dot < 0: // straight line through the pivot
		return Orientation{RightTurn: true, Collinear: true}
	case dot > 0: // folds back on itself at the pivot
		return Orientation{Collinear: true}
	}
	return Orientation{}
}
