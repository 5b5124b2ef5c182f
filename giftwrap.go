// A gift-wrapping (Jarvis march) convex hull package for Go.
//
// This package takes an unordered set of points in the plane and produces the
// ordered boundary of their convex hull, starting at the leftmost point and
// proceeding clockwise. Degenerate inputs (empty, single point, two points,
// fully collinear sets) are handled as special cases rather than errors.
package giftwrap

import (
	"github.com/pkg/errors"

	"github.com/osuushi/giftwrap/hull"
)

type Point = hull.Point
type PointList = hull.PointList

// ConvexHull returns the hull boundary of a set of points, in discovery
// order. The returned points are shared with the input.
//
// See the hull package for the lower-level API with sampler and tracing
// control.
func ConvexHull(points []*Point, opts ...hull.Option) (result []*Point, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return hull.PointList(points).ConvexHull(opts...), nil
}

// ConvexHullXY is the coordinate-vector form of ConvexHull: it zips two
// equal-length coordinate slices into points and returns the hull's x and y
// coordinates in hull order. Mismatched lengths are an error, caught before
// any point is constructed.
func ConvexHullXY(xs, ys []float64, opts ...hull.Option) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, errors.Errorf("mismatched coordinate lengths: %d xs, %d ys", len(xs), len(ys))
	}
	points := make([]*Point, len(xs))
	for i := range xs {
		points[i] = &Point{X: xs[i], Y: ys[i]}
	}

	boundary, err := ConvexHull(points, opts...)
	if err != nil {
		return nil, nil, err
	}
	hullXs := make([]float64, len(boundary))
	hullYs := make([]float64, len(boundary))
	for i, p := range boundary {
		hullXs[i] = p.X
		hullYs[i] = p.Y
	}
	return hullXs, hullYs, nil
}
