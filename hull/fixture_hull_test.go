package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvexHullFixtures(t *testing.T) {
	t.Run("star", func(t *testing.T) {
		// The hull of a five-pointed star is its five outer vertices
		points := LoadFixture("star")
		boundary := points.ConvexHull()
		assert.Len(t, boundary, 5)
		AssertValidHull(t, points, boundary)
		for _, p := range boundary {
			assert.NotContains(t, []Point{{9.65, 15.24}, {8.2, 10.76}, {12, 8}, {15.8, 10.76}, {14.35, 15.24}}, *p,
				"inner star vertex %v ended up on the hull", *p)
		}
	})

	t.Run("comb", func(t *testing.T) {
		// Every tooth top lies on the hull's top edge, so the collinear
		// straight-through rule keeps all of them on the boundary
		points := LoadFixture("comb")
		boundary := points.ConvexHull()
		assert.Len(t, boundary, 8)
		AssertValidHull(t, points, boundary)
	})
}
