package earclip

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of a simple polygon is valid. The
// rules are:
//  1. There are exactly n-2 triangles for an n vertex polygon.
//  2. Every triangle is clockwise and has nonzero area.
//  3. The set of points in the triangles equals the set of points in the polygon.
//  4. The set of line segments in the polygon is a subset of the set of line
//     segments in the triangles.
//  5. The sum of the areas of all triangles equals the area of the polygon.
//  6. The triangles cover the same region as the polygon (checked by sampling).
//
// Note that the polygon here is CCW (the fixture convention), while the
// triangulator's output contract is CW triangles.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles TriangleList) {
	require.Len(t, triangles, len(polygon.Points)-2)

	polyPoints := make(map[*Point]struct{})
	for _, p := range polygon.Points {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[*Point]struct{})
	for _, tri := range triangles {
		trianglePoints[tri.A] = struct{}{}
		trianglePoints[tri.B] = struct{}{}
		trianglePoints[tri.C] = struct{}{}
	}
	for p := range trianglePoints {
		_, ok := polyPoints[p]
		require.True(t, ok, "triangle point %v is not a polygon point", p)
	}
	for p := range polyPoints {
		_, ok := trianglePoints[p]
		require.True(t, ok, "polygon point %v appears in no triangle", p)
	}

	var triangleArea float64
	triangleSegmentSet := make(normalizedSegmentSet)
	for _, tri := range triangles {
		require.True(t, tri.IsClockwise(), "counterclockwise triangle: %v", tri)
		require.Greater(t, tri.Area(), 0.0, "degenerate triangle: %v", tri)
		triangleArea += tri.Area()
		// Add all the segments to the set
		triangleSegmentSet.add(tri.A, tri.B)
		triangleSegmentSet.add(tri.B, tri.C)
		triangleSegmentSet.add(tri.C, tri.A)
	}

	// Check every segment in the polygon is in the set
	for i, p1 := range polygon.Points {
		p2 := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		require.True(t, triangleSegmentSet.contains(p1, p2), "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
	}

	// Check that the sum of the areas of all triangles is equal to the area of
	// the polygon
	require.InDelta(t, polygon.Area(), triangleArea, Epsilon, "sum of the areas of all triangles is equal to the area of the polygon")

	validateTrianglesBySampling(t, triangles.ToPolygonList(), PolygonList{polygon})
}

// Used in the helper above, this is a "normalized" line segment, where the
// "lower" point (accounting for lexicographic adjustment) is always second
type normalizedSegment struct {
	lower, upper *Point
}

func newNormalizedSegment(a, b *Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b *Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b *Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

func validateTrianglesBySampling(t *testing.T, actualPolygons PolygonList, expectedPolygons PolygonList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range []PolygonList{actualPolygons, expectedPolygons} {
		for _, poly := range list {
			for _, p := range poly.Points {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size
	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := &Point{X: x, Y: y}

			actual := actualPolygons.ContainsPointByEvenOdd(p)
			if expectedPolygons.ContainsPointByEvenOdd(p) {
				assert.True(t, actual, "point %v should be in the triangle set", p)
			} else {
				assert.False(t, actual, "point %v should not be in the triangle set", p)
			}
		}
	}
}
