package earclip

import "math"

// SignedArea computes the shoelace area of the polygon, positive for
// counterclockwise winding.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsClockwise() bool {
	return poly.SignedArea() < 0
}

// Winding rule point-in-polygon. This is provided primarily for testing the
// triangulation: a point is covered by the mesh iff it is covered by the
// polygon, so sampling both sides of this predicate catches bad clips.
func (poly Polygon) ContainsPointByEvenOdd(p *Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		segment := Segment{vertex, nextVertex}
		if segment.IsRightOf(p) && vertex.Below(p) != nextVertex.Below(p) {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Flatten lays the polygon out as the interleaved coordinate buffer the
// Triangulator consumes.
func (poly Polygon) Flatten() []float64 {
	vertices := make([]float64, 0, len(poly.Points)*2)
	for _, p := range poly.Points {
		vertices = append(vertices, p.X, p.Y)
	}
	return vertices
}

func (pl PolygonList) ContainsPointByEvenOdd(p *Point) bool {
	count := 0
	for _, poly := range pl {
		count += poly.CrossingCount(p)
	}
	return count%2 == 1
}

// ToPolygonList converts each triangle to a triangular polygon. This is
// mostly useful for the sampling validation in tests.
func (tl TriangleList) ToPolygonList() PolygonList {
	result := make(PolygonList, 0, len(tl))
	for _, t := range tl {
		result = append(result, Polygon{Points: []*Point{t.A, t.B, t.C}})
	}
	return result
}
