package earclip

type Point struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []*Point
}

type PolygonList []Polygon

// Note that the point-based types all hold pointers. This means they can be
// used as map keys, and the facade can hand back the caller's own points in
// its triangles. We never modify a point value from the original polygon,
// since some applications require exact equality, and we cannot tolerate loss
// of precision.
type Segment struct {
	Start *Point
	End   *Point
}

type Triangle struct {
	A, B, C *Point
}

type TriangleList []*Triangle
