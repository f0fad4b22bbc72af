package earclip

import "math"

const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, area comparisons on long thin triangles become
// meaningless noise.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a
// slightly rotated coordinate system, allowing us to assume Y values are
// never equal.
func (p *Point) Below(otherPoint *Point) bool {
	if Equal(p.Y, otherPoint.Y) {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) Above(otherPoint *Point) bool {
	return !p.Below(otherPoint)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *Segment) IsHorizontal() bool {
	return Equal(s.Start.Y, s.End.Y)
}

// SolveForX gives the x value of the (non-horizontal) segment's line at y.
func (s *Segment) SolveForX(y float64) float64 {
	t := (y - s.Start.Y) / (s.End.Y - s.Start.Y)
	return s.Start.X + t*(s.End.X-s.Start.X)
}

// IsRightOf reports whether the segment passes to the right of the point at
// the point's Y value.
func (s *Segment) IsRightOf(p *Point) bool {
	if s.IsHorizontal() {
		return math.Max(s.Start.X, s.End.X) > p.X
	}
	return s.SolveForX(p.Y) > p.X
}

// SignedArea is positive for counterclockwise triangles and negative for
// clockwise ones.
func (t *Triangle) SignedArea() float64 {
	return (t.A.X*(t.C.Y-t.B.Y) + t.B.X*(t.A.Y-t.C.Y) + t.C.X*(t.B.Y-t.A.Y)) / -2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) IsClockwise() bool {
	return t.SignedArea() < 0
}
