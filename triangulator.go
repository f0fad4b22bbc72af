package earclip

// The ear clipping triangulator. The polygon is given as a flat buffer of
// interleaved x/y coordinates, and the output is a list of index triples into
// that buffer's vertices. The working state is a cyclic index list: each
// iteration finds an "ear" (a convex vertex whose local triangle contains no
// other polygon vertex), emits its triangle, and removes it from the list.
// Only the two vertices adjacent to the removed one can change classification,
// so only those two are recomputed.

// VertexType classifies a working-list vertex by the sign of the area spanned
// with its two neighbors.
type VertexType int

const (
	Concave    VertexType = -1
	Tangential VertexType = 0
	Convex     VertexType = 1
)

// Triangulator computes triangles for simple polygons by ear clipping.
//
// The zero value is ready to use. Internal buffers are reused between calls
// to avoid allocation, which has two consequences: a Triangulator must not be
// used from multiple goroutines at once, and a returned slice is only valid
// until the next call on the same instance. Callers that need the result to
// outlive the next call must copy it.
//
// Input is "garbage in, garbage out": a self-intersecting polygon produces
// structurally well-formed triples whose geometry is meaningless, never an
// error or a hang.
type Triangulator struct {
	vertices    []float64
	vertexCount int
	indices     []int
	vertexTypes []VertexType
	triangles   []int
}

// Triangulate computes a triangulation of the polygon stored in
// vertices[offset : offset+count] as interleaved x/y pairs. It returns index
// triples, each naming one clockwise triangle. Indices are vertex positions
// in the full buffer (offset/2 plus the position within the range), so
// callers slicing a sub-range out of a larger buffer can index it directly.
//
// For fewer than three vertices the result is empty. The output length is
// always 3 * max(0, n-2) for an n-vertex polygon.
func (t *Triangulator) Triangulate(vertices []float64, offset, count int) []int {
	t.vertices = vertices
	vertexCount := count / 2
	t.vertexCount = vertexCount
	vertexOffset := offset / 2

	if cap(t.indices) < vertexCount {
		t.indices = make([]int, vertexCount)
	}
	t.indices = t.indices[:vertexCount]
	if areVerticesClockwise(vertices, offset, count) {
		for i := 0; i < vertexCount; i++ {
			t.indices[i] = vertexOffset + i
		}
	} else {
		// Reversed, so the rest of the algorithm can assume clockwise winding.
		for i, n := 0, vertexCount-1; i < vertexCount; i++ {
			t.indices[i] = vertexOffset + n - i
		}
	}

	if cap(t.vertexTypes) < vertexCount {
		t.vertexTypes = make([]VertexType, vertexCount)
	}
	t.vertexTypes = t.vertexTypes[:vertexCount]
	for i := 0; i < vertexCount; i++ {
		t.vertexTypes[i] = t.classifyVertex(i)
	}

	// A polygon with n vertices produces a maximum of n-2 triangles.
	if max := (vertexCount - 2) * 3; cap(t.triangles) < max {
		t.triangles = make([]int, 0, max)
	}
	t.triangles = t.triangles[:0]
	t.triangulate()
	return t.triangles
}

func (t *Triangulator) triangulate() {
	for t.vertexCount > 3 {
		earTipIndex := t.findEarTip()
		t.cutEarTip(earTipIndex)

		// The removal changes the local topology around the ear, so the two
		// vertices that just became adjacent get reclassified. Nothing else
		// can have changed.
		previousIndex := t.previousIndex(earTipIndex)
		nextIndex := earTipIndex
		if nextIndex == t.vertexCount {
			nextIndex = 0
		}
		t.vertexTypes[previousIndex] = t.classifyVertex(previousIndex)
		t.vertexTypes[nextIndex] = t.classifyVertex(nextIndex)
	}

	if t.vertexCount == 3 {
		t.triangles = append(t.triangles, t.indices[0], t.indices[1], t.indices[2])
	}
}

func (t *Triangulator) classifyVertex(index int) VertexType {
	previous := t.indices[t.previousIndex(index)] * 2
	current := t.indices[index] * 2
	next := t.indices[t.nextIndex(index)] * 2
	v := t.vertices
	return spannedAreaSign(v[previous], v[previous+1], v[current], v[current+1], v[next], v[next+1])
}

func (t *Triangulator) findEarTip() int {
	for i := 0; i < t.vertexCount; i++ {
		if t.isEarTip(i) {
			return i
		}
	}

	// Desperate mode: if no vertex is an ear tip, we are dealing with a
	// degenerate or self-intersecting polygon. Return a convex or tangential
	// vertex if one exists, so that the sum of the angles of the remaining
	// polygon stays plausible; failing that, take what we can get. Clipping
	// the wrong vertex here may produce a bogus triangle, but it guarantees
	// we make progress and terminate.
	for i := 0; i < t.vertexCount; i++ {
		if t.vertexTypes[i] != Concave {
			return i
		}
	}
	return 0
}

func (t *Triangulator) isEarTip(earTipIndex int) bool {
	if t.vertexTypes[earTipIndex] == Concave {
		return false
	}

	previousIndex := t.previousIndex(earTipIndex)
	nextIndex := t.nextIndex(earTipIndex)
	v := t.vertices
	p1 := t.indices[previousIndex] * 2
	p2 := t.indices[earTipIndex] * 2
	p3 := t.indices[nextIndex] * 2
	p1x, p1y := v[p1], v[p1+1]
	p2x, p2y := v[p2], v[p2+1]
	p3x, p3y := v[p3], v[p3+1]

	// Check if any polygon vertex other than the corners lies inside the
	// candidate triangle. Convex vertices can't be inside it under the
	// clockwise invariant, so only concave and tangential ones are tested.
	// A point exactly on the triangle boundary also disqualifies the ear,
	// otherwise the clip could self-intersect.
	for i := t.nextIndex(nextIndex); i != previousIndex; i = t.nextIndex(i) {
		if t.vertexTypes[i] == Convex {
			continue
		}
		vi := t.indices[i] * 2
		vx, vy := v[vi], v[vi+1]
		// Checking the edge from p3 to p1 first gives the fastest rejection
		// in practice.
		if spannedAreaSign(p3x, p3y, p1x, p1y, vx, vy) >= 0 {
			if spannedAreaSign(p1x, p1y, p2x, p2y, vx, vy) >= 0 {
				if spannedAreaSign(p2x, p2y, p3x, p3y, vx, vy) >= 0 {
					return false
				}
			}
		}
	}
	return true
}

func (t *Triangulator) cutEarTip(earTipIndex int) {
	t.triangles = append(t.triangles,
		t.indices[t.previousIndex(earTipIndex)],
		t.indices[earTipIndex],
		t.indices[t.nextIndex(earTipIndex)])

	t.indices = append(t.indices[:earTipIndex], t.indices[earTipIndex+1:]...)
	t.vertexTypes = append(t.vertexTypes[:earTipIndex], t.vertexTypes[earTipIndex+1:]...)
	t.vertexCount--
}

func (t *Triangulator) previousIndex(index int) int {
	if index == 0 {
		return t.vertexCount - 1
	}
	return index - 1
}

func (t *Triangulator) nextIndex(index int) int {
	return (index + 1) % t.vertexCount
}

// areVerticesClockwise computes the polygon's signed shoelace area over the
// given range, including the wrap-around edge. Fewer than two full vertices
// count as not clockwise.
func areVerticesClockwise(vertices []float64, offset, count int) bool {
	if count <= 2 {
		return false
	}
	var area float64
	for i, n := offset, offset+count-3; i < n; i += 2 {
		p1x, p1y := vertices[i], vertices[i+1]
		p2x, p2y := vertices[i+2], vertices[i+3]
		area += p1x*p2y - p2x*p1y
	}
	p1x, p1y := vertices[offset+count-2], vertices[offset+count-1]
	p2x, p2y := vertices[offset], vertices[offset+1]
	return area+p1x*p2y-p2x*p1y < 0
}

// spannedAreaSign returns the sign of twice the signed area of the triangle
// p1, p2, p3. This single predicate drives winding classification and the
// three half-plane tests of the ear check.
func spannedAreaSign(p1x, p1y, p2x, p2y, p3x, p3y float64) VertexType {
	area := p1x * (p3y - p2y)
	area += p2x * (p1y - p3y)
	area += p3x * (p2y - p1y)
	switch {
	case area > 0:
		return Convex
	case area < 0:
		return Concave
	}
	return Tangential
}
