// An ear clipping triangulation package for Go.
//
// This package converts a simple polygon, which may be non-convex, into a set
// of triangles containing only the original vertices. It is aimed at
// rendering and geometry pipelines that need a triangle mesh from an
// arbitrary outline (fonts, vector shapes, 2D meshes).
//
// The core API works on a flat buffer of interleaved coordinates and returns
// vertex indices; see Triangulator. The facade in this file works on Points
// instead, for callers who don't care about buffer reuse.
package earclip

// Triangulate converts a polygon's point list into triangles.
//
// The polygon must be simple. Winding order doesn't matter: it is normalized
// internally, and the emitted triangles always wind clockwise. The polygon
// must not self-intersect; if it does, the result is still a structurally
// valid set of triangles, but a geometrically meaningless one. Holes are not
// supported.
//
// Unlike the Triangulator methods, the returned triangles share nothing with
// any internal buffer and reference the caller's own points.
func Triangulate(polygon Polygon) TriangleList {
	if len(polygon.Points) < 3 {
		return nil
	}
	var t Triangulator
	indices := t.Triangulate(polygon.Flatten(), 0, len(polygon.Points)*2)

	result := make(TriangleList, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		result = append(result, &Triangle{
			A: polygon.Points[indices[i]],
			B: polygon.Points[indices[i+1]],
			C: polygon.Points[indices[i+2]],
		})
	}
	return result
}
