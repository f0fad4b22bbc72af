package earclip

import "github.com/pkg/errors"

// ErrInvalidInput reports a coordinate range that cannot describe a polygon:
// a negative offset or count, an odd count, or a range extending past the end
// of the buffer. Test with errors.Is (or pkg/errors.Cause).
var ErrInvalidInput = errors.New("invalid polygon coordinate range")

// TriangulateChecked is the validating variant of Triangulate. It rejects
// malformed ranges with an error wrapping ErrInvalidInput instead of
// panicking on an out-of-bounds read. A well-formed range with fewer than
// three vertices is not a fault: it yields an empty result and a nil error,
// the same as the lenient entry point.
//
// For well-formed input the output is identical to Triangulate.
func (t *Triangulator) TriangulateChecked(vertices []float64, offset, count int) ([]int, error) {
	if offset < 0 || count < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "negative range %d:%d", offset, count)
	}
	if count%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "odd element count %d", count)
	}
	if offset+count > len(vertices) {
		return nil, errors.Wrapf(ErrInvalidInput, "range %d:%d exceeds buffer length %d", offset, offset+count, len(vertices))
	}
	return t.Triangulate(vertices, offset, count), nil
}
