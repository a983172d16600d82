package matrix

import (
	"fmt"

	"github.com/katalvlaran/algokit/algoerr"
)

// Sentinel errors. Every message is prefixed with "matrix:".
var (
	// ErrBadShape is returned when requested shape is invalid (rows or cols < 0,
	// or ragged input rows).
	ErrBadShape = algoerr.New(algoerr.InvalidInput, "matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = algoerr.New(algoerr.InvalidInput, "matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = algoerr.New(algoerr.InvalidInput, "matrix: matrix is not square")

	// ErrNaN signals a NaN or -Inf entry where a weight or +Inf was expected.
	ErrNaN = algoerr.New(algoerr.InvalidInput, "matrix: NaN or -Inf entry")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = algoerr.New(algoerr.InvalidInput, "matrix: nil matrix")

	// ErrGraphNil indicates that a nil *core.Graph was passed into FromGraph.
	ErrGraphNil = algoerr.New(algoerr.InvalidInput, "matrix: graph is nil")

	// ErrNegativeCycle is returned by APSP.Path for pairs whose distance is
	// undefined because a negative cycle lies on some path between them.
	ErrNegativeCycle = algoerr.New(algoerr.NegativeCycle, "matrix: negative cycle on path")
)

// matrixErrorf wraps err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
