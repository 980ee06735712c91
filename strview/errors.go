package strview

import "errors"

var (
	ErrNegativeLength = errors.New("string view has a negative length")
	ErrNilData        = errors.New("string view has nil data with a non-zero length")
)
