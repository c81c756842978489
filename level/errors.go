package level

import (
	"errors"
	"fmt"
)

// ErrTruncated reports a stream that ran out of bytes before its
// terminator.
var ErrTruncated = errors.New("level: truncated stream")

// InvalidDomainError reports a warp decode attempted on a record whose
// domain bits are not the reserved warp domain. Decoding at that offset is
// a caller error, not a property of the data.
type InvalidDomainError struct {
	Domain uint8
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("level: domain %d is not a warp record", e.Domain)
}
