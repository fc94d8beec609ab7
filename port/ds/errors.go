package ds

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrOutOfRange errorkit.Error = "index out of range"

// MaxLen is the ceiling for insertion points and fill sizes.
// An index at or above it is reported as out of range instead of padding the gap.
const MaxLen = 1 << 28

// IndexError reports an index that was not valid for the operation.
// It matches ErrOutOfRange with errors.Is.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("%s: %s [index:%d] [len:%d]", err.Op, ErrOutOfRange, err.Index, err.Len)
}

func (err IndexError) Unwrap() error { return ErrOutOfRange }

func (err IndexError) Is(target error) bool { return target == ErrOutOfRange }

// CheckIndex reports an IndexError unless 0 <= index < length.
func CheckIndex(op string, index, length int) error {
	if index < 0 || length <= index {
		return IndexError{Op: op, Index: index, Len: length}
	}
	return nil
}

// CheckInsertIndex reports an IndexError for insertion points outside of [0, MaxLen).
// Any other index is a meaningful insertion point, the gap is padded.
func CheckInsertIndex(op string, index, length int) error {
	if index < 0 || MaxLen <= index {
		return IndexError{Op: op, Index: index, Len: length}
	}
	return nil
}
