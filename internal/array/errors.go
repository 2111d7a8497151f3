package array

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index falls outside the valid range of an operation.
var ErrOutOfRange = errors.New("index out of range")

// IndexError describes a rejected index. It unwraps to ErrOutOfRange.
type IndexError struct {
	Op    string // operation name: get, set, add, remove
	Index int    // index passed by the caller
	Limit int    // exclusive upper bound that was checked against
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: illegal index %d, want [0, %d)", e.Op, e.Index, e.Limit)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

func checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return &IndexError{Op: op, Index: index, Limit: limit}
	}
	return nil
}
