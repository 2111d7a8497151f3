package sequence

import (
	"errors"

	"seqedit/internal/array"
)

var (
	// ErrOutOfRange is returned for a rank outside the operation's valid range.
	// Rank errors from the sequence also satisfy errors.As(*array.IndexError).
	ErrOutOfRange = array.ErrOutOfRange

	// ErrInvalidHandle is returned for a position that does not denote a live
	// element of this sequence: removed, nil, or minted by another sequence.
	ErrInvalidHandle = errors.New("invalid position")

	// ErrEmptyAccess is returned when reading through a position whose element
	// has been removed.
	ErrEmptyAccess = errors.New("position no longer holds an element")
)
