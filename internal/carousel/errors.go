package carousel

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCollection = errors.New("carousel needs at least one item")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// RangeError reports a navigation target outside the item list.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: index %d not in [0, %d)", e.Op, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }
