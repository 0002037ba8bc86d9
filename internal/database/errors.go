package database

import (
	"errors"
	"fmt"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrKindMismatch     = errors.New("snapshot kind mismatch")
)

type OpError struct {
	Op       string
	Resource string
	Name     string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSnapshotErr(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "snapshot", Name: name, Err: err}
}
