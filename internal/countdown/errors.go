package countdown

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/kitchendeck/internal/models"
)

var (
	ErrInvalidState    = errors.New("invalid timer state")
	ErrInvalidDuration = errors.New("duration must not be negative")
	ErrInvalidSnapshot = errors.New("invalid timer snapshot")
)

// StateError reports an operation attempted from a state that forbids it.
type StateError struct {
	Op    string
	State models.TimerState
}

func (e *StateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: timer is %s", e.Op, e.State)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

func snapshotErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSnapshot, fmt.Sprintf(format, args...))
}
