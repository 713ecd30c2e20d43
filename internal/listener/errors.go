package listener

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBind is returned by Start when the address cannot be bound.
	ErrBind = errors.New("listener: bind failed")
	// ErrInvalidState is matched by every control call rejected because of
	// the current state. See [StateError].
	ErrInvalidState = errors.New("listener: operation not permitted in current state")
	// ErrStaleSuspendToken is returned by Resume when the token belongs to an
	// earlier suspension. It also matches ErrInvalidState.
	ErrStaleSuspendToken = errors.New("listener: suspend token does not match current suspension")
	// ErrDecode marks a request that could not be decoded. It never leaves
	// the dispatcher; the client receives 400.
	ErrDecode = errors.New("listener: malformed request")
	// ErrPipeline marks a failed pipeline invocation. It never leaves the
	// dispatcher; the client receives 500.
	ErrPipeline = errors.New("listener: pipeline failed")
	// ErrShutdownTimeout is matched by the [TimeoutError] returned from Stop.
	ErrShutdownTimeout = errors.New("listener: shutdown timed out with requests in flight")
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("listener: already started")
	// ErrInvalidRoute is returned by New for a malformed route table.
	ErrInvalidRoute = errors.New("listener: invalid route")
)

// StateError is returned by a control call that is not legal in the current
// state. The state is left unchanged.
type StateError struct {
	Op    string
	State State
	// Err optionally narrows the reason, e.g. ErrStaleSuspendToken.
	Err error
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("listener: cannot %s while %s: %v", e.Op, e.State, e.Err)
	}
	return fmt.Sprintf("listener: cannot %s while %s", e.Op, e.State)
}

// Is makes errors.Is(err, ErrInvalidState) hold for every StateError.
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned by Stop when the drain deadline passed with
// requests still in flight. The listener is STOPPED regardless.
type TimeoutError struct {
	Timeout   time.Duration
	Remaining int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("listener: shutdown timed out after %s with %d request(s) in flight", e.Timeout, e.Remaining)
}

// Is makes errors.Is(err, ErrShutdownTimeout) hold.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrShutdownTimeout
}
