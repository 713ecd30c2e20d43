package listener

import "sync/atomic"

// State is the lifecycle state of a started listener.
type State int32

const (
	StateRunning State = iota
	StateSuspended
	StateStopping
	StateStopped
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// AcceptsWork reports whether requests observed in this state are forwarded
// to the route pipeline.
func (s State) AcceptsWork() bool {
	return s == StateRunning
}

// atomicState lets dispatch goroutines read the state without locking.
type atomicState struct {
	v atomic.Int32
}

func (s *atomicState) Load() State {
	return State(s.v.Load())
}

func (s *atomicState) Swap(to State) State {
	return State(s.v.Swap(int32(to)))
}
