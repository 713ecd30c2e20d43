package models

// ListenerStatus is the control-plane view of a running listener.
type ListenerStatus struct {
	// State is one of "running", "suspended", "stopping", "stopped".
	State string `json:"state"`

	// Address is the bound socket address, e.g. "127.0.0.1:8080".
	Address string `json:"address"`

	// InFlight is the number of requests accepted but not yet answered.
	InFlight int `json:"in_flight"`

	// SuspendToken is the token of the current suspension episode, or zero
	// when the listener is not suspended.
	SuspendToken uint64 `json:"suspend_token,omitempty"`
}

// SuspendResponse is returned by the suspend control endpoint.
type SuspendResponse struct {
	Token uint64 `json:"token"`
}

// ResumeRequest is the body of the resume control endpoint.
type ResumeRequest struct {
	Token uint64 `json:"token"`
}

// StopRequest is the body of the stop control endpoint. An empty Timeout
// selects the configured shutdown timeout.
type StopRequest struct {
	Timeout string `json:"timeout,omitempty"`
}

// DrainResult reports how a shutdown drain ended.
type DrainResult struct {
	// Completed is true when every in-flight request finished before the
	// deadline.
	Completed bool `json:"completed"`

	// Remaining is the number of requests still in flight when the drain
	// gave up. It is zero when Completed is true.
	Remaining int `json:"remaining"`
}
