package listener

import "sync"

// InFlightSet tracks requests between acceptance and the moment their
// response has been written. It signals emptiness through the channel
// returned by Idle.
type InFlightSet struct {
	mu     sync.Mutex
	next   uint64
	active map[uint64]string
	idle   chan struct{}
}

// NewInFlightSet returns an empty set. Its Idle channel is already closed.
func NewInFlightSet() *InFlightSet {
	idle := make(chan struct{})
	close(idle)

	return &InFlightSet{
		active: make(map[uint64]string),
		idle:   idle,
	}
}

// Add registers a request and returns the ticket to pass to Remove.
func (s *InFlightSet) Add(correlationID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.active) == 0 {
		s.idle = make(chan struct{})
	}
	s.next++
	s.active[s.next] = correlationID

	return s.next
}

// Remove unregisters the request identified by ticket. Unknown tickets are
// ignored.
func (s *InFlightSet) Remove(ticket uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[ticket]; !ok {
		return
	}
	delete(s.active, ticket)
	if len(s.active) == 0 {
		close(s.idle)
	}
}

// Len returns the number of requests in flight.
func (s *InFlightSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// CorrelationIDs returns the correlation IDs of the requests in flight.
func (s *InFlightSet) CorrelationIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.active))
	for _, id := range s.active {
		ids = append(ids, id)
	}
	return ids
}

// Idle returns a channel that is closed once the set is empty. A new
// channel is handed out after the next Add, so callers must call Idle again
// after waking up.
func (s *InFlightSet) Idle() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idle
}
