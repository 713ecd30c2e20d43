package listener

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

// Route binds a URL path to a pipeline.
type Route struct {
	ID       string
	Path     string
	Pipeline Pipeline
}

// StateObserver is called after every state transition, while the control
// lock is held. It must not block or call back into the Handle.
type StateObserver func(from, to State)

// Config configures a [Listener].
type Config struct {
	// ReadHeaderTimeout bounds reading request headers. Zero means no limit.
	ReadHeaderTimeout time.Duration
	// Metrics receives observations. Nil disables them.
	Metrics Metrics
	// Observers are notified of state transitions.
	Observers []StateObserver
}

// Listener owns the resolved route table. It can be started once.
type Listener struct {
	cfg      Config
	routes   []Route
	router   http.Handler
	state    *atomicState
	inflight *InFlightSet
	started  atomic.Bool
	log      *logger.Logger
}

// New validates routes and resolves them into a router. A nil codec selects
// [NewHTTPCodec] with default settings.
func New(cfg Config, routes []Route, codec Codec, log *logger.Logger) (*Listener, error) {
	if err := validateRoutes(routes); err != nil {
		return nil, err
	}
	if codec == nil {
		codec = NewHTTPCodec(HTTPCodecConfig{})
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}

	l := &Listener{
		cfg:      cfg,
		routes:   routes,
		state:    new(atomicState),
		inflight: NewInFlightSet(),
		log:      log,
	}

	router := chi.NewRouter()
	for _, route := range routes {
		router.Handle(route.Path, &Dispatcher{
			route:    route,
			state:    l.state,
			inflight: l.inflight,
			codec:    codec,
			metrics:  cfg.Metrics,
			log:      log.ForRoute(route.ID),
		})
	}
	l.router = router

	return l, nil
}

func validateRoutes(routes []Route) error {
	if len(routes) == 0 {
		return fmt.Errorf("%w: no routes", ErrInvalidRoute)
	}

	ids := make(map[string]struct{}, len(routes))
	paths := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		switch {
		case r.ID == "":
			return fmt.Errorf("%w: empty route id", ErrInvalidRoute)
		case !strings.HasPrefix(r.Path, "/"):
			return fmt.Errorf("%w: route %q: path %q must start with /", ErrInvalidRoute, r.ID, r.Path)
		case r.Pipeline == nil:
			return fmt.Errorf("%w: route %q has no pipeline", ErrInvalidRoute, r.ID)
		}
		if _, dup := ids[r.ID]; dup {
			return fmt.Errorf("%w: duplicate route id %q", ErrInvalidRoute, r.ID)
		}
		if _, dup := paths[r.Path]; dup {
			return fmt.Errorf("%w: duplicate route path %q", ErrInvalidRoute, r.Path)
		}
		ids[r.ID] = struct{}{}
		paths[r.Path] = struct{}{}
	}

	return nil
}

// Routes returns the route table.
func (l *Listener) Routes() []Route {
	return l.routes
}

// Start binds address and begins accepting connections in RUNNING state.
// Bind failures wrap ErrBind.
func (l *Listener) Start(ctx context.Context, address string) (*Handle, error) {
	if !l.started.CompareAndSwap(false, true) {
		return nil, ErrAlreadyStarted
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		l.started.Store(false)
		return nil, fmt.Errorf("%w: %s: %w", ErrBind, address, err)
	}

	h := &Handle{
		listener: l,
		ln:       ln,
		srv: &http.Server{
			Handler:           l.router,
			ReadHeaderTimeout: l.cfg.ReadHeaderTimeout,
			ErrorLog:          stdlog.New(l.log, "", 0),
		},
		coordinator: NewShutdownCoordinator(l.inflight, l.log),
		done:        make(chan struct{}),
	}
	l.cfg.Metrics.SetState(StateRunning.String())

	go h.serve()

	l.log.Info().Str("address", h.Addr()).Int("routes", len(l.routes)).Msg("listener started")
	return h, nil
}

// Handle controls a started listener. Control calls are serialized; State
// is lock-free.
type Handle struct {
	listener    *Listener
	ln          net.Listener
	srv         *http.Server
	coordinator *ShutdownCoordinator

	mu       sync.Mutex
	episodes uint64
	token    SuspendToken

	done       chan struct{}
	stopResult models.DrainResult
	stopErr    error
}

// SuspendToken identifies one suspension episode. Tokens start at 1 and
// grow with every Suspend, so zero never names a suspension.
type SuspendToken = uint64

func (h *Handle) serve() {
	err := h.srv.Serve(h.ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		h.listener.log.Err(err).Str("func", "*Handle.serve").Msg("acceptor failed")
	}
}

// State returns the current state.
func (h *Handle) State() State {
	return h.listener.state.Load()
}

// Addr returns the bound address.
func (h *Handle) Addr() string {
	return h.ln.Addr().String()
}

// InFlight returns the number of requests being processed.
func (h *Handle) InFlight() int {
	return h.listener.inflight.Len()
}

// Done is closed once the listener reaches STOPPED.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// SuspendToken returns the token of the current suspension, or zero.
func (h *Handle) SuspendToken() SuspendToken {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token
}

// Status returns a snapshot for the control plane.
func (h *Handle) Status() models.ListenerStatus {
	return models.ListenerStatus{
		State:        h.State().String(),
		Address:      h.Addr(),
		InFlight:     h.InFlight(),
		SuspendToken: h.SuspendToken(),
	}
}

// Suspend moves a RUNNING listener to SUSPENDED. The socket stays bound;
// new requests receive 503 until Resume. Requests already past the state
// check complete normally.
func (h *Handle) Suspend() (SuspendToken, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if st := h.State(); st != StateRunning {
		return 0, &StateError{Op: "suspend", State: st}
	}

	h.episodes++
	h.token = h.episodes
	h.transition(StateSuspended)

	return h.token, nil
}

// Resume moves a SUSPENDED listener back to RUNNING. token must be the one
// returned by the Suspend that started the current suspension.
func (h *Handle) Resume(token SuspendToken) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.State()
	if st != StateSuspended {
		return &StateError{Op: "resume", State: st}
	}
	if token != h.token {
		return &StateError{Op: "resume", State: st, Err: ErrStaleSuspendToken}
	}

	h.token = 0
	h.transition(StateRunning)

	return nil
}

// Stop closes the acceptor, waits up to timeout for in-flight requests and
// then closes every remaining connection. The listener is STOPPED when Stop
// returns. If requests were still in flight at the deadline the error is a
// [*TimeoutError]. Callers arriving while another Stop is draining wait for
// it and receive the same result.
func (h *Handle) Stop(timeout time.Duration) (models.DrainResult, error) {
	h.mu.Lock()
	switch st := h.State(); st {
	case StateStopped:
		h.mu.Unlock()
		return models.DrainResult{}, &StateError{Op: "stop", State: st}
	case StateStopping:
		h.mu.Unlock()
		<-h.done
		return h.stopResult, h.stopErr
	}
	h.token = 0
	h.transition(StateStopping)
	h.mu.Unlock()

	log := h.listener.log
	if err := h.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Err(err).Str("func", "*Handle.Stop").Msg("failed to close acceptor")
	}
	h.srv.SetKeepAlivesEnabled(false)

	result := h.coordinator.Drain(timeout)

	if err := h.srv.Close(); err != nil {
		log.Err(err).Str("func", "*Handle.Stop").Msg("failed to close connections")
	}

	var stopErr error
	if !result.Completed {
		stopErr = &TimeoutError{Timeout: timeout, Remaining: result.Remaining}
	}

	h.mu.Lock()
	h.stopResult, h.stopErr = result, stopErr
	h.transition(StateStopped)
	h.mu.Unlock()
	close(h.done)

	log.Info().
		Bool("completed", result.Completed).
		Int("remaining", result.Remaining).
		Msg("listener stopped")

	return result, stopErr
}

// transition must be called with h.mu held.
func (h *Handle) transition(to State) {
	from := h.listener.state.Swap(to)
	h.listener.cfg.Metrics.SetState(to.String())
	h.listener.log.Info().Stringer("from", from).Stringer("to", to).Msg("listener state changed")

	for _, observe := range h.listener.cfg.Observers {
		observe(from, to)
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveDispatch(string, string, time.Duration) {}
func (nopMetrics) SetInFlight(int)                               {}
func (nopMetrics) SetState(string)                               {}
