package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/adapter"
	"github.com/MKhiriev/go-http-consumer/internal/app"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

type App struct {
	control adapter.ControlAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(control adapter.ControlAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if control == nil {
		return nil, errors.New("control adapter is nil")
	}
	return &App{control: control, out: out, logger: logger}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, app.MsgUsage)
		return fmt.Errorf("%w: command", ErrMissingArgument)
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	a.logger.Debug().Str("command", cmd).Strs("args", rest).Msg("running command")

	var err error
	switch cmd {
	case "state", "status":
		err = a.state(ctx)
	case "suspend":
		err = a.suspend(ctx)
	case "resume":
		err = a.resume(ctx, rest)
	case "stop":
		err = a.stop(ctx, rest)
	case "verify":
		err = a.verify(ctx, rest)
	case "version":
		err = a.version(ctx)
	default:
		fmt.Fprintf(a.out, "%s %q\n%s\n", app.MsgUnknownCommand, cmd, app.MsgUsage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Str("command", cmd).Msg("command failed")
	}
	return err
}

func (a *App) state(ctx context.Context) error {
	st, err := a.control.State(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "state: %s\naddress: %s\nin flight: %d\n", st.State, st.Address, st.InFlight)
	if st.SuspendToken != 0 {
		fmt.Fprintf(a.out, "suspend token: %d\n", st.SuspendToken)
	}
	return nil
}

func (a *App) suspend(ctx context.Context) error {
	token, err := a.control.Suspend(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %d\n", app.MsgListenerSuspended, token)
	return nil
}

func (a *App) resume(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: token", ErrMissingArgument)
	}
	token, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || token == 0 {
		return fmt.Errorf("%w: token %q", ErrInvalidArgument, args[0])
	}

	if err = a.control.Resume(ctx, token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, app.MsgListenerResumed)
	return nil
}

// stop prints the drain result even when the drain timed out.
func (a *App) stop(ctx context.Context, args []string) error {
	var timeout time.Duration
	if len(args) > 0 {
		d, err := time.ParseDuration(args[0])
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: timeout %q", ErrInvalidArgument, args[0])
		}
		timeout = d
	}

	result, err := a.control.Stop(ctx, timeout)
	if err != nil && !errors.Is(err, adapter.ErrGatewayTimeout) {
		return err
	}

	if result.Completed {
		fmt.Fprintln(a.out, app.MsgDrainCompleted)
		return nil
	}
	fmt.Fprintf(a.out, "%s: %d\n", app.MsgDrainTimedOut, result.Remaining)
	return fmt.Errorf("%w: %d requests remaining", ErrDrainIncomplete, result.Remaining)
}

func (a *App) verify(ctx context.Context, args []string) error {
	scope := models.ScopeParameters
	if len(args) > 0 {
		scope = models.VerificationScope(strings.ToUpper(args[0]))
	}

	result, err := a.control.Verify(ctx, scope)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", result.Scope, result.Status)
	for _, e := range result.Errors {
		fmt.Fprintf(a.out, "  - %s\n", e)
	}
	return nil
}

func (a *App) version(ctx context.Context) error {
	v, err := a.control.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "server version: %s\n", v)
	return nil
}
