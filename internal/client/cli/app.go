package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/pomokeeper/internal/client/client"
	"github.com/dmitrijs2005/pomokeeper/internal/client/config"
	"github.com/dmitrijs2005/pomokeeper/internal/client/state"
	"github.com/dmitrijs2005/pomokeeper/internal/logging"
	"github.com/dmitrijs2005/pomokeeper/internal/pomodoro"
)

type App struct {
	config *config.Config
	api    client.Client
	store  *state.Store
	ctrl   *Controller
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, l logging.Logger) (*App, error) {
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, api, state.NewStore(c.StatePath), NewTerminalNotifier(os.Stdout), l, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api client.Client, store *state.Store, n Notifier, l logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	saved, err := store.Load()
	if err != nil {
		return nil, err
	}
	api.SetSession(saved.Session)

	ctrl := NewController(api, n, l)
	if _, err := ctrl.Dispatch(context.Background(), pomodoro.SetPomodoro{Enabled: saved.Pomodoro}); err != nil {
		return nil, err
	}

	return &App{
		config: c,
		api:    api,
		store:  store,
		ctrl:   ctrl,
		logger: l.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.Session() != ""
}

// saveState persists the session and the pomodoro preference. Failures are
// logged only.
func (a *App) saveState(ctx context.Context) {
	st := &state.State{Session: a.api.Session(), Pomodoro: a.ctrl.State().PomodoroEnabled}
	if err := a.store.Save(st); err != nil {
		a.logger.Warn(ctx, "state not saved", "path", a.store.Path(), "error", err)
	}
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// Run starts the client and blocks until the user leaves the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.saveState(ctx)
	a.Root(ctx)
}
