package cli

import (
	"context"
	"time"
)

const tickInterval = time.Second

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "logged out"
	}
	return promptStatus(a.ctrl.State())
}

// Root checks the saved session, mirrors the server state, starts the clock
// and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	a.println(titleStyle.Render("PomoKeeper") + " (type 'help' for commands)")

	a.resumeSession(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.ctrl.RunTicker(ctx, tickInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// resumeSession keeps the saved session only if the server still accepts it.
func (a *App) resumeSession(ctx context.Context) {
	if !a.isLoggedIn() {
		a.println("Not logged in; use 'login'")
		return
	}

	ok, err := a.api.Authenticated(ctx)
	if err != nil {
		a.println(errorStyle.Render(describeError(err)))
		return
	}
	if !ok {
		a.api.SetSession("")
		a.saveState(ctx)
		a.println("Session expired; use 'login'")
		return
	}
	a.sync(ctx)
}
