package cli

import (
	"context"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// Login prompts for the shared password and opens a session. On success the
// session is saved and the running timer, if any, is restored.
func (a *App) Login(ctx context.Context, _ []string) error {
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, password); err != nil {
		return err
	}
	a.saveState(ctx)
	a.println(successStyle.Render("Logged in"))

	a.sync(ctx)
	return nil
}

// Logout ends the session on the server and forgets it locally. The local
// session is dropped even when the server cannot be reached.
func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.api.Logout(ctx)
	a.saveState(ctx)
	if err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

// sync pulls the server's timer and settings into the local state.
func (a *App) sync(ctx context.Context) {
	if _, err := a.ctrl.LoadSettings(ctx); err != nil {
		a.logger.Warn(ctx, "settings not loaded", "error", err)
	}
	if err := a.ctrl.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "timer not restored", "error", err)
		return
	}
	if a.ctrl.State().IsRunning {
		a.println("Resumed running timer:", renderStatus(a.ctrl.State()))
	}
}
