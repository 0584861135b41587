package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/pomodoro"
	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

var errUsage = errors.New("wrong arguments")

// dispatch applies ev and prints the resulting status.
func (a *App) dispatch(ctx context.Context, ev pomodoro.Event) error {
	if _, err := a.ctrl.Dispatch(ctx, ev); err != nil {
		return err
	}
	a.println(renderStatus(a.ctrl.State()))
	return nil
}

func (a *App) Status(_ context.Context, _ []string) error {
	a.println(renderStatus(a.ctrl.State()))
	return nil
}

// Start begins a new session. The description defaults to the one already
// set; replacing a running session needs confirmation.
func (a *App) Start(ctx context.Context, args []string) error {
	st := a.ctrl.State()
	desc := st.Description
	if len(args) > 0 {
		desc = strings.Join(args, " ")
	}
	if st.IsRunning && !Confirm(a.reader, "A session is running and will be discarded. Start anew?", a.out) {
		a.println("Kept the running session")
		return nil
	}
	return a.dispatch(ctx, pomodoro.Start{At: a.ctrl.now(), ProjectID: st.ProjectID, Description: desc})
}

func (a *App) Pause(ctx context.Context, _ []string) error {
	return a.dispatch(ctx, pomodoro.Pause{})
}

func (a *App) Resume(ctx context.Context, _ []string) error {
	return a.dispatch(ctx, pomodoro.Resume{})
}

func (a *App) Break(ctx context.Context, _ []string) error {
	return a.dispatch(ctx, pomodoro.TakeBreak{})
}

func (a *App) Work(ctx context.Context, _ []string) error {
	return a.dispatch(ctx, pomodoro.KeepWorking{})
}

func (a *App) EndBreak(ctx context.Context, _ []string) error {
	return a.dispatch(ctx, pomodoro.EndBreak{})
}

// Stop ends the session and saves it as a time entry.
func (a *App) Stop(ctx context.Context, _ []string) error {
	entry, err := a.ctrl.Dispatch(ctx, pomodoro.Stop{Save: true})
	if err != nil {
		return err
	}
	if entry == nil {
		a.println(warningStyle.Render("Stopped; under a minute, nothing saved"))
		return nil
	}
	a.println(successStyle.Render("Saved " + timex.FormatDuration(entry.Duration) + " to " + entry.Label()))
	return nil
}

// Discard ends the session without saving anything.
func (a *App) Discard(ctx context.Context, _ []string) error {
	if _, err := a.ctrl.Dispatch(ctx, pomodoro.Stop{Save: false}); err != nil {
		return err
	}
	a.println("Session discarded")
	return nil
}

func (a *App) Pomodoro(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		a.println("Usage: pomodoro on|off")
		return errUsage
	}
	if _, err := a.ctrl.Dispatch(ctx, pomodoro.SetPomodoro{Enabled: args[0] == "on"}); err != nil {
		return err
	}
	a.saveState(ctx)
	a.println(renderStatus(a.ctrl.State()))
	return nil
}

// Project selects the project for the current or next session; "-" clears it.
func (a *App) Project(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: project <id|->")
		return errUsage
	}
	var id *string
	if args[0] != "-" {
		id = common.StringOrNil(args[0])
	}
	if _, err := a.ctrl.Dispatch(ctx, pomodoro.SetProject{ProjectID: id}); err != nil {
		return err
	}
	if id == nil {
		a.println("Project cleared")
	} else {
		a.println("Project set to", *id)
	}
	return nil
}

// Desc sets the description; without arguments it is cleared.
func (a *App) Desc(ctx context.Context, args []string) error {
	desc := strings.Join(args, " ")
	if _, err := a.ctrl.Dispatch(ctx, pomodoro.SetDescription{Description: desc}); err != nil {
		return err
	}
	if desc == "" {
		a.println("Description cleared")
	} else {
		a.println("Description set")
	}
	return nil
}
