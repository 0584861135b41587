package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/client/client"
	"github.com/dmitrijs2005/pomokeeper/internal/client/models"
	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/logging"
	"github.com/dmitrijs2005/pomokeeper/internal/pomodoro"
)

// ErrTimerGone reports that the server had no running timer for an event
// that needed one. The local session has been reset by the time it is
// returned.
var ErrTimerGone = errors.New("the session was already ended on the server")

// Controller owns the local pomodoro state and keeps the server timer in
// step with it.
type Controller struct {
	api    client.Client
	notify Notifier
	logger logging.Logger
	now    func() time.Time

	// op serializes Dispatch so effects of one event finish before the next
	// event is applied. mu guards state for readers.
	op    sync.Mutex
	mu    sync.RWMutex
	state pomodoro.State

	// failing is set after a logged sync failure; guarded by op.
	failing bool
}

func NewController(api client.Client, n Notifier, l logging.Logger) *Controller {
	return &Controller{
		api:    api,
		notify: n,
		logger: l.With("module", "controller"),
		now:    time.Now,
		state:  pomodoro.New(),
	}
}

func (c *Controller) State() pomodoro.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Dispatch applies ev, carries out the server side effects and commits the
// new state. If any effect fails the previous state is kept and the error is
// returned, except when the server no longer has the timer: then the local
// session is reset to match and ErrTimerGone is returned. A saved entry, if
// the event produced one, is returned as well.
func (c *Controller) Dispatch(ctx context.Context, ev pomodoro.Event) (*models.Entry, error) {
	c.op.Lock()
	defer c.op.Unlock()

	next, effects, err := pomodoro.Apply(c.State(), ev)
	if err != nil {
		return nil, err
	}

	var (
		entry   *models.Entry
		notices []pomodoro.Notify
	)
	for _, eff := range effects {
		if n, ok := eff.(pomodoro.Notify); ok {
			notices = append(notices, n)
			continue
		}
		e, err := c.sync(ctx, eff)
		if err != nil {
			if targetsTimer(eff) && errors.Is(err, common.ErrorNotFound) && c.timerGone(ctx) {
				c.logger.Warn(ctx, "server timer is gone, local session reset", "effect", fmt.Sprintf("%T", eff))
				c.failing = false
				return nil, ErrTimerGone
			}
			c.syncFailed(ctx, eff, err)
			return nil, err
		}
		if e != nil {
			entry = e
		}
	}
	if c.failing && len(notices) < len(effects) {
		c.logger.Info(ctx, "sync recovered")
		c.failing = false
	}

	c.mu.Lock()
	c.state = next
	c.mu.Unlock()

	for _, n := range notices {
		c.notify.Notify(n.Title, n.Body)
	}
	return entry, nil
}

// syncFailed logs the first failure of a streak at Error and the repeats,
// such as a boundary tick retried every second while offline, at Debug.
func (c *Controller) syncFailed(ctx context.Context, eff pomodoro.Effect, err error) {
	if c.failing {
		c.logger.Debug(ctx, "sync failed", "effect", fmt.Sprintf("%T", eff), "error", err)
		return
	}
	c.failing = true
	c.logger.Error(ctx, "sync failed", "effect", fmt.Sprintf("%T", eff), "error", err)
}

// targetsTimer reports whether eff acts on an already running server timer.
func targetsTimer(eff pomodoro.Effect) bool {
	_, start := eff.(pomodoro.SyncStart)
	return !start
}

// timerGone asks the server whether a timer is running. When none is, the
// local state is reset and true is returned. A 404 with a timer still
// present (an unknown project, say) leaves the state alone.
func (c *Controller) timerGone(ctx context.Context) bool {
	t, err := c.api.Timer(ctx)
	if err != nil || t != nil {
		return false
	}
	next, _, err := pomodoro.Apply(c.State(), pomodoro.Restore{Now: c.now()})
	if err != nil {
		return false
	}
	c.mu.Lock()
	c.state = next
	c.mu.Unlock()
	return true
}

func (c *Controller) sync(ctx context.Context, eff pomodoro.Effect) (*models.Entry, error) {
	switch e := eff.(type) {
	case pomodoro.SyncStart:
		_, err := c.api.StartTimer(ctx, models.StartTimer{ProjectID: e.ProjectID, Description: e.Description})
		return nil, err

	case pomodoro.SyncPause:
		paused, acc := true, e.Accumulated
		_, err := c.api.UpdateTimer(ctx, models.TimerUpdate{IsPaused: &paused, Accumulated: &acc})
		return nil, err

	case pomodoro.SyncResume:
		paused, acc := false, e.Accumulated
		_, err := c.api.UpdateTimer(ctx, models.TimerUpdate{IsPaused: &paused, Accumulated: &acc})
		return nil, err

	case pomodoro.SyncStop:
		return c.api.StopTimer(ctx, e.Save)

	case pomodoro.SyncProject:
		u := models.TimerUpdate{ProjectID: e.ProjectID, ClearProject: e.ProjectID == nil}
		_, err := c.api.UpdateTimer(ctx, u)
		return nil, err

	case pomodoro.SyncDescription:
		d := e.Description
		_, err := c.api.UpdateTimer(ctx, models.TimerUpdate{Description: &d})
		return nil, err
	}
	return nil, fmt.Errorf("unsupported effect %T", eff)
}

// Restore mirrors the server's active timer into the local state.
func (c *Controller) Restore(ctx context.Context) error {
	t, err := c.api.Timer(ctx)
	if err != nil {
		return err
	}
	_, err = c.Dispatch(ctx, pomodoro.Restore{Timer: t.Snapshot(), Now: c.now()})
	return err
}

// LoadSettings copies the server's pomodoro targets into the local state.
func (c *Controller) LoadSettings(ctx context.Context) (*models.Settings, error) {
	s, err := c.api.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := c.Dispatch(ctx, pomodoro.SetDurations{Work: s.WorkDuration, Break: s.BreakDuration}); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveSettings stores new targets on the server and applies them locally.
func (c *Controller) SaveSettings(ctx context.Context, work, brk int) (*models.Settings, error) {
	s, err := c.api.UpdateSettings(ctx, models.Settings{WorkDuration: work, BreakDuration: brk})
	if err != nil {
		return nil, err
	}
	if _, err := c.Dispatch(ctx, pomodoro.SetDurations{Work: s.WorkDuration, Break: s.BreakDuration}); err != nil {
		return nil, err
	}
	return s, nil
}

// RunTicker feeds a Tick every interval until ctx is done.
func (c *Controller) RunTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// failures are logged by Dispatch and retried on the next tick
			_, _ = c.Dispatch(ctx, pomodoro.Tick{})
		case <-ctx.Done():
			return
		}
	}
}
