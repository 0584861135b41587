// Package cli provides the interactive PomoKeeper terminal client.
//
// It wires configuration, the persisted client state, the HTTP API client and
// an interactive REPL. On start-up the client reuses the saved session,
// mirrors the server's active timer into the local pomodoro state and then
// ticks that state once per second in the background.
//
// The Controller owns the pomodoro.State. Every command becomes a pomodoro
// event; the resulting effects are carried out against the API first and the
// new state is committed only when they succeed, so a failed call leaves the
// client where it was. Notifications (terminal bell plus a banner) are best
// effort.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
