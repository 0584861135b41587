package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pomokeeper/internal/client/client"
	"github.com/dmitrijs2005/pomokeeper/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type command func(ctx context.Context, args []string) error

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Start(ctx context.Context, args []string) error
	Pause(ctx context.Context, args []string) error
	Resume(ctx context.Context, args []string) error
	Stop(ctx context.Context, args []string) error
	Discard(ctx context.Context, args []string) error
	Break(ctx context.Context, args []string) error
	Work(ctx context.Context, args []string) error
	EndBreak(ctx context.Context, args []string) error
	Pomodoro(ctx context.Context, args []string) error
	Project(ctx context.Context, args []string) error
	Desc(ctx context.Context, args []string) error
	Projects(ctx context.Context, args []string) error
	Entries(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Publish(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
}

func commands(a execIface) map[string]command {
	return map[string]command{
		"login":    a.Login,
		"logout":   a.Logout,
		"status":   a.Status,
		"start":    a.Start,
		"pause":    a.Pause,
		"resume":   a.Resume,
		"stop":     a.Stop,
		"discard":  a.Discard,
		"break":    a.Break,
		"work":     a.Work,
		"endbreak": a.EndBreak,
		"pomodoro": a.Pomodoro,
		"project":  a.Project,
		"desc":     a.Desc,
		"projects": a.Projects,
		"entries":  a.Entries,
		"add":      a.Add,
		"export":   a.Export,
		"publish":  a.Publish,
		"settings": a.Settings,
	}
}

const helpLoggedOut = "Available commands: login, help, exit"

const helpLoggedIn = `Timer:    start [description], pause, resume, stop, discard, status
Pomodoro: pomodoro on|off, break, work, endbreak, settings [work break]
Details:  project <id|->, desc [text]
Records:  projects, entries [from [to]], add <minutes> [description],
          export <file>, publish [file]
Session:  logout, help, exit`

// runREPL starts a simple read–eval–print loop for the PomoKeeper client.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on EOF or when the user types "exit" or "quit".
//
// Commands share the reader so they can ask follow-up questions. Command
// errors are printed and the loop carries on; usage errors have already been
// explained by the command itself.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	table := commands(a)

	for {
		printlnFn(fmt.Sprintf("pomo [%s]> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		run, ok := table[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := run(ctx, args); err != nil && !errors.Is(err, errUsage) {
			printlnFn(errorStyle.Render(describeError(err)))
		}
	}
}

// describeError turns a command failure into a user facing line.
func describeError(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	case errors.Is(err, common.ErrorUnauthorized):
		return "Not logged in (" + err.Error() + "); use 'login'"
	case errors.Is(err, ErrTimerGone):
		return "Session was already ended on the server; local timer reset"
	}
	return "Error: " + err.Error()
}
