package cli

import (
	"fmt"
	"io"
	"sync"
)

// Notifier tells the user about a phase boundary. Implementations must not
// block for long; failures are swallowed.
type Notifier interface {
	Notify(title, body string)
}

// TerminalNotifier rings the terminal bell and prints a framed banner.
type TerminalNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

func (n *TerminalNotifier) Notify(title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprint(n.w, "\a\n"+bannerStyle.Render(titleStyle.Render(title)+"\n"+body)+"\n")
}
