// Package notify surfaces run outcomes to the user: success to
// stdout, errors to stderr, and a best-effort clipboard copy of the
// created issue URL.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/okampfer/draftbridge/internal/logging"
)

// Terminal writes notifications to the given streams.
type Terminal struct {
	out io.Writer
	err io.Writer

	// copyToClipboard is swappable so tests do not touch the real
	// clipboard
	copyToClipboard func(string) error
}

// NewTerminal returns a notifier bound to stdout and stderr.
func NewTerminal() *Terminal {
	return &Terminal{
		out:             os.Stdout,
		err:             os.Stderr,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Success reports a successful run.
func (n *Terminal) Success(message string) {
	fmt.Fprintln(n.out, message)
}

// Error reports a failed run.
func (n *Terminal) Error(message string) {
	fmt.Fprintln(n.err, message)
}

// SetClipboard copies text to the system clipboard. Clipboard access
// is best effort: headless environments have none, and the run result
// does not depend on it.
func (n *Terminal) SetClipboard(text string) {
	if err := n.copyToClipboard(text); err != nil {
		logging.Debug("clipboard copy failed", "error", err)
	}
}
