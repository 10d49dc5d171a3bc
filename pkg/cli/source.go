// Package cli implements the line sources of qsh: an editor for terminals and
// a minimal reader for other inputs. Both keep a history that is persisted in
// a database.
package cli

import (
	"os"

	"src.qsh.dev/pkg/input"
	"src.qsh.dev/pkg/logutil"
	"src.qsh.dev/pkg/sys"
)

var logger = logutil.GetLogger("[cli] ")

// Config keeps configuration for line sources.
type Config struct {
	// Maximum number of history entries to keep; 0 means the default of the
	// line source.
	HistoryLimit int
	// Use Vi key bindings instead of Emacs ones.
	ViMode bool
	// Treat the input as a non-terminal even when it is one. Only used by
	// Readline.
	NotTerminal bool
}

// NewLineSource returns a Readline when fds[0] is a terminal, and a
// MinSource otherwise. Prompts and the line being edited are written to
// fds[2].
func NewLineSource(fds [3]*os.File, cfg Config) input.LineSource {
	if sys.IsATTY(fds[0].Fd()) {
		ed, err := NewReadline(fds[0], fds[2], cfg)
		if err == nil {
			return ed
		}
		logger.Println("cannot create line editor, falling back to basic reader:", err)
	}
	return NewMinSource(fds[0], fds[2], cfg.HistoryLimit)
}
