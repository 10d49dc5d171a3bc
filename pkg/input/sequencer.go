// Package input turns lines of user input or a script into a sequence of
// statements.
//
// A line may hold several statements separated by Delimiter. They are handed
// out one per call to Sequencer.NextInput, in the order they appear, while
// the history records the line as it was typed.
package input

import (
	"io"
	"path/filepath"
	"sync"

	"src.qsh.dev/pkg/fsutil"
	"src.qsh.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[input] ")

// DefaultPrompt is the prompt of interactive sessions.
const DefaultPrompt = "> "

// HistoryFileName is the name of the history file in the home directory.
const HistoryFileName = ".qsh_history"

// Sequencer produces the statements of a session. It owns its LineSource.
//
// A Sequencer is not safe for concurrent use; it is meant to be driven by
// the goroutine running the read loop. Close is the only exception.
type Sequencer struct {
	src         LineSource
	historyPath string
	prompt      string
	// Statements still to be returned, oldest first.
	pending []string

	closeOnce sync.Once
}

// Option configures a Sequencer created by New.
type Option func(*Sequencer)

// WithHistoryFile sets the path the history is loaded from and saved to. An
// empty path disables history persistence.
func WithHistoryFile(path string) Option {
	return func(s *Sequencer) { s.historyPath = path }
}

// WithPrompt sets the initial prompt.
func WithPrompt(prompt string) Option {
	return func(s *Sequencer) { s.prompt = prompt }
}

// New creates an interactive Sequencer reading from src, and loads the
// history into src. Unless overridden with WithHistoryFile, history lives in
// DefaultHistoryPath. Failure to load the history is logged and otherwise
// ignored.
func New(src LineSource, opts ...Option) *Sequencer {
	s := &Sequencer{src: src, historyPath: DefaultHistoryPath(), prompt: DefaultPrompt}
	for _, opt := range opts {
		opt(s)
	}
	if s.historyPath != "" {
		err := src.LoadHistory(s.historyPath)
		if err != nil {
			logger.Printf("warning: cannot load history from %s: %v",
				fsutil.TildeAbbr(s.historyPath), err)
		}
	}
	return s
}

// NewForScript creates a Sequencer that replays the statements of script,
// followed by ExitStatement. It never reads any further input and does not
// touch the history. The prompt is empty.
func NewForScript(script string) *Sequencer {
	pending := append(SplitScript(script), ExitStatement)
	return &Sequencer{src: exhaustedSource{}, pending: pending}
}

// DefaultHistoryPath returns the path of the history file in the home
// directory of the current user, or "" if the home directory is unknown.
func DefaultHistoryPath() string {
	home, err := fsutil.GetHome("")
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, HistoryFileName)
}

// SetPrompt sets the prompt shown by subsequent reads. It does not affect
// pending statements.
func (s *Sequencer) SetPrompt(prompt string) { s.prompt = prompt }

// Prompt returns the current prompt.
func (s *Sequencer) Prompt() string { return s.prompt }

// NextInput returns the next statement.
//
// Pending statements are returned first, without reading input. When there
// are none, a line is read from the LineSource, recorded in the history
// verbatim, and split into statements; the first of them is returned and the
// rest become pending. Errors from the LineSource, including io.EOF and
// ErrInterrupted, are returned unchanged and leave the Sequencer as it was.
//
// Statements are trimmed of surrounding whitespace and may be empty.
func (s *Sequencer) NextInput() (string, error) {
	for len(s.pending) == 0 {
		line, err := s.src.ReadLine(s.prompt)
		if err != nil {
			return "", err
		}
		s.src.RecordHistory(line)
		s.pending = Split(line)
	}
	stmt := s.pending[0]
	s.pending = s.pending[1:]
	return stmt, nil
}

// ClearPending discards all pending statements, so that the next call to
// NextInput reads a new line. It must be called when a statement fails;
// otherwise the statements following it on the same line still run.
func (s *Sequencer) ClearPending() { s.pending = nil }

// Pending returns a copy of the pending statements, oldest first.
func (s *Sequencer) Pending() []string {
	return append([]string(nil), s.pending...)
}

// Close saves the history and releases the LineSource if it is an
// io.Closer. Failures are logged. Only the first call has any effect.
func (s *Sequencer) Close() {
	s.closeOnce.Do(func() {
		if s.historyPath != "" {
			err := s.src.SaveHistory(s.historyPath)
			if err != nil {
				logger.Printf("warning: cannot save history to %s: %v",
					fsutil.TildeAbbr(s.historyPath), err)
			}
		}
		if closer, ok := s.src.(io.Closer); ok {
			err := closer.Close()
			if err != nil {
				logger.Printf("warning: cannot close line source: %v", err)
			}
		}
	})
}
