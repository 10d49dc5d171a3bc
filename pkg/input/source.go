package input

import (
	"errors"
	"io"
)

// LineSource supplies raw lines of input and keeps their history. It is
// implemented by the line editors in src.qsh.dev/pkg/cli.
type LineSource interface {
	// ReadLine shows the prompt and blocks until the user supplies one line,
	// which is returned without its line terminator. It returns io.EOF at the
	// end of input and ErrInterrupted when the user interrupts the read.
	ReadLine(prompt string) (string, error)
	// RecordHistory appends a line to the history.
	RecordHistory(line string)
	// LoadHistory loads the history persisted at path.
	LoadHistory(path string) error
	// SaveHistory persists the history to path.
	SaveHistory(path string) error
}

// ErrInterrupted is returned by LineSource.ReadLine when the user interrupts
// the read, usually with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// A LineSource with no input and no history, used by scripted sessions.
type exhaustedSource struct{}

func (exhaustedSource) ReadLine(string) (string, error) { return "", io.EOF }
func (exhaustedSource) RecordHistory(string)            {}
func (exhaustedSource) LoadHistory(string) error        { return nil }
func (exhaustedSource) SaveHistory(string) error        { return nil }
