package cli

import (
	"bufio"
	"fmt"
	"io"

	"src.qsh.dev/pkg/strutil"
)

// MinSource is a line source with no editing capabilities, used when the
// input is not a terminal. It keeps history but offers no way to recall it.
type MinSource struct {
	in   *bufio.Reader
	out  io.Writer
	hist *history
	// Set when the last line had no terminator; the next read returns io.EOF.
	eof bool
}

// NewMinSource creates a MinSource reading from in and writing prompts to
// out. The history database is trimmed to historyLimit entries when saved; 0
// means no limit.
func NewMinSource(in io.Reader, out io.Writer, historyLimit int) *MinSource {
	return &MinSource{in: bufio.NewReader(in), out: out, hist: newHistory(historyLimit)}
}

// ReadLine writes the prompt and reads one line. A last line without a line
// terminator is returned as a normal line.
func (ed *MinSource) ReadLine(prompt string) (string, error) {
	if ed.eof {
		return "", io.EOF
	}
	fmt.Fprint(ed.out, prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		ed.eof = true
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strutil.ChopLineEnding(line), nil
}

func (ed *MinSource) RecordHistory(line string) { ed.hist.record(line) }

func (ed *MinSource) LoadHistory(path string) error {
	_, err := ed.hist.load(path)
	return err
}

func (ed *MinSource) SaveHistory(path string) error { return ed.hist.save(path) }

// History implements HistoryLister.
func (ed *MinSource) History(prefix string) []string { return ed.hist.entries(prefix) }
