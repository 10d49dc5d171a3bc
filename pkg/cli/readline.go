package cli

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"src.qsh.dev/pkg/input"
)

// Readline is a line source for terminals, with Emacs or Vi key bindings and
// recall of history entries with the arrow keys and Ctrl-R.
type Readline struct {
	rl   *readline.Instance
	hist *history
}

// NewReadline creates a Readline reading from in and rendering the line
// being edited to out.
func NewReadline(in io.ReadCloser, out io.Writer, cfg Config) (*Readline, error) {
	rlCfg := &readline.Config{
		Stdin:  in,
		Stdout: out,
		Stderr: out,
		// Lines are added by RecordHistory, so that the caller decides what
		// goes into the history.
		DisableAutoSaveHistory: true,
		HistoryLimit:           cfg.HistoryLimit,
		HistorySearchFold:      true,
		VimMode:                cfg.ViMode,
	}
	if cfg.NotTerminal {
		rlCfg.FuncIsTerminal = func() bool { return false }
		rlCfg.FuncMakeRaw = func() error { return nil }
		rlCfg.FuncExitRaw = func() error { return nil }
		rlCfg.FuncGetWidth = func() int { return 80 }
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}
	return &Readline{rl, newHistory(cfg.HistoryLimit)}, nil
}

// ReadLine reads one line with the given prompt. Ctrl-C results in
// input.ErrInterrupted and Ctrl-D on an empty line in io.EOF.
func (ed *Readline) ReadLine(prompt string) (string, error) {
	ed.rl.SetPrompt(prompt)
	line, err := ed.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", input.ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (ed *Readline) RecordHistory(line string) {
	ed.hist.record(line)
	ed.rl.SaveHistory(line)
}

// LoadHistory loads the history database at path, and makes its entries
// available for recall.
func (ed *Readline) LoadHistory(path string) error {
	lines, err := ed.hist.load(path)
	for _, line := range lines {
		ed.rl.SaveHistory(line)
	}
	return err
}

func (ed *Readline) SaveHistory(path string) error { return ed.hist.save(path) }

// History implements HistoryLister.
func (ed *Readline) History(prefix string) []string { return ed.hist.entries(prefix) }

// Close restores the terminal and closes the input.
func (ed *Readline) Close() error { return ed.rl.Close() }
