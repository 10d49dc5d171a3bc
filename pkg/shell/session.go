package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"src.qsh.dev/pkg/input"
)

// A session drives a Sequencer, running every statement it produces.
type session struct {
	seq *input.Sequencer
	ex  Executor
	fds [3]*os.File
	// Restored by "prompt" without an argument.
	prompt string
	// Used by "history"; nil in script mode.
	src input.LineSource
}

// Runs statements until the input ends or a builtin ends the session, and
// returns the number of statements that failed.
func (s *session) run(ctx context.Context) int {
	failures := 0
	for {
		stmt, err := s.seq.NextInput()
		if err == io.EOF {
			return failures
		} else if errors.Is(err, input.ErrInterrupted) {
			continue
		} else if err != nil {
			fmt.Fprintln(s.fds[2], "Input error:", err)
			return failures + 1
		}

		exit, err := s.eval(ctx, stmt)
		if err != nil {
			failures++
			fmt.Fprintln(s.fds[2], "Error:", err)
			if pending := s.seq.Pending(); len(pending) > 0 {
				logger.Printf("skipping %d statements after failure", len(pending))
			}
			s.seq.ClearPending()
		}
		if exit {
			return failures
		}
	}
}

func (s *session) eval(ctx context.Context, stmt string) (exit bool, err error) {
	if stmt == "" {
		return false, nil
	}
	name, arg := splitName(stmt)
	if b, ok := builtins[name]; ok {
		return b(s, arg)
	}
	return false, s.ex.Execute(ctx, stmt)
}

// Splits a statement into its first word and the rest, trimmed.
func splitName(stmt string) (name, arg string) {
	i := strings.IndexFunc(stmt, unicode.IsSpace)
	if i == -1 {
		return stmt, ""
	}
	return stmt[:i], strings.TrimSpace(stmt[i:])
}
