package shell

import (
	"errors"
	"fmt"

	"src.qsh.dev/pkg/cli"
	"src.qsh.dev/pkg/input"
)

type builtin func(s *session, arg string) (exit bool, err error)

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		input.ExitStatement: exitBuiltin,
		"quit":              exitBuiltin,
		"help":              helpBuiltin,
		"prompt":            promptBuiltin,
		"history":           historyBuiltin,
	}
}

var errHistoryUnavailable = errors.New("history: not available in this session")

func exitBuiltin(*session, string) (bool, error) { return true, nil }

func helpBuiltin(s *session, _ string) (bool, error) {
	fmt.Fprint(s.fds[1], renderHelp(s.fds[1]))
	return false, nil
}

// Sets the prompt to the argument followed by a space, or restores the
// session's initial prompt when there is no argument.
func promptBuiltin(s *session, arg string) (bool, error) {
	if arg == "" {
		s.seq.SetPrompt(s.prompt)
	} else {
		s.seq.SetPrompt(arg + " ")
	}
	return false, nil
}

func historyBuiltin(s *session, prefix string) (bool, error) {
	lister, ok := s.src.(cli.HistoryLister)
	if !ok {
		return false, errHistoryUnavailable
	}
	for i, line := range lister.History(prefix) {
		fmt.Fprintf(s.fds[1], "%5d  %s\n", i+1, line)
	}
	return false, nil
}
