package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"src.qsh.dev/pkg/input"
)

// ScriptConfig keeps configuration for the script mode.
type ScriptConfig struct {
	// The first argument is code rather than a file name.
	Cmd bool
	// The shell that runs statements that are not builtins.
	Shell string
	// If non-nil, used instead of a ProcessExecutor running Shell.
	Executor Executor
}

// Script runs the statements of a script and returns the exit status: 0 if
// all of them succeeded, 2 if any failed or the script could not be read.
//
// The first failing statement stops the script; nothing after it runs, on
// the same line or later ones. The remaining arguments are passed to the
// system shell as positional parameters.
func Script(fds [3]*os.File, args []string, cfg *ScriptConfig) int {
	arg0 := args[0]

	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	ex := cfg.Executor
	if ex == nil {
		ex = &ProcessExecutor{
			Shell: cfg.Shell, Args: append([]string{name}, args[1:]...),
			Stdin: fds[0], Stdout: fds[1], Stderr: fds[2]}
	}

	seq := input.NewForScript(code)
	defer seq.Close()
	s := &session{seq: seq, ex: ex, fds: fds}
	if failures := s.run(context.Background()); failures > 0 {
		logger.Printf("%s: %d statements failed", name, failures)
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}
