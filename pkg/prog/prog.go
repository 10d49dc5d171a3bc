// Package prog provides the entry point to qsh. It parses command-line flags
// and calls the program doing the actual work, which is the shell.
package prog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"src.qsh.dev/pkg/buildinfo"
	"src.qsh.dev/pkg/logutil"
)

// Flags keeps command-line flags.
type Flags struct {
	Log, Config string

	History   string
	NoHistory bool

	Prompt string
	Vi     bool

	CodeInArg bool

	BuildInfo bool
}

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}

func newRootCommand(fds [3]*os.File, f *Flags, p Program) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qsh [flags] [script]",
		Short: "qsh is a line-oriented command shell",
		Long: `qsh reads statements separated by ";" from the terminal or from a script
and runs them one at a time. When a statement fails, the remaining statements
on the same line are skipped; when running a script, the script stops and qsh
exits with status 2.`,
		Version:       buildinfo.FullVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.Log != "" {
				if err := logutil.SetOutputFile(f.Log); err != nil {
					fmt.Fprintln(fds[2], "Warning: cannot open log file:", err)
				}
			}
			if f.BuildInfo {
				fmt.Fprint(fds[1], buildinfo.String())
				return nil
			}
			if f.CodeInArg && len(args) == 0 {
				return BadUsage("-c requires an argument")
			}
			return p.Run(fds, f, args)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetIn(fds[0])
	cmd.SetOut(fds[1])
	cmd.SetErr(fds[2])
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return BadUsage(err.Error())
	})

	fs := cmd.Flags()
	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.Config, "config", "", "path to the configuration file")
	fs.StringVar(&f.History, "history", "", "path to the history database")
	fs.BoolVar(&f.NoHistory, "no-history", false, "do not load or save history")
	fs.StringVar(&f.Prompt, "prompt", "", "prompt of the interactive mode")
	fs.BoolVar(&f.Vi, "vi", false, "use Vi key bindings in the line editor")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build information and quit")
	fs.BoolVarP(&f.CodeInArg, "command", "c", false, "take first argument as code to execute")
	return cmd
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	cmd := newRootCommand(fds, f, p)
	cmd.SetArgs(args[1:])

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], cmd)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

func usage(out io.Writer, cmd *cobra.Command) {
	cmd.SetOut(out)
	cmd.Usage()
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
