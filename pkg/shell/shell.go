// Package shell is the entry point for the terminal interface of qsh.
package shell

import (
	"fmt"
	"os"

	"src.qsh.dev/pkg/cli"
	"src.qsh.dev/pkg/config"
	"src.qsh.dev/pkg/logutil"
	"src.qsh.dev/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	if f.Log == "" && cfg.LogFile != "" {
		if err := logutil.SetOutputFile(cfg.LogFile); err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot open log file:", err)
		}
	}

	if len(args) > 0 {
		exit := Script(fds, args, &ScriptConfig{
			Cmd: f.CodeInArg, Shell: cfg.Shell})
		return prog.Exit(exit)
	}

	if f.Prompt != "" {
		cfg.Prompt = f.Prompt
	}
	src := cli.NewLineSource(fds, cli.Config{
		HistoryLimit: cfg.HistoryLimit,
		ViMode:       f.Vi || cfg.EditingMode == config.ViMode,
	})
	Interact(fds, &InteractConfig{
		Source:      src,
		HistoryFile: historyPath(f, cfg),
		Prompt:      cfg.Prompt,
		// The line source reads ahead from stdin, so statements cannot share
		// it.
		Executor: &ProcessExecutor{Shell: cfg.Shell, Stdout: fds[1], Stderr: fds[2]},
	})
	return nil
}

func loadConfig(f *prog.Flags) (config.Config, error) {
	path := f.Config
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			logger.Println("cannot determine config path, using defaults:", err)
			return config.Default(), nil
		}
	}
	return config.Load(path)
}
