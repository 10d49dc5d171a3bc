package shell

import (
	"os"

	"src.qsh.dev/pkg/config"
	"src.qsh.dev/pkg/env"
	"src.qsh.dev/pkg/input"
	"src.qsh.dev/pkg/prog"
)

// Returns the path of the history database, or "" if history is disabled.
// In decreasing order of precedence, the path comes from the -history flag,
// $QSH_HISTORY, the configuration file, and the default path.
func historyPath(f *prog.Flags, cfg config.Config) string {
	switch {
	case f.NoHistory:
		return ""
	case f.History != "":
		return f.History
	}
	if p := os.Getenv(env.QSH_HISTORY); p != "" {
		return p
	}
	if cfg.HistoryFile != "" {
		return cfg.HistoryFile
	}
	return input.DefaultHistoryPath()
}
