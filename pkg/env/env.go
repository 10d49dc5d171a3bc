// Package env keeps names of environment variables with special significance to
// qsh.
package env

// Environment variables with special significance to qsh.
const (
	HOME = "HOME"
	// Path of the configuration file, overriding the default location.
	QSH_CONFIG = "QSH_CONFIG"
	// Path of the history database, overriding the configuration file.
	QSH_HISTORY = "QSH_HISTORY"
	SHELL       = "SHELL"
	USERPROFILE = "USERPROFILE"
)
