// Package config loads the qsh configuration file.
//
// The file is YAML, found at $QSH_CONFIG or at qsh/config.yaml under the
// user configuration directory. A missing file yields the defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"src.qsh.dev/pkg/env"
)

// Editing modes.
const (
	EmacsMode = "emacs"
	ViMode    = "vi"
)

// ErrInvalid is wrapped by errors about invalid configuration values.
var ErrInvalid = errors.New("invalid configuration")

// Config keeps the settings of qsh.
type Config struct {
	// Prompt of interactive sessions.
	Prompt string `yaml:"prompt"`
	// Path of the history database. Empty means ~/.qsh_history.
	HistoryFile string `yaml:"history_file"`
	// Maximum number of history entries kept; 0 means no limit.
	HistoryLimit int `yaml:"history_limit"`
	// Key bindings of the line editor, EmacsMode or ViMode.
	EditingMode string `yaml:"editing_mode"`
	// Program used to run statements, invoked as `shell -c statement`.
	Shell string `yaml:"shell"`
	// File to write the debug log to.
	LogFile string `yaml:"log_file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Prompt:       "> ",
		HistoryLimit: 1000,
		EditingMode:  EmacsMode,
		Shell:        "/bin/sh",
	}
}

// Path returns the path of the configuration file.
func Path() (string, error) {
	if p := os.Getenv(env.QSH_CONFIG); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qsh", "config.yaml"), nil
}

// Load reads the configuration file at path. Settings missing from the file
// keep their default values. A file that does not exist is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses configuration from YAML. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Default(), err
	}
	return cfg, cfg.Validate()
}

// Validate checks that all settings have acceptable values.
func (c Config) Validate() error {
	switch c.EditingMode {
	case EmacsMode, ViMode:
	default:
		return fmt.Errorf("%w: editing_mode must be %q or %q, got %q",
			ErrInvalid, EmacsMode, ViMode, c.EditingMode)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative, got %d",
			ErrInvalid, c.HistoryLimit)
	}
	if c.Shell == "" {
		return fmt.Errorf("%w: shell must not be empty", ErrInvalid)
	}
	return nil
}
