package input

import (
	"strings"

	"src.qsh.dev/pkg/strutil"
)

const (
	// Delimiter separates statements on the same line. It cannot be escaped.
	Delimiter = ";"
	// ExitStatement is appended to every script so that replaying a script
	// always ends the session.
	ExitStatement = "exit"
)

// Split splits a line into statements on Delimiter and trims whitespace around
// each statement. The result always has at least one element; empty
// statements are kept.
func Split(line string) []string {
	stmts := strings.Split(line, Delimiter)
	for i, stmt := range stmts {
		stmts[i] = strings.TrimSpace(stmt)
	}
	return stmts
}

// SplitScript splits every line of a script with Split and concatenates the
// results in order. ExitStatement is not included.
func SplitScript(script string) []string {
	var stmts []string
	for _, line := range strutil.Lines(script) {
		stmts = append(stmts, Split(line)...)
	}
	return stmts
}
