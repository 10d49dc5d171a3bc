// Package histutil provides utilities for working with command history.
package histutil

import (
	"errors"

	"src.qsh.dev/pkg/store/storedefs"
)

// Store is an abstract interface for history store.
type Store interface {
	// AddCmd adds a new command history entry and returns its sequence number.
	// Depending on the implementation, the Store might respect cmd.Seq and
	// return it as is, or allocate another sequence number.
	AddCmd(cmd storedefs.Cmd) (int, error)
	// AllCmds returns all commands kept in the store.
	AllCmds() ([]storedefs.Cmd, error)
	// Cursor returns a cursor that walks backwards through commands with the
	// given prefix. The cursor is initially placed just after the last command
	// in the store.
	Cursor(prefix string) Cursor
}

// Cursor is used to navigate a Store from the newest command to the oldest.
type Cursor interface {
	// Prev moves the cursor to the previous command.
	Prev()
	// Get returns the command the cursor is currently at, or any error if the
	// cursor is in an invalid state. If the cursor is "over the edge", the
	// error is ErrEndOfHistory.
	Get() (storedefs.Cmd, error)
}

// ErrEndOfHistory is returned by Cursor.Get if the cursor is currently over
// the edge.
var ErrEndOfHistory = errors.New("end of history")

// DB is the interface of the storage database used by NewDBStore.
type DB interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	CmdsWithSeq(from, upto int) ([]storedefs.Cmd, error)
	PrevCmd(upto int, prefix string) (storedefs.Cmd, error)
}
