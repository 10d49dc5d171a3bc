package histutil

import (
	"errors"

	"src.qsh.dev/pkg/store/storedefs"
)

// NewDBStore returns a Store backed by a database with the view of all
// commands frozen at creation.
func NewDBStore(db DB) (Store, error) {
	upper, err := db.NextCmdSeq()
	if err != nil {
		return nil, err
	}
	return dbStore{db, upper}, nil
}

type dbStore struct {
	db DB
	// Commands at or above this sequence number were added after creation.
	upper int
}

func (s dbStore) AllCmds() ([]storedefs.Cmd, error) {
	return s.db.CmdsWithSeq(0, s.upper)
}

// AddCmd ignores cmd.Seq; the database allocates sequence numbers.
func (s dbStore) AddCmd(cmd storedefs.Cmd) (int, error) {
	return s.db.AddCmd(cmd.Text)
}

// The prefix search runs in the database, one query per step.
func (s dbStore) Cursor(prefix string) Cursor {
	return &dbStoreCursor{db: s.db, prefix: prefix, seq: s.upper, err: ErrEndOfHistory}
}

type dbStoreCursor struct {
	db     DB
	prefix string

	// Sequence number of the current command; 0 once past the oldest one.
	seq int
	cmd storedefs.Cmd
	err error
}

func (c *dbStoreCursor) Prev() {
	if c.seq <= 0 {
		return
	}
	cmd, err := c.db.PrevCmd(c.seq, c.prefix)
	switch {
	case err == nil:
		c.seq, c.cmd, c.err = cmd.Seq, cmd, nil
	case errors.Is(err, storedefs.ErrNoMatchingCmd):
		c.seq, c.cmd, c.err = 0, storedefs.Cmd{}, ErrEndOfHistory
	default:
		// The position is kept, so that Prev can be retried.
		c.err = err
	}
}

func (c *dbStoreCursor) Get() (storedefs.Cmd, error) {
	if c.err != nil {
		return storedefs.Cmd{}, c.err
	}
	return c.cmd, nil
}
