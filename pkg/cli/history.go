package cli

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"sync"

	"src.qsh.dev/pkg/cli/histutil"
	"src.qsh.dev/pkg/store"
	"src.qsh.dev/pkg/store/storedefs"
)

// The history of a line source. Entries recorded in this session live in
// memory until they are saved; older entries are read from the database when
// needed.
//
// The methods are safe for concurrent use, since save may also be called
// when handling a signal.
type history struct {
	mu      sync.Mutex
	session histutil.Store
	// Number of session entries already written to the database.
	saved int

	// The database entries are listed from; set by a successful load or save.
	path string
	// Maximum number of entries kept in the database; 0 means no limit.
	limit int
}

func newHistory(limit int) *history {
	return &history{session: histutil.NewMemStore(), limit: limit}
}

func (h *history) record(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.AddCmd(storedefs.Cmd{Text: line, Seq: -1})
}

// Loads all entries of the database at path, and returns their texts, oldest
// first. A database that does not exist is treated as empty.
func (h *history) load(path string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		h.path = path
		return nil, nil
	}
	db, err := store.NewStore(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	hs, err := histutil.NewDBStore(db)
	if err != nil {
		return nil, err
	}
	cmds, err := hs.AllCmds()
	if err != nil {
		return nil, err
	}
	h.path = path
	texts := make([]string, len(cmds))
	for i, cmd := range cmds {
		texts[i] = cmd.Text
	}
	return texts, nil
}

// Appends the entries recorded since the last save to the database at path,
// creating it if needed, and trims the database to the limit.
func (h *history) save(path string) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cmds, err := h.session.AllCmds()
	if err != nil || len(cmds) == h.saved {
		return err
	}
	db, err := store.NewStore(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, db.Close()) }()
	hs, err := histutil.NewDBStore(db)
	if err != nil {
		return err
	}
	for _, cmd := range cmds[h.saved:] {
		if _, err := hs.AddCmd(cmd); err != nil {
			return err
		}
		h.saved++
	}
	h.path = path
	if h.limit > 0 {
		_, err = db.TrimCmds(h.limit)
	}
	return err
}

// Returns the texts of all entries starting with prefix, oldest first:
// entries in the database, followed by entries of this session that are not
// saved yet. If the database cannot be read, only the latter are returned.
func (h *history) entries(prefix string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	texts, err := h.persisted(prefix)
	if err != nil {
		logger.Printf("cannot list history in %s: %v", h.path, err)
	}
	var unsaved []string
	c := h.session.Cursor(prefix)
	for c.Prev(); ; c.Prev() {
		// Session entries are numbered from 0 in the order they were recorded.
		cmd, err := c.Get()
		if err != nil || cmd.Seq < h.saved {
			break
		}
		unsaved = append(unsaved, cmd.Text)
	}
	slices.Reverse(unsaved)
	return append(texts, unsaved...)
}

// Returns the texts of entries in the database starting with prefix, oldest
// first. The prefix is matched by the database.
func (h *history) persisted(prefix string) ([]string, error) {
	if h.path == "" {
		return nil, nil
	}
	if _, err := os.Stat(h.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	db, err := store.NewStore(h.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	hs, err := histutil.NewDBStore(db)
	if err != nil {
		return nil, err
	}
	var texts []string
	c := hs.Cursor(prefix)
	for c.Prev(); ; c.Prev() {
		cmd, err := c.Get()
		if errors.Is(err, histutil.ErrEndOfHistory) {
			break
		} else if err != nil {
			return nil, err
		}
		texts = append(texts, cmd.Text)
	}
	slices.Reverse(texts)
	return texts, nil
}

// Lists history entries; implemented by the line sources in this package.
type HistoryLister interface {
	// History returns the history entries starting with prefix, oldest first.
	History(prefix string) []string
}
