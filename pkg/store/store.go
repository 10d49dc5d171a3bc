// Package store defines the permanent storage service: a bbolt database
// holding the command history.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.qsh.dev/pkg/logutil"
	"src.qsh.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// How long to wait for the file lock held by another session.
const openTimeout = time.Second

var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for qsh. The underlying file is
// locked while the store is open, so callers should close it as soon as they
// are done with it.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file, creating it when it does
// not exist.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	st, err := NewStoreFromDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	st := &dbStore{db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	return st, err
}

// Close closes the underlying bolt DB.
func (s *dbStore) Close() error {
	return s.db.Close()
}
