package store

import (
	"bytes"
	"encoding/binary"

	bolt "go.etcd.io/bbolt"
	. "src.qsh.dev/pkg/store/storedefs"
)

// Command history lives in one bucket. Keys are big-endian sequence numbers,
// so that byte order is numeric order; values are the lines as typed.
const bucketCmd = "cmd"

func init() {
	initDB["initialize command history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	}
}

func cmdBucket(tx *bolt.Tx) *bolt.Bucket { return tx.Bucket([]byte(bucketCmd)) }

// NextCmdSeq returns the sequence number the next added command will get.
func (s *dbStore) NextCmdSeq() (int, error) {
	var next int
	err := s.db.View(func(tx *bolt.Tx) error {
		next = int(cmdBucket(tx).Sequence()) + 1
		return nil
	})
	return next, err
}

// AddCmd appends a command and returns its sequence number.
func (s *dbStore) AddCmd(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := cmdBucket(tx)
		var err error
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(seqKey(seq), []byte(text))
	})
	return int(seq), err
}

// CmdsWithSeq returns the commands with sequence numbers in [from, upto),
// oldest first.
func (s *dbStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := cmdBucket(tx).Cursor()
		k, v := c.Seek(seqKey(uint64(max(from, 0))))
		for ; k != nil && keySeq(k) < upto; k, v = c.Next() {
			cmds = append(cmds, Cmd{Text: string(v), Seq: keySeq(k)})
		}
		return nil
	})
	return cmds, err
}

// PrevCmd returns the newest command below the sequence number upto whose
// text starts with prefix.
func (s *dbStore) PrevCmd(upto int, prefix string) (Cmd, error) {
	if upto <= 0 {
		return Cmd{}, ErrNoMatchingCmd
	}
	var cmd Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := cmdBucket(tx).Cursor()
		// Seek stops at the first key not below upto, or runs off the end.
		k, v := c.Seek(seqKey(uint64(upto)))
		if k == nil {
			k, v = c.Last()
		} else {
			k, v = c.Prev()
		}
		p := []byte(prefix)
		for ; k != nil; k, v = c.Prev() {
			if bytes.HasPrefix(v, p) {
				cmd = Cmd{Text: string(v), Seq: keySeq(k)}
				return nil
			}
		}
		return ErrNoMatchingCmd
	})
	return cmd, err
}

// TrimCmds deletes the oldest commands, keeping at most keep of them. The
// sequence counter is not reset, so sequence numbers are never reused.
func (s *dbStore) TrimCmds(keep int) (int, error) {
	var deleted int
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := cmdBucket(tx)
		excess := b.Stats().KeyN - keep
		if excess <= 0 {
			return nil
		}
		// Deleting through a cursor while iterating skips keys, so collect
		// the keys first.
		keys := make([][]byte, 0, excess)
		c := b.Cursor()
		for k, _ := c.First(); k != nil && len(keys) < excess; k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		deleted = len(keys)
		return nil
	})
	return deleted, err
}

func seqKey(seq uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, seq)
}

func keySeq(key []byte) int {
	return int(binary.BigEndian.Uint64(key))
}
