package store

import (
	"path/filepath"

	"src.qsh.dev/pkg/must"
	"src.qsh.dev/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file. The Store and the
// file are removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	st := must.OK1(NewStore(filepath.Join(testutil.TempDir(c), "db")))
	c.Cleanup(func() {
		err := st.Close()
		if err != nil {
			panic(err)
		}
	})
	return st
}
