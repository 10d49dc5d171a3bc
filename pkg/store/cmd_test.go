package store_test

import (
	"path/filepath"
	"testing"

	"src.qsh.dev/pkg/store"
	"src.qsh.dev/pkg/store/storetest"
	"src.qsh.dev/pkg/testutil"
)

func TestCmd(t *testing.T) {
	storetest.TestCmd(t, store.MustTempStore(t))
}

func TestNewStore_PersistsAcrossReopen(t *testing.T) {
	dbname := filepath.Join(testutil.TempDir(t), "db")

	st, err := store.NewStore(dbname)
	if err != nil {
		t.Fatalf("NewStore -> %v", err)
	}
	st.AddCmd("foo; bar")
	st.Close()

	st, err = store.NewStore(dbname)
	if err != nil {
		t.Fatalf("NewStore (reopen) -> %v", err)
	}
	defer st.Close()
	cmd, err := st.PrevCmd(2, "")
	if cmd.Text != "foo; bar" || err != nil {
		t.Errorf("PrevCmd(2) after reopen => (%v, %v), want (%q, nil)", cmd, err, "foo; bar")
	}
}

func TestNewStore_InvalidPath(t *testing.T) {
	_, err := store.NewStore(filepath.Join(testutil.TempDir(t), "no", "such", "db"))
	if err == nil {
		t.Errorf("NewStore on a non-existent directory -> nil error")
	}
}
