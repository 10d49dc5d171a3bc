package histutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.qsh.dev/pkg/store/storedefs"
)

func TestMemStore_Cursor(t *testing.T) {
	s := NewMemStore("+ 0", "- 1", "+ 2")
	testCursorIteration(t, s.Cursor("+"), []storedefs.Cmd{
		{Text: "+ 0", Seq: 0},
		{Text: "+ 2", Seq: 2},
	})
}

func TestMemStore_AddCmd(t *testing.T) {
	s := NewMemStore("a")

	seq, _ := s.AddCmd(storedefs.Cmd{Text: "b", Seq: -1})
	if seq != 1 {
		t.Errorf("AddCmd with negative Seq -> %d, want 1", seq)
	}
	seq, _ = s.AddCmd(storedefs.Cmd{Text: "c", Seq: 10})
	if seq != 10 {
		t.Errorf("AddCmd with Seq 10 -> %d, want 10", seq)
	}
	seq, _ = s.AddCmd(storedefs.Cmd{Text: "d", Seq: -1})
	if seq != 11 {
		t.Errorf("AddCmd after Seq 10 -> %d, want 11", seq)
	}

	cmds, err := s.AllCmds()
	want := []storedefs.Cmd{
		{Text: "a", Seq: 0}, {Text: "b", Seq: 1}, {Text: "c", Seq: 10}, {Text: "d", Seq: 11}}
	if diff := cmp.Diff(want, cmds); diff != "" || err != nil {
		t.Errorf("AllCmds -> error %v, diff (-want +got):\n%s", err, diff)
	}
}

func TestMemStore_AllCmdsReturnsCopy(t *testing.T) {
	s := NewMemStore("a")
	cmds, _ := s.AllCmds()
	cmds[0].Text = "changed"

	cmds, _ = s.AllCmds()
	if cmds[0].Text != "a" {
		t.Errorf("modifying the result of AllCmds changed the store")
	}
}

func TestMemStore_Empty(t *testing.T) {
	s := NewMemStore()
	testCursorIteration(t, s.Cursor(""), nil)
	seq, _ := s.AddCmd(storedefs.Cmd{Text: "first", Seq: -1})
	if seq != 0 {
		t.Errorf("AddCmd to empty store -> %d, want 0", seq)
	}
}
