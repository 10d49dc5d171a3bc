// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.qsh.dev/pkg/store/storedefs"
)

var (
	cmds     = []string{"echo foo", "put bar", "put lorem", "echo bar"}
	searches = []struct {
		upto      int
		prefix    string
		wantedSeq int
		wantedCmd string
		wantedErr error
	}{
		{5, "echo", 4, "echo bar", nil},
		{5, "put", 3, "put lorem", nil},
		{4, "echo", 1, "echo foo", nil},
		{100, "put b", 2, "put bar", nil},
		{3, "f", 0, "", storedefs.ErrNoMatchingCmd},
		{1, "", 0, "", storedefs.ErrNoMatchingCmd},
		{0, "", 0, "", storedefs.ErrNoMatchingCmd},
		{-1, "", 0, "", storedefs.ErrNoMatchingCmd},
	}
)

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() => (%v, %v), want (1, nil)",
			startSeq, err)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) => (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() => (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	// CmdsWithSeq
	wantCmdWithSeqs := make([]storedefs.Cmd, len(cmds))
	for i, cmd := range cmds {
		wantCmdWithSeqs[i] = storedefs.Cmd{Text: cmd, Seq: i + 1}
	}
	for i := 0; i < len(cmds); i++ {
		for j := i; j <= len(cmds); j++ {
			cmdWithSeqs, err := store.CmdsWithSeq(i+1, j+1)
			if diff := cmp.Diff(wantCmdWithSeqs[i:j], cmdWithSeqs, cmp.Comparer(sameCmds)); diff != "" || err != nil {
				t.Errorf("store.CmdsWithSeq(%v, %v) -> error %v, diff (-want +got):\n%s",
					i+1, j+1, err, diff)
			}
		}
	}

	// PrevCmd
	for _, tt := range searches {
		cmd, err := store.PrevCmd(tt.upto, tt.prefix)
		wantedCmd := storedefs.Cmd{Text: tt.wantedCmd, Seq: tt.wantedSeq}
		if cmd != wantedCmd || !matchErr(err, tt.wantedErr) {
			t.Errorf("store.PrevCmd(%v, %q) => (%v, %v), want (%v, %v)",
				tt.upto, tt.prefix, cmd, err, wantedCmd, tt.wantedErr)
		}
	}

	// TrimCmds keeps the newest commands.
	deleted, err := store.TrimCmds(2)
	if deleted != 2 || err != nil {
		t.Errorf("store.TrimCmds(2) => (%v, %v), want (2, nil)", deleted, err)
	}
	remaining, _ := store.CmdsWithSeq(0, wantedEndSeq)
	wantRemaining := []storedefs.Cmd{{Text: "put lorem", Seq: 3}, {Text: "echo bar", Seq: 4}}
	if diff := cmp.Diff(wantRemaining, remaining); diff != "" {
		t.Errorf("commands after TrimCmds (-want +got):\n%s", diff)
	}
	if seq, _ := store.NextCmdSeq(); seq != wantedEndSeq {
		t.Errorf("store.NextCmdSeq() after TrimCmds => %v, want %v", seq, wantedEndSeq)
	}
	if deleted, err := store.TrimCmds(10); deleted != 0 || err != nil {
		t.Errorf("store.TrimCmds(10) => (%v, %v), want (0, nil)", deleted, err)
	}
	if cmd, err := store.PrevCmd(wantedEndSeq, "put b"); !matchErr(err, storedefs.ErrNoMatchingCmd) {
		t.Errorf("store.PrevCmd after TrimCmds => (%v, %v), want trimmed command gone",
			cmd, err)
	}
}

// CmdsWithSeq returns nil rather than an empty slice for empty ranges.
func sameCmds(a, b []storedefs.Cmd) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func matchErr(e1, e2 error) bool {
	return (e1 == nil && e2 == nil) || (e1 != nil && e2 != nil && e1.Error() == e2.Error())
}
