package histutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.qsh.dev/pkg/store/storedefs"
)

// Walks the cursor backwards past the start, and checks that it visits
// wantCmds (given in chronological order) newest first.
func testCursorIteration(t *testing.T, c Cursor, wantCmds []storedefs.Cmd) {
	t.Helper()
	expectEndOfHistory := func() {
		t.Helper()
		_, err := c.Get()
		if err != ErrEndOfHistory {
			t.Errorf("Get -> error %v, want ErrEndOfHistory", err)
		}
	}
	expectCmd := func(i int) {
		t.Helper()
		cmd, err := c.Get()
		if err != nil {
			t.Errorf("Get -> error %v, want nil", err)
		}
		if diff := cmp.Diff(wantCmds[i], cmd); diff != "" {
			t.Errorf("Get -> (-want +got):\n%s", diff)
		}
	}

	expectEndOfHistory()
	for i := len(wantCmds) - 1; i >= 0; i-- {
		c.Prev()
		expectCmd(i)
	}
	c.Prev()
	expectEndOfHistory()
	// Prev over the edge is a no-op.
	c.Prev()
	expectEndOfHistory()
}
