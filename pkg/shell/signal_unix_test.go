//go:build unix

package shell

import (
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"src.qsh.dev/pkg/input"
	"src.qsh.dev/pkg/testutil"
)

func TestHandleSignals_SavesHistoryAndExits(t *testing.T) {
	exits := make(chan int, 1)
	testutil.Set(t, &osExit, func(code int) { exits <- code })

	src := &scriptedSource{}
	histFile := filepath.Join(testutil.TempDir(t), "history")
	seq := input.New(src, input.WithHistoryFile(histFile))
	fds, _, stderr := testFds(t)
	stop := handleSignals(seq, fds[2])
	defer stop()

	syscall.Kill(syscall.Getpid(), syscall.SIGHUP)

	select {
	case code := <-exits:
		if code != 1 {
			t.Errorf("got exit code %d, want 1", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for exit")
	}
	if len(src.saved) != 1 || src.saved[0] != histFile {
		t.Errorf("got history saves %v, want [%s]", src.saved, histFile)
	}
	if !strings.Contains(stderr(), "terminated by SIGHUP") {
		t.Errorf("stderr doesn't name the signal: %q", stderr())
	}
}

func TestHandleSignals_Stop(t *testing.T) {
	testutil.Set(t, &osExit, func(int) { t.Error("exit called after stop") })
	seq := input.New(&scriptedSource{}, input.WithHistoryFile(""))
	fds, _, _ := testFds(t)

	stop := handleSignals(seq, fds[2])
	stop()
}
