package shell

import (
	"fmt"
	"io"
	"os"

	"src.qsh.dev/pkg/input"
	"src.qsh.dev/pkg/sys"
)

// Replaced in tests.
var osExit = os.Exit

// Saves the history and exits when a termination signal arrives. The
// returned function stops the handling.
func handleSignals(seq *input.Sequencer, stderr io.Writer) func() {
	sigCh, stop := sys.NotifyTermination()
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			name := sys.SignalName(sig)
			logger.Printf("received %s, saving history", name)
			seq.Close()
			fmt.Fprintln(stderr, "\nqsh: terminated by", name)
			osExit(1)
		case <-done:
		}
	}()
	return func() {
		stop()
		close(done)
	}
}
