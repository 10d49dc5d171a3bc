// Package sys provide system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NotifyTermination returns a channel on which the signals that should end an
// interactive session are delivered, and a function to stop the delivery.
func NotifyTermination() (<-chan os.Signal, func()) {
	return notifyTermination()
}

// SignalName returns a human-readable name of the signal, such as "SIGHUP".
func SignalName(sig os.Signal) string {
	return signalName(sig)
}
