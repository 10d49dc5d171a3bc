package sys

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyTermination() (<-chan os.Signal, func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	return sigCh, func() { signal.Stop(sigCh) }
}

func signalName(sig os.Signal) string { return sig.String() }
