package shell

import (
	"context"
	"os"

	"github.com/google/uuid"
	"src.qsh.dev/pkg/input"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Source input.LineSource
	// Where history is loaded from and saved to; "" disables persistence.
	HistoryFile string
	// Initial prompt; "" means input.DefaultPrompt.
	Prompt   string
	Executor Executor
}

// Interact runs an interactive shell session. History is saved when the
// session ends, or when the process is told to terminate.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = input.DefaultPrompt
	}
	seq := input.New(cfg.Source,
		input.WithHistoryFile(cfg.HistoryFile), input.WithPrompt(prompt))
	defer seq.Close()

	id := uuid.New()
	logger.Printf("session %s started, pid %d", id, os.Getpid())
	defer logger.Printf("session %s ended", id)

	stopSignals := handleSignals(seq, fds[2])
	defer stopSignals()

	s := &session{seq: seq, ex: cfg.Executor, fds: fds, prompt: prompt, src: cfg.Source}
	failures := s.run(context.Background())
	logger.Printf("session %s: %d statements failed", id, failures)
}
