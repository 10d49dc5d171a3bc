package shell

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"src.qsh.dev/pkg/config"
	"src.qsh.dev/pkg/env"
	"src.qsh.dev/pkg/input"
	"src.qsh.dev/pkg/must"
	"src.qsh.dev/pkg/prog"
	"src.qsh.dev/pkg/testutil"
)

func TestProgram_Script(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no /bin/sh")
	}
	dir := testutil.InTempDir(t)
	cfgFile := filepath.Join(dir, "config.yaml")
	must.WriteFile(cfgFile, "shell: /bin/sh\n")
	must.WriteFile("a.qsh", "echo $1; false; echo skipped\necho done\n")
	must.WriteFile("b.qsh", "echo $1\necho done\n")

	for _, tc := range []struct {
		name       string
		args       []string
		wantExit   int
		wantStdout string
	}{
		{"code", []string{"-c", "echo hi; echo there"}, 0, "hi\nthere\n"},
		{"code with failure", []string{"-c", "echo hi; false; echo there"}, 2, "hi\n"},
		{"file", []string{"a.qsh", "x"}, 2, "x\n"},
		{"file without failure", []string{"b.qsh", "y"}, 0, "y\ndone\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fds, stdout, stderr := testFds(t)
			args := append([]string{"qsh", "--config", cfgFile}, tc.args...)

			exit := prog.Run(fds, args, Program{})

			if exit != tc.wantExit {
				t.Errorf("got exit %d, want %d; stderr:\n%s", exit, tc.wantExit, stderr())
			}
			if got := stdout(); got != tc.wantStdout {
				t.Errorf("got stdout %q, want %q", got, tc.wantStdout)
			}
		})
	}
}

func TestProgram_BadConfig(t *testing.T) {
	dir := testutil.TempDir(t)
	cfgFile := filepath.Join(dir, "config.yaml")
	must.WriteFile(cfgFile, "no_such_key: 1\n")
	fds, _, stderr := testFds(t)

	exit := prog.Run(fds, []string{"qsh", "--config", cfgFile, "-c", "echo"}, Program{})

	if exit != 2 {
		t.Errorf("got exit %d, want 2", exit)
	}
	if !strings.Contains(stderr(), cfgFile) {
		t.Errorf("stderr doesn't name the config file: %q", stderr())
	}
}

func TestProgram_Interactive(t *testing.T) {
	dir := testutil.TempDir(t)
	cfgFile := filepath.Join(dir, "config.yaml")
	histFile := filepath.Join(dir, "history")
	must.WriteFile(cfgFile, "prompt: 'qsh> '\n")
	fds, _, stderr := testFds(t)
	// Replace stdin with a file holding the session.
	stdinFile := filepath.Join(dir, "stdin")
	must.WriteFile(stdinFile, "history\nexit\n")
	fds[0] = must.OK1(os.Open(stdinFile))
	defer fds[0].Close()

	exit := prog.Run(fds,
		[]string{"qsh", "--config", cfgFile, "--history", histFile}, Program{})

	if exit != 0 {
		t.Errorf("got exit %d, want 0", exit)
	}
	// MinSource writes prompts to stderr.
	if got := stderr(); got != "qsh> qsh> " {
		t.Errorf("got stderr %q, want %q", got, "qsh> qsh> ")
	}
	if _, err := os.Stat(histFile); err != nil {
		t.Errorf("history not saved: %v", err)
	}
}

func TestHistoryPath(t *testing.T) {
	home := testutil.TempHome(t)
	testutil.Unsetenv(t, env.QSH_HISTORY)
	defaultPath := filepath.Join(home, input.HistoryFileName)

	cfg := config.Default()
	if got := historyPath(&prog.Flags{}, cfg); got != defaultPath {
		t.Errorf("got %q, want default %q", got, defaultPath)
	}

	cfg.HistoryFile = "/from/config"
	if got := historyPath(&prog.Flags{}, cfg); got != "/from/config" {
		t.Errorf("got %q, want path from config", got)
	}

	testutil.Setenv(t, env.QSH_HISTORY, "/from/env")
	if got := historyPath(&prog.Flags{}, cfg); got != "/from/env" {
		t.Errorf("got %q, want path from environment", got)
	}

	if got := historyPath(&prog.Flags{History: "/from/flag"}, cfg); got != "/from/flag" {
		t.Errorf("got %q, want path from flag", got)
	}

	if got := historyPath(&prog.Flags{History: "/from/flag", NoHistory: true}, cfg); got != "" {
		t.Errorf("got %q, want history disabled", got)
	}
}
