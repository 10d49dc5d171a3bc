package shell

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"src.qsh.dev/pkg/must"
)

// An Executor that records statements and fails the ones in fail.
type fakeExecutor struct {
	stmts []string
	fail  map[string]bool
}

func (e *fakeExecutor) Execute(_ context.Context, stmt string) error {
	e.stmts = append(e.stmts, stmt)
	if e.fail[stmt] {
		return &ExitError{stmt, 1}
	}
	return nil
}

func failing(stmts ...string) *fakeExecutor {
	e := &fakeExecutor{fail: map[string]bool{}}
	for _, stmt := range stmts {
		e.fail[stmt] = true
	}
	return e
}

// Standard files for tests. Stdin is the null device; stdout and stderr are
// files whose content is returned by the second and third return values.
func testFds(t *testing.T) ([3]*os.File, func() string, func() string) {
	t.Helper()
	dir := t.TempDir()
	stdin := must.OK1(os.Open(os.DevNull))
	stdout := must.OK1(os.Create(filepath.Join(dir, "stdout")))
	stderr := must.OK1(os.Create(filepath.Join(dir, "stderr")))
	t.Cleanup(func() {
		stdin.Close()
		stdout.Close()
		stderr.Close()
	})
	read := func(f *os.File) func() string {
		return func() string { return must.ReadFileString(f.Name()) }
	}
	return [3]*os.File{stdin, stdout, stderr}, read(stdout), read(stderr)
}
