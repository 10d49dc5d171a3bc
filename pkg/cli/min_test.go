package cli

import (
	"io"
	"strings"
	"testing"

	"src.qsh.dev/pkg/input"
)

var _ input.LineSource = (*MinSource)(nil)

func TestMinSource_ReadLine(t *testing.T) {
	var out strings.Builder
	ed := NewMinSource(strings.NewReader("foo; bar\r\n\nlast"), &out, 0)

	for _, want := range []string{"foo; bar", "", "last"} {
		line, err := ed.ReadLine("> ")
		if line != want || err != nil {
			t.Errorf("ReadLine -> (%q, %v), want (%q, nil)", line, err, want)
		}
	}
	for i := 0; i < 2; i++ {
		if line, err := ed.ReadLine("> "); line != "" || err != io.EOF {
			t.Errorf("ReadLine at end -> (%q, %v), want (\"\", io.EOF)", line, err)
		}
	}
	if got := out.String(); got != "> > > " {
		t.Errorf("prompts written: %q, want %q", got, "> > > ")
	}
}

func TestMinSource_ReadLine_TerminatedLastLine(t *testing.T) {
	ed := NewMinSource(strings.NewReader("only\n"), io.Discard, 0)

	ed.ReadLine("")
	if line, err := ed.ReadLine(""); line != "" || err != io.EOF {
		t.Errorf("ReadLine at end -> (%q, %v), want (\"\", io.EOF)", line, err)
	}
}
