package shell

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/glamour"
	"src.qsh.dev/pkg/sys"
)

//go:embed help.md
var helpText string

// Renders the help text for out, falling back to the markdown source when it
// cannot be rendered.
func renderHelp(out *os.File) string {
	style := "notty"
	if sys.IsATTY(out.Fd()) {
		style = "dark"
	}
	rendered, err := glamour.Render(helpText, style)
	if err != nil {
		logger.Println("cannot render help:", err)
		return helpText
	}
	return rendered
}
