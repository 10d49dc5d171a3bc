// The qsh binary reads statements from the terminal or a script and runs
// them.
package main

import (
	"os"

	"src.qsh.dev/pkg/prog"
	"src.qsh.dev/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, shell.Program{}))
}
