package strutil

import "strings"

// Lines splits s into lines. Lines are terminated by "\n" or "\r\n", and the
// terminators are not included. A terminator at the very end of s does not
// start another line, so Lines("a\n") is ["a"] and Lines("") is empty.
func Lines(s string) []string {
	var lines []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, ChopLineEnding(s[:i+1]))
		s = s[i+1:]
	}
	return lines
}
