// Package diag renders a ParseError against the source.File it came from:
// a "name:line:col:" header, the offending line, and a caret marker under
// the failing column, the same shape the teacher's DisplayErrors printed
// for its own error kinds.
package diag

import (
	"fmt"
	"io"
	"strings"

	"parsec/pkg/errors"
	"parsec/pkg/source"
)

// Format renders err against src as a single multi-line string: the
// "name:line:col:\n" header, err's rendered body, the source line it
// happened on (if the line number is in bounds), and a caret marker.
func Format(src *source.File, err *errors.ParseError) string {
	var b strings.Builder
	pos := err.Pos()

	fmt.Fprintf(&b, "%s:\n", pos.Render())
	body := err.Render()
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(&b, "%s\n", line)
	}

	lines := src.Lines()
	lineIdx := pos.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return b.String()
	}
	sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")
	fmt.Fprintf(&b, "  %s\n", sourceLine)
	fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", max(pos.Column-1, 0)))
	return b.String()
}

// Print writes Format's output for each of errs to w, separated by a
// blank line, mirroring the teacher's DisplayErrors.
func Print(w io.Writer, src *source.File, errs []*errors.ParseError) {
	for _, err := range errs {
		fmt.Fprint(w, Format(src, err))
		fmt.Fprintln(w)
	}
}
