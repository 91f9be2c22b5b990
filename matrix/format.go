// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes m to w as a debugging aid, one row per line, each cell
// rendered with %f and the row bracketed by '|', followed by a blank line:
//
//	| 1.000000 0.000000 0.000000 0.000000 |
//	...
//
// Returns the first write error.
func Fprint(w io.Writer, m Mat4) error {
	_, err := io.WriteString(w, m.String())

	return err
}

// Print writes m to standard output in the Fprint format.
func Print(m Mat4) {
	fmt.Print(m.String())
}

// String implements fmt.Stringer using the Fprint layout.
func (m Mat4) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < Size; i++ {
		sb.WriteString("|")
		for j = 0; j < Size; j++ {
			fmt.Fprintf(&sb, " %f", m[i][j])
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
