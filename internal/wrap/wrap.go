// Package wrap provides width-bounded text filling for docstring prose.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Fill rewraps s into lines of at most width terminal cells, breaking only at
// whitespace. Runs of whitespace, including line breaks, collapse to a single
// space, so the input is treated as one paragraph. A word wider than width is
// kept unsplit on its own line. A width of zero or less degenerates to one
// word per line.
func Fill(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	line := 0
	for i, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case i == 0:
			b.WriteString(word)
			line = w
		case line+1+w <= width:
			b.WriteByte(' ')
			b.WriteString(word)
			line += 1 + w
		default:
			b.WriteByte('\n')
			b.WriteString(word)
			line = w
		}
	}
	return b.String()
}
