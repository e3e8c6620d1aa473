package docstring

import (
	"strings"

	"github.com/example/docfmt/internal/wrap"
)

// DefaultWidth is the wrap column Normalize targets by default, matching the
// PEP 8 / PEP 257 convention for comment text.
const DefaultWidth = 72

// Normalize rewraps d's prose to at most width columns, in place, and
// returns d for chaining. A nil docstring is returned unchanged.
//
// The short and long descriptions are each refilled as a single paragraph.
// Fragment descriptions keep their explicit line breaks: every line is
// refilled independently and the lines are rejoined, so content the parser
// recorded as separate lines stays separate. Fragment args lose surrounding
// whitespace, and tokens that were only whitespace are dropped. Nothing else
// changes: Meta keeps its count and order, and variant fields such as type
// names, arg names and snippets are left alone.
//
// Words wider than width are never split. A width of zero or less produces
// one word per line rather than failing.
func Normalize(d *Docstring, width int) *Docstring {
	if d == nil {
		return nil
	}

	if d.ShortDescription != "" {
		d.ShortDescription = wrap.Fill(d.ShortDescription, width)
	}
	if d.LongDescription != "" {
		d.LongDescription = wrap.Fill(d.LongDescription, width)
	}

	for _, m := range d.Meta {
		base := m.Base()

		if base.Description != "" {
			lines := strings.Split(base.Description, "\n")
			for i, line := range lines {
				lines[i] = wrap.Fill(line, width)
			}
			base.Description = strings.Join(lines, "\n")
		}

		if len(base.Args) > 0 {
			kept := base.Args[:0]
			for _, arg := range base.Args {
				if trimmed := strings.TrimSpace(arg); trimmed != "" {
					kept = append(kept, trimmed)
				}
			}
			base.Args = kept
		}
	}

	return d
}
