package docstring

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShortDescription(t *testing.T) {
	d := &Docstring{ShortDescription: "This is a test."}

	Normalize(d, 10)

	assert.Equal(t, "This is a\ntest.", d.ShortDescription)
}

func TestNormalizeStripsAndRefills(t *testing.T) {
	d := &Docstring{
		ShortDescription: "  padded\nsummary line  ",
		LongDescription:  "first paragraph.\n\nsecond paragraph.",
	}

	Normalize(d, 72)

	assert.Equal(t, "padded summary line", d.ShortDescription)
	// The long description is a single refill unit; original blank-line
	// breaks inside it are not preserved.
	assert.Equal(t, "first paragraph. second paragraph.", d.LongDescription)
}

func TestNormalizeMetaDescriptionPerLine(t *testing.T) {
	p := &Param{
		MetaBase: MetaBase{
			Description: "line one that is quite long and will wrap\nline two",
		},
		ArgName: "x",
	}
	d := &Docstring{Meta: []Meta{p}}

	Normalize(d, 20)

	assert.Equal(t, "line one that is\nquite long and will\nwrap\nline two", p.Description)

	// Unlike the top-level descriptions, explicit line breaks survive:
	// "line two" is refilled on its own, not merged into its neighbor.
	lines := strings.Split(p.Description, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, "line two", lines[3])
}

func TestNormalizeMetaDescriptionKeepsBlankLines(t *testing.T) {
	n := &Note{MetaBase: MetaBase{Description: "first paragraph.\n\nsecond paragraph."}}
	d := &Docstring{Meta: []Meta{n}}

	Normalize(d, 72)

	assert.Equal(t, "first paragraph.\n\nsecond paragraph.", n.Description)
}

func TestNormalizeArgsStripping(t *testing.T) {
	p := &Param{
		MetaBase: MetaBase{Args: []string{"  a ", "", "b\t"}},
		ArgName:  "a",
	}
	d := &Docstring{Meta: []Meta{p}}

	Normalize(d, DefaultWidth)

	assert.Equal(t, []string{"a", "b"}, p.Args)
}

func TestNormalizeArgsAllBlank(t *testing.T) {
	r := &Raises{MetaBase: MetaBase{Args: []string{"", "  ", "\t"}}}
	d := &Docstring{Meta: []Meta{r}}

	Normalize(d, DefaultWidth)

	assert.Empty(t, r.Args)
}

func TestNormalizePreservesStructure(t *testing.T) {
	param := &Param{
		MetaBase:   MetaBase{Args: []string{"param", "count"}, Description: "how many items to keep around after the prune pass finishes"},
		ArgName:    "count",
		TypeName:   "int",
		IsOptional: boolPtr(true),
		Default:    "10",
	}
	ret := &Returns{
		MetaBase:    MetaBase{Args: []string{"yields"}, Description: "each surviving item in order"},
		TypeName:    "Item",
		IsGenerator: true,
		ReturnName:  "item",
	}
	raises := &Raises{
		MetaBase: MetaBase{Args: []string{"raises", "ValueError"}},
		TypeName: "ValueError",
	}
	dep := &Deprecated{
		MetaBase: MetaBase{Description: "use prune_all instead"},
		Version:  "2.1.0",
	}
	example := &Example{
		MetaBase: MetaBase{Description: "basic usage"},
		Snippet:  ">>> prune(items,   10)",
	}
	note := &Note{
		MetaBase: MetaBase{Description: "the pass runs in place"},
		Snippet:  "keep    this   spacing",
	}

	d := &Docstring{
		Style:                      StyleGoogle,
		ShortDescription:           "Prune a collection down to a bounded size.",
		BlankAfterShortDescription: true,
		BlankAfterLongDescription:  false,
		Meta:                       []Meta{param, ret, raises, dep, example, note},
	}

	out := Normalize(d, 24)

	assert.Same(t, d, out)
	require.Len(t, d.Meta, 6)
	assert.Same(t, param, d.Meta[0])
	assert.Same(t, ret, d.Meta[1])
	assert.Same(t, raises, d.Meta[2])
	assert.Same(t, dep, d.Meta[3])
	assert.Same(t, example, d.Meta[4])
	assert.Same(t, note, d.Meta[5])

	// Variant fields pass through untouched, snippets included.
	assert.Equal(t, "count", param.ArgName)
	assert.Equal(t, "int", param.TypeName)
	assert.Equal(t, true, *param.IsOptional)
	assert.Equal(t, "10", param.Default)
	assert.Equal(t, "Item", ret.TypeName)
	assert.True(t, ret.IsGenerator)
	assert.Equal(t, "item", ret.ReturnName)
	assert.Equal(t, "ValueError", raises.TypeName)
	assert.Equal(t, "2.1.0", dep.Version)
	assert.Equal(t, ">>> prune(items,   10)", example.Snippet)
	assert.Equal(t, "keep    this   spacing", note.Snippet)

	assert.Equal(t, StyleGoogle, d.Style)
	assert.True(t, d.BlankAfterShortDescription)
	assert.False(t, d.BlankAfterLongDescription)

	// Descriptions were rewrapped to the requested width.
	for _, line := range strings.Split(param.Description, "\n") {
		assert.LessOrEqual(t, len(line), 24)
	}
	assert.Equal(t, "each surviving item in\norder", ret.Description)
}

func TestNormalizeIdempotent(t *testing.T) {
	build := func() *Docstring {
		return &Docstring{
			ShortDescription: "A summary that needs to wrap once or twice.",
			LongDescription:  "A body paragraph with enough words to spill over the narrow width used here.",
			Meta: []Meta{
				&Param{
					MetaBase: MetaBase{Args: []string{" param ", "x"}, Description: "first line of the entry\nsecond line"},
					ArgName:  "x",
				},
				&Returns{MetaBase: MetaBase{Description: "a freshly wrapped結果 value"}},
			},
		}
	}

	once := Normalize(build(), 18)
	twice := Normalize(Normalize(build(), 18), 18)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("repeated normalization changed the result (-once +twice):\n%s", diff)
	}
}

func TestNormalizeAlreadyNormalized(t *testing.T) {
	d := &Docstring{
		ShortDescription: "Fits on one line.",
		Meta: []Meta{
			&Note{MetaBase: MetaBase{Args: []string{"note"}, Description: "short note"}},
		},
	}

	Normalize(d, DefaultWidth)

	assert.Equal(t, "Fits on one line.", d.ShortDescription)
	assert.Equal(t, "short note", d.Meta[0].Base().Description)
	assert.Equal(t, []string{"note"}, d.Meta[0].Base().Args)
}

func TestNormalizeLongWordUnsplit(t *testing.T) {
	d := &Docstring{ShortDescription: "see httpsomething_very_long_identifier now"}

	Normalize(d, 10)

	assert.Equal(t, "see\nhttpsomething_very_long_identifier\nnow", d.ShortDescription)
}

func TestNormalizeDegenerateWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		d := &Docstring{
			ShortDescription: "one two three",
			Meta: []Meta{
				&Note{MetaBase: MetaBase{Description: "a b\nc d"}},
			},
		}

		Normalize(d, width)

		assert.Equal(t, "one\ntwo\nthree", d.ShortDescription)
		assert.Equal(t, "a\nb\nc\nd", d.Meta[0].Base().Description)
	}
}

func TestNormalizeEmptyFields(t *testing.T) {
	d := &Docstring{Meta: []Meta{&Note{}}}

	Normalize(d, DefaultWidth)

	assert.Equal(t, "", d.ShortDescription)
	assert.Equal(t, "", d.LongDescription)
	assert.Equal(t, "", d.Meta[0].Base().Description)
	assert.Nil(t, d.Meta[0].Base().Args)
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, Normalize(nil, DefaultWidth))
}
