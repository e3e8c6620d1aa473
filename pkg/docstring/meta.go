package docstring

// Kind tags the concrete variant of a metadata fragment.
type Kind string

// Fragment kinds, as reported by Meta.Kind and used as the wire
// discriminator when a Docstring is serialized.
const (
	KindParam      Kind = "param"
	KindReturns    Kind = "returns"
	KindRaises     Kind = "raises"
	KindDeprecated Kind = "deprecated"
	KindExample    Kind = "example"
	KindNote       Kind = "note"
)

// MetaBase carries the state shared by every fragment variant: the raw
// classification tokens the producing parser consumed, in source order, and
// the fragment's free-text description. An empty description means the
// fragment had none.
type MetaBase struct {
	Args        []string
	Description string
}

// Base returns the shared fragment state.
func (b *MetaBase) Base() *MetaBase { return b }

func (b *MetaBase) fragment() {}

// Meta is one classified semantic piece of a docstring. The implementations
// form a closed set: Param, Returns, Raises, Deprecated, Example and Note.
// Each variant carries only the fields meaningful for its kind; a field that
// a style cannot express is left at its zero value.
type Meta interface {
	// Kind identifies the concrete variant.
	Kind() Kind
	// Base returns the state shared by all variants.
	Base() *MetaBase

	fragment()
}

// Param describes a single parameter, argument, attribute or keyword entry.
// ArgName is the documented name and is expected to be non-empty in any
// parser-produced fragment (see Validate). TypeName and Default are empty
// when the source did not state them. IsOptional is nil when the style cannot
// express optionality, and otherwise reports it explicitly.
type Param struct {
	MetaBase
	ArgName    string `validate:"required"`
	TypeName   string
	IsOptional *bool
	Default    string
}

// Kind returns KindParam.
func (*Param) Kind() Kind { return KindParam }

// Returns describes a return or yield entry. IsGenerator distinguishes a
// yielded value from a plain return. ReturnName names the returned value in
// styles that support named results and is empty otherwise.
type Returns struct {
	MetaBase
	TypeName    string
	IsGenerator bool
	ReturnName  string
}

// Kind returns KindReturns.
func (*Returns) Kind() Kind { return KindReturns }

// Raises describes one exception or error condition the documented object
// may produce. TypeName is empty when the source names no concrete type.
type Raises struct {
	MetaBase
	TypeName string
}

// Kind returns KindRaises.
func (*Raises) Kind() Kind { return KindRaises }

// Deprecated is a deprecation notice. Version records the release in which
// the deprecation was introduced, when stated.
type Deprecated struct {
	MetaBase
	Version string
}

// Kind returns KindDeprecated.
func (*Deprecated) Kind() Kind { return KindDeprecated }

// Example is a usage example. Snippet holds the example code or transcript,
// kept verbatim and never reflowed.
type Example struct {
	MetaBase
	Snippet string
}

// Kind returns KindExample.
func (*Example) Kind() Kind { return KindExample }

// Note is a free-standing remark that is not attached to a parameter.
// Snippet holds preformatted content, when the style distinguishes it from
// the description.
type Note struct {
	MetaBase
	Snippet string
}

// Kind returns KindNote.
func (*Note) Kind() Kind { return KindNote }
