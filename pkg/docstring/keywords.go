package docstring

// Keyword tables map the section header words a style parser encounters to
// the fragment family they identify. The sets are fixed at process start and
// never mutated, so concurrent reads need no synchronization.
//
// The literal "note" deliberately appears in both ParamKeywords and
// NotesKeywords. This package does not rank the two readings; a style parser
// must decide the priority for that token itself.
var (
	// ParamKeywords are headers introducing a parameter, argument,
	// attribute or keyword entry.
	ParamKeywords = map[string]bool{
		"param":     true,
		"parameter": true,
		"arg":       true,
		"argument":  true,
		"attribute": true,
		"key":       true,
		"keyword":   true,
		"note":      true,
	}

	// RaisesKeywords are headers introducing an exception or error entry.
	RaisesKeywords = map[string]bool{
		"raises":    true,
		"raise":     true,
		"except":    true,
		"exception": true,
	}

	// DeprecationKeywords are headers introducing a deprecation notice.
	DeprecationKeywords = map[string]bool{
		"deprecation": true,
		"deprecated":  true,
	}

	// ReturnsKeywords are headers introducing a plain return entry.
	ReturnsKeywords = map[string]bool{
		"return":  true,
		"returns": true,
	}

	// YieldsKeywords are headers introducing a generator return entry.
	YieldsKeywords = map[string]bool{
		"yield":  true,
		"yields": true,
	}

	// ExamplesKeywords are headers introducing a usage example.
	ExamplesKeywords = map[string]bool{
		"example":  true,
		"examples": true,
	}

	// NotesKeywords are headers introducing a free-standing note.
	NotesKeywords = map[string]bool{
		"note":  true,
		"notes": true,
	}
)

// Family identifies one keyword table. Families are finer grained than
// fragment kinds: yields is its own family even though it classifies to
// KindReturns.
type Family string

// Keyword families, in classification table order.
const (
	FamilyParam       Family = "param"
	FamilyRaises      Family = "raises"
	FamilyDeprecation Family = "deprecation"
	FamilyReturns     Family = "returns"
	FamilyYields      Family = "yields"
	FamilyExamples    Family = "examples"
	FamilyNotes       Family = "notes"
)

// families pairs every family with its keyword set, in the order Classify
// reports matches.
var families = []struct {
	family   Family
	keywords map[string]bool
}{
	{FamilyParam, ParamKeywords},
	{FamilyRaises, RaisesKeywords},
	{FamilyDeprecation, DeprecationKeywords},
	{FamilyReturns, ReturnsKeywords},
	{FamilyYields, YieldsKeywords},
	{FamilyExamples, ExamplesKeywords},
	{FamilyNotes, NotesKeywords},
}

// Kind returns the fragment kind a family classifies to. FamilyYields maps
// to KindReturns; use Generator to recover the distinction.
func (f Family) Kind() Kind {
	switch f {
	case FamilyParam:
		return KindParam
	case FamilyRaises:
		return KindRaises
	case FamilyDeprecation:
		return KindDeprecated
	case FamilyReturns, FamilyYields:
		return KindReturns
	case FamilyExamples:
		return KindExample
	case FamilyNotes:
		return KindNote
	default:
		return ""
	}
}

// Generator reports whether fragments classified by f describe a yielded
// value rather than a plain return.
func (f Family) Generator() bool {
	return f == FamilyYields
}

// Classify returns every family whose keyword set contains token, in table
// order. Tokens are matched exactly and the tables are lowercase, so callers
// lowercase the header word first. Most tokens yield zero or one family; the
// ambiguous token "note" yields both FamilyParam and FamilyNotes.
func Classify(token string) []Family {
	var out []Family
	for _, entry := range families {
		if entry.keywords[token] {
			out = append(out, entry.family)
		}
	}
	return out
}
