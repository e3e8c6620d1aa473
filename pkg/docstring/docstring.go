package docstring

// Docstring is the aggregate representation of one documentation comment:
// summary prose plus an ordered sequence of metadata fragments. A style
// parser constructs it, fills the fields while scanning, and appends
// fragments with Add; consumers read it through the derived views below.
type Docstring struct {
	// Style identifies which style parser produced the docstring.
	// StyleUnknown when unset; never StyleAuto in a parse result.
	Style Style

	// ShortDescription is the single-paragraph summary line.
	ShortDescription string
	// LongDescription is the multi-paragraph body after the summary.
	LongDescription string

	// BlankAfterShortDescription and BlankAfterLongDescription record
	// whether the original text left a blank line after the respective
	// section, so a renderer can reproduce the vertical layout.
	BlankAfterShortDescription bool
	BlankAfterLongDescription  bool

	// Meta holds every classified fragment in document order. Duplicate
	// variants are allowed, e.g. one Param per documented parameter.
	Meta []Meta
}

// New returns an empty Docstring tagged with the given style.
func New(style Style) *Docstring {
	return &Docstring{Style: style}
}

// Add appends fragments to Meta, preserving insertion order.
func (d *Docstring) Add(meta ...Meta) {
	d.Meta = append(d.Meta, meta...)
}

// Params returns every Param fragment in document order.
func (d *Docstring) Params() []*Param {
	var out []*Param
	for _, m := range d.Meta {
		if p, ok := m.(*Param); ok {
			out = append(out, p)
		}
	}
	return out
}

// Raises returns every Raises fragment in document order.
func (d *Docstring) Raises() []*Raises {
	var out []*Raises
	for _, m := range d.Meta {
		if r, ok := m.(*Raises); ok {
			out = append(out, r)
		}
	}
	return out
}

// Returns returns the first Returns fragment, or nil if there is none.
func (d *Docstring) Returns() *Returns {
	for _, m := range d.Meta {
		if r, ok := m.(*Returns); ok {
			return r
		}
	}
	return nil
}

// ManyReturns returns every Returns fragment in document order.
func (d *Docstring) ManyReturns() []*Returns {
	var out []*Returns
	for _, m := range d.Meta {
		if r, ok := m.(*Returns); ok {
			out = append(out, r)
		}
	}
	return out
}

// Deprecation returns the first Deprecated fragment, or nil if there is
// none.
func (d *Docstring) Deprecation() *Deprecated {
	for _, m := range d.Meta {
		if dep, ok := m.(*Deprecated); ok {
			return dep
		}
	}
	return nil
}

// Examples returns every Example fragment in document order.
func (d *Docstring) Examples() []*Example {
	var out []*Example
	for _, m := range d.Meta {
		if e, ok := m.(*Example); ok {
			out = append(out, e)
		}
	}
	return out
}

// Notes returns every Note fragment in document order.
func (d *Docstring) Notes() []*Note {
	var out []*Note
	for _, m := range d.Meta {
		if n, ok := m.(*Note); ok {
			out = append(out, n)
		}
	}
	return out
}
