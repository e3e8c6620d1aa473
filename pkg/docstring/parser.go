package docstring

// Parser is implemented by each concrete style grammar. Implementations live
// outside this package; the interface fixes the contract between them and
// every consumer of the model.
type Parser interface {
	// Style identifies the convention the parser understands. It is a
	// concrete style, never StyleAuto.
	Style() Style
	// Parse builds a Docstring from raw comment text. When the text does
	// not conform to the parser's convention, the returned error wraps or
	// is a *ParseError, so drivers in auto mode can fall through.
	Parse(text string) (*Docstring, error)
}

// Renderer serializes a Docstring back into one concrete textual
// convention. The rendering style selects how the renderer lays out blank
// lines and section separators.
type Renderer interface {
	Render(d *Docstring, style RenderingStyle) string
}
