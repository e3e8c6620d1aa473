package docstring

import (
	"fmt"
	"strings"
)

// Style identifies a docstring convention. StyleAuto is a request mode
// asking a driver to try concrete styles in turn; it never appears on a
// parsed Docstring.
type Style int

// Recognized docstring styles. The zero value means the style is unknown or
// was never set.
const (
	StyleUnknown Style = iota
	StyleREST
	StyleGoogle
	StyleNumpyDoc
	StyleEpydoc
	StyleAuto
)

// String returns the lowercase token for the style, or "unknown".
func (s Style) String() string {
	switch s {
	case StyleREST:
		return "rest"
	case StyleGoogle:
		return "google"
	case StyleNumpyDoc:
		return "numpydoc"
	case StyleEpydoc:
		return "epydoc"
	case StyleAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseStyle resolves a style token case-insensitively. Recognized tokens
// are "rest", "google", "numpydoc", "epydoc" and "auto".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "rest":
		return StyleREST, nil
	case "google":
		return StyleGoogle, nil
	case "numpydoc":
		return StyleNumpyDoc, nil
	case "epydoc":
		return StyleEpydoc, nil
	case "auto":
		return StyleAuto, nil
	default:
		return StyleUnknown, fmt.Errorf("unknown docstring style %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty or "unknown"
// token resolves to StyleUnknown.
func (s *Style) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "unknown":
		*s = StyleUnknown
		return nil
	}
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// RenderingStyle tells a renderer how much vertical whitespace and section
// separation to emit. The semantics of each value belong to the renderer;
// this package only defines the vocabulary.
type RenderingStyle int

// Recognized rendering styles. The zero value is reserved for "unset".
const (
	RenderingCompact RenderingStyle = iota + 1
	RenderingClean
	RenderingExpanded
)

// String returns the lowercase token for the rendering style, or "unknown".
func (r RenderingStyle) String() string {
	switch r {
	case RenderingCompact:
		return "compact"
	case RenderingClean:
		return "clean"
	case RenderingExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// ParseRenderingStyle resolves a rendering-style token case-insensitively.
// Recognized tokens are "compact", "clean" and "expanded".
func ParseRenderingStyle(s string) (RenderingStyle, error) {
	switch strings.ToLower(s) {
	case "compact":
		return RenderingCompact, nil
	case "clean":
		return RenderingClean, nil
	case "expanded":
		return RenderingExpanded, nil
	default:
		return 0, fmt.Errorf("unknown rendering style %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r RenderingStyle) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RenderingStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseRenderingStyle(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
