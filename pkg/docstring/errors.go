package docstring

// ParseError reports that raw comment text could not be classified into the
// metadata model. The core never produces it; style parsers return it as
// their shared failure condition, so a driver trying several styles can
// match one error type with errors.As and fall through to the next parser.
type ParseError struct {
	// Style is the style the parser attempted, or StyleUnknown when the
	// failure is not tied to one style.
	Style Style
	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unparseable docstring"
	}
	if e.Style == StyleUnknown {
		return "docstring: " + msg
	}
	return "docstring: " + e.Style.String() + ": " + msg
}
