package report

import "fmt"

// Enumeration of the different kinds of compile errors.
const (
	ErrDefinition           = iota // Malformed or conflicting definitions.
	ErrCircularDefinition          // A definition that depends on itself.
	ErrUndefinedSymbol             // A name lookup that found no binding.
	ErrTypeMismatch                // Incompatible types.
	ErrImmutableTarget             // Assignment to an immutable value.
	ErrUnsupportedConstruct        // Recognized but not yet implemented syntax.
)

// CompileError is an error produced by analyzing erroneous input code.  It
// carries one of the enumerated error kinds which determines how the error is
// labeled when displayed.
type CompileError struct {
	// The kind of the error.  Must be one of the enumerated error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil if the error has
	// not yet been attached to a source location.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error of the given kind.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}

// WithSpan attaches a span to the error if it does not already have one.
func (ce *CompileError) WithSpan(span *TextSpan) *CompileError {
	if ce.Span == nil {
		ce.Span = span
	}

	return ce
}
