package xmlparser

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrMissingListElement = errors.New("missing list element")
	ErrDuplicateParam     = errors.New("duplicate parameter")
)

// ParseError is the base error type for all xmlparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a scanner-level error (unterminated string).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected character,
// mismatched closing tag).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// ListError represents a malformed list value. Param is the attribute name.
// Message holds the bare text, e.g. "Parameter list 'ports' element is
// missing"; Error() prefixes the position, so compare Message when matching
// the exact wording.
type ListError struct {
	ParseError
	Param string
}

// ValueError represents a value conversion error or an access to the wrong
// kind of parameter value.
type ValueError struct{ ParseError }

// NotFoundError is returned when a node has no parameter or child of the
// requested name.
type NotFoundError struct {
	Node string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node '%s' has no parameter '%s'", e.Node, e.Name)
}

func syntaxErr(pos Position, expected, got string) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Pos: pos},
		Expected:   expected,
		Got:        got,
	}
}

// describeNext renders the next byte of s for "got" clauses.
func describeNext(s *Stream) string {
	if s.AtEnd() {
		return "end of input"
	}
	return fmt.Sprintf("%q", s.peekByte())
}

func eofErr(s *Stream, expected string) error {
	return &SyntaxError{
		ParseError: ParseError{Pos: s.Pos(), Cause: ErrUnexpectedEOF},
		Expected:   expected,
		Got:        "end of input",
	}
}
