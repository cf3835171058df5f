package xmlparser

import (
	"fmt"
	"strings"
)

// IsListValue reports whether an attribute value is list-shaped: after
// trimming whitespace it starts with '[' and ends with ']'.
func IsListValue(raw string) bool {
	v := strings.TrimSpace(raw)
	return len(v) >= 2 && v[0] == '[' && v[len(v)-1] == ']'
}

// ParseList parses a list-shaped value of the parameter name. Positions in
// errors are relative to raw.
func ParseList(name, raw string) ([]string, error) {
	s := NewStream([]byte(raw))
	return parseList(s, name)
}

// parseList consumes a whole list value from s.
func parseList(s *Stream, name string) ([]string, error) {
	SkipWhitespace(s, true)
	if s.Read(1) != "[" {
		return nil, listErr(s, name, "is not a list", nil)
	}

	// locate the closing bracket: last non-space byte of the stream
	end := len(s.src)
	for end > s.off && isSpace(s.src[end-1]) {
		end--
	}
	if end <= s.off || s.src[end-1] != ']' {
		return nil, listErr(s, name, "is not a list", nil)
	}
	body := s.sub(s.Offset(), s.base+end-1)

	elems := []string{}
	SkipWhitespace(body, true)
	if body.AtEnd() {
		return elems, nil
	}
	for {
		SkipWhitespace(body, true)
		if body.AtEnd() || body.peekByte() == ',' {
			return nil, listErr(body, name, "element is missing", ErrMissingListElement)
		}
		elem, ok, err := ReadQuotedString(body)
		if err != nil {
			return nil, err
		}
		if !ok {
			elem = ReadWord(body, ",")
		}
		elems = append(elems, elem)

		SkipWhitespace(body, true)
		if body.AtEnd() {
			return elems, nil
		}
		if body.peekByte() != ',' {
			return nil, listErr(body, name,
				fmt.Sprintf("has unexpected character %q", body.peekByte()), nil)
		}
		body.Skip(1)
	}
}

func listErr(s *Stream, name, what string, cause error) error {
	return &ListError{
		ParseError: ParseError{
			Message: fmt.Sprintf("Parameter list '%s' %s", name, what),
			Pos:     s.Pos(),
			Cause:   cause,
		},
		Param: name,
	}
}
