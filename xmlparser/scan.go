package xmlparser

import (
	"strings"
)

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// SkipWhitespace advances s past consecutive whitespace. When withNewLine is
// false a '\n' ends the scan and is left unconsumed.
func SkipWhitespace(s *Stream, withNewLine bool) {
	for !s.AtEnd() {
		ch := s.peekByte()
		if !withNewLine && ch == '\n' {
			return
		}
		if !isSpace(ch) {
			return
		}
		s.Skip(1)
	}
}

// ReadUntil accumulates bytes until stop matches the next byte or the input
// ends. The stopping byte is not consumed.
func ReadUntil(s *Stream, stop func(ch byte) bool) string {
	var sb strings.Builder
	for !s.AtEnd() {
		if stop(s.peekByte()) {
			break
		}
		sb.WriteByte(s.readByte())
	}
	return sb.String()
}

// ReadWord reads an unquoted token ending at whitespace or at any byte of
// extraStop.
func ReadWord(s *Stream, extraStop string) string {
	return ReadUntil(s, func(ch byte) bool {
		return isSpace(ch) || strings.IndexByte(extraStop, ch) >= 0
	})
}

// ReadQuotedString reads a '- or "-delimited string verbatim. If the next
// byte is not a quote, ok is false and nothing is consumed. A missing
// closing quote is reported at the opening quote.
func ReadQuotedString(s *Stream) (str string, ok bool, err error) {
	if s.AtEnd() {
		return "", false, nil
	}
	quote := s.peekByte()
	if quote != '\'' && quote != '"' {
		return "", false, nil
	}
	pos := s.Pos()
	s.Skip(1)

	var sb strings.Builder
	for !s.AtEnd() {
		ch := s.readByte()
		if ch == quote {
			return sb.String(), true, nil
		}
		sb.WriteByte(ch)
	}
	return "", false, &LexError{ParseError{
		Message: "String isn't closed",
		Pos:     pos,
		Cause:   ErrUnterminatedString,
	}}
}
