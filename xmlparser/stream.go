package xmlparser

// Stream is a forward-only cursor over a fully materialized input.
//
// A Stream may cover a slice of a larger document (a list value inside an
// attribute, for instance); positions are always reported relative to the
// whole document.
type Stream struct {
	src   []byte
	off   int // cursor into src
	base  int // document offset of src[0]
	lines *lineIndex
}

// NewStream creates a Stream over src.
func NewStream(src []byte) *Stream {
	return &Stream{src: src, lines: newLineIndex(src)}
}

// sub returns a Stream over s's document bytes [start, end), which must
// already have been consumed by s.
func (s *Stream) sub(start, end int) *Stream {
	return &Stream{
		src:   s.src[start-s.base : end-s.base],
		base:  start,
		lines: s.lines,
	}
}

// AtEnd reports whether the whole input has been consumed.
func (s *Stream) AtEnd() bool {
	return s.off >= len(s.src)
}

// Peek returns up to n bytes ahead of the cursor without consuming them.
func (s *Stream) Peek(n int) string {
	end := min(s.off+n, len(s.src))
	return string(s.src[s.off:end])
}

// peekByte returns the next byte, or 0 at end of input.
func (s *Stream) peekByte() byte {
	if s.AtEnd() {
		return 0
	}
	return s.src[s.off]
}

// Read consumes and returns up to n bytes.
func (s *Stream) Read(n int) string {
	res := s.Peek(n)
	s.off += len(res)
	return res
}

func (s *Stream) readByte() byte {
	ch := s.src[s.off]
	s.off++
	return ch
}

// Skip advances the cursor by up to n bytes.
func (s *Stream) Skip(n int) {
	s.off = min(s.off+n, len(s.src))
}

// Offset returns the document offset of the next unread byte.
func (s *Stream) Offset() int {
	return s.base + s.off
}

// Pos returns the position of the next unread byte, or the end of input.
func (s *Stream) Pos() Position {
	return s.lines.position(s.Offset())
}
