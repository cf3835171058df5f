package xmlparser

import (
	"fmt"
	"sort"
)

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

// IsValid reports whether the position refers to a source location.
func (p Position) IsValid() bool { return p.Line > 0 }

// lineIndex maps byte offsets to line/column pairs.
type lineIndex struct {
	newlines []int // offsets of every '\n' in the document
}

func newLineIndex(src []byte) *lineIndex {
	idx := &lineIndex{}
	for i, ch := range src {
		if ch == '\n' {
			idx.newlines = append(idx.newlines, i)
		}
	}
	return idx
}

func (idx *lineIndex) position(off int) Position {
	// number of newlines strictly before off
	n := sort.SearchInts(idx.newlines, off)
	col := off + 1
	if n > 0 {
		col = off - idx.newlines[n-1]
	}
	return Position{Line: n + 1, Column: col, Offset: off}
}
