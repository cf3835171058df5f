package xmlparser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const utf8BOM = "\xEF\xBB\xBF"

// Parse parses a paramxml document and returns its root element.
// Returns a *SyntaxError, *LexError or *ListError on failure.
func Parse(src []byte, opts ...ParseOption) (*Node, error) {
	p := &parser{
		s:    NewStream(src),
		opts: newParseOpts(opts),
	}
	return p.parseDocument()
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...ParseOption) (*Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(src, opts...)
}

type parser struct {
	s    *Stream
	opts *parseOpts
}

func (p *parser) log() *slog.Logger { return p.opts.logger }

// expect consumes lit or fails with a syntax error.
func (p *parser) expect(lit string) error {
	if p.s.Peek(len(lit)) == lit {
		p.s.Skip(len(lit))
		return nil
	}
	if p.s.AtEnd() {
		return eofErr(p.s, fmt.Sprintf("'%s'", lit))
	}
	return syntaxErr(p.s.Pos(), fmt.Sprintf("'%s'", lit), describeNext(p.s))
}

func (p *parser) parseDocument() (*Node, error) {
	if p.s.Peek(len(utf8BOM)) == utf8BOM {
		p.s.Skip(len(utf8BOM))
	}
	SkipWhitespace(p.s, true)
	if p.s.AtEnd() {
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: "document has no root element",
				Pos:     p.s.Pos(),
				Cause:   ErrUnexpectedEOF,
			},
		}
	}

	root, err := p.parseElement(0)
	if err != nil {
		return nil, err
	}

	// Reject trailing content (one root element per document)
	SkipWhitespace(p.s, true)
	if !p.s.AtEnd() {
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: "only one root element is allowed",
				Pos:     p.s.Pos(),
			},
			Expected: "end of input",
			Got:      describeNext(p.s),
		}
	}
	return root, nil
}

// parseElement parses '<' Name Attr* ('/>' | '>' Element* '</' Name '>').
func (p *parser) parseElement(depth int) (*Node, error) {
	pos := p.s.Pos()
	if err := p.expect("<"); err != nil {
		return nil, err
	}

	namePos := p.s.Pos()
	name := ReadWord(p.s, "/>")
	if name == "" {
		if p.s.AtEnd() {
			return nil, eofErr(p.s, "element name")
		}
		return nil, syntaxErr(p.s.Pos(), "element name", describeNext(p.s))
	}
	if err := checkName("element", name, namePos, "<='\""); err != nil {
		return nil, err
	}
	node := newNode(name, pos)
	p.log().Debug("element", "name", name, "depth", depth, "offset", pos.Offset)

	if err := p.parseAttrs(node); err != nil {
		return nil, err
	}

	if p.s.Peek(2) == "/>" {
		p.s.Skip(2)
		return node, nil
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}

	for {
		SkipWhitespace(p.s, true)
		if p.s.AtEnd() {
			return nil, eofErr(p.s, fmt.Sprintf("closing tag '</%s>'", name))
		}
		if p.s.Peek(2) == "</" {
			break
		}
		if p.s.Peek(1) != "<" {
			return nil, &SyntaxError{
				ParseError: ParseError{
					Message: fmt.Sprintf("unexpected character %s in element '%s'", describeNext(p.s), name),
					Pos:     p.s.Pos(),
				},
				Expected: "'<'",
				Got:      describeNext(p.s),
			}
		}
		child, err := p.parseElement(depth + 1)
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}

	return node, p.parseClosingTag(name)
}

// parseClosingTag parses '</' Name '>' and checks Name against open.
func (p *parser) parseClosingTag(open string) error {
	p.s.Skip(2) // consume </
	pos := p.s.Pos()
	name := ReadWord(p.s, ">")
	if name != open {
		return &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("closing tag '%s' doesn't match opening tag '%s'", name, open),
				Pos:     pos,
			},
			Expected: fmt.Sprintf("'</%s>'", open),
			Got:      fmt.Sprintf("'</%s>'", name),
		}
	}
	SkipWhitespace(p.s, true)
	return p.expect(">")
}

// parseAttrs parses attributes until the tag end ('/>' or '>').
func (p *parser) parseAttrs(node *Node) error {
	for {
		SkipWhitespace(p.s, true)
		if p.s.AtEnd() {
			return eofErr(p.s, "attribute or tag end")
		}
		switch p.s.peekByte() {
		case '>':
			return nil
		case '/':
			if p.s.Peek(2) != "/>" {
				return syntaxErr(p.s.Pos(), "'/>'", fmt.Sprintf("%q", p.s.Peek(2)))
			}
			return nil
		}

		param, err := p.parseAttr()
		if err != nil {
			return err
		}
		if err := node.addParam(param, p.opts.allowDuplicates); err != nil {
			return err
		}
	}
}

// parseAttr parses Name '=' QuotedString.
func (p *parser) parseAttr() (*Param, error) {
	pos := p.s.Pos()
	name := ReadWord(p.s, "=/>")
	if name == "" {
		return nil, syntaxErr(pos, "attribute name", describeNext(p.s))
	}
	if err := checkName("attribute", name, pos, "<'\""); err != nil {
		return nil, err
	}

	SkipWhitespace(p.s, true)
	if p.s.AtEnd() {
		return nil, eofErr(p.s, fmt.Sprintf("'=' after attribute '%s'", name))
	}
	if p.s.peekByte() != '=' {
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("missing '=' after attribute '%s'", name),
				Pos:     p.s.Pos(),
			},
			Expected: "'='",
			Got:      describeNext(p.s),
		}
	}
	p.s.Skip(1)
	SkipWhitespace(p.s, true)

	start := p.s.Offset() + 1 // first byte after the opening quote
	raw, ok, err := ReadQuotedString(p.s)
	if err != nil {
		return nil, err
	}
	if !ok {
		if p.s.AtEnd() {
			return nil, eofErr(p.s, fmt.Sprintf("value of attribute '%s'", name))
		}
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("value of attribute '%s' must be quoted", name),
				Pos:     p.s.Pos(),
			},
			Expected: "quoted string",
			Got:      describeNext(p.s),
		}
	}

	param := &Param{name: name, kind: ParamScalar, scalar: raw, pos: pos}
	if IsListValue(raw) {
		elems, err := parseList(p.s.sub(start, start+len(raw)), name)
		if err != nil {
			return nil, err
		}
		p.log().Debug("list parameter", "name", name, "elements", len(elems))
		param = &Param{name: name, kind: ParamList, list: elems, pos: pos}
	}

	// The value must be followed by whitespace or the tag end.
	if !p.s.AtEnd() {
		if c := p.s.peekByte(); !isSpace(c) && c != '/' && c != '>' {
			return nil, &SyntaxError{
				ParseError: ParseError{
					Message: fmt.Sprintf("unexpected character %s after attribute '%s'", describeNext(p.s), name),
					Pos:     p.s.Pos(),
				},
				Expected: "whitespace or tag end",
				Got:      describeNext(p.s),
			}
		}
	}
	return param, nil
}

// checkName rejects names containing any byte of bad. The error points at
// the offending byte; names never span lines.
func checkName(kind, name string, pos Position, bad string) error {
	i := strings.IndexAny(name, bad)
	if i < 0 {
		return nil
	}
	got := fmt.Sprintf("%q", name[i])
	return &SyntaxError{
		ParseError: ParseError{
			Message: fmt.Sprintf("unexpected character %s in %s name '%s'", got, kind, name),
			Pos:     Position{Line: pos.Line, Column: pos.Column + i, Offset: pos.Offset + i},
		},
		Expected: kind + " name",
		Got:      got,
	}
}
