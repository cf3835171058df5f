package xmlparser

import (
	"bytes"
	"fmt"
	"strings"
)

const indentUnit = "    "

// Marshal renders n as a paramxml document that parses back to an equal
// tree.
func Marshal(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNode(&buf, n, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatList renders list elements as "[e1, e2, ...]". Elements that are
// empty or contain whitespace, commas or a leading quote are quoted.
func FormatList(elems []string) (string, error) {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		if !needsQuote(e) {
			parts = append(parts, e)
			continue
		}
		q, err := pickQuote(e)
		if err != nil {
			return "", fmt.Errorf("list element %q: %w", e, err)
		}
		parts = append(parts, q+e+q)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func needsQuote(e string) bool {
	if e == "" || e[0] == '\'' || e[0] == '"' {
		return true
	}
	return strings.ContainsFunc(e, func(r rune) bool {
		return r == ',' || (r < 0x80 && isSpace(byte(r)))
	})
}

// pickQuote prefers ' so list elements nest inside "-quoted attributes.
func pickQuote(s string) (string, error) {
	switch {
	case !strings.Contains(s, "'"):
		return "'", nil
	case !strings.Contains(s, `"`):
		return `"`, nil
	default:
		return "", fmt.Errorf("value contains both quote characters")
	}
}

func checkWord(kind, w string) error {
	if w == "" || strings.ContainsAny(w, " \t\n\r\v\f=/><") {
		return fmt.Errorf("invalid %s name %q", kind, w)
	}
	return nil
}

func encodeParam(p *Param) (string, error) {
	if err := checkWord("parameter", p.name); err != nil {
		return "", err
	}
	var v string
	if p.kind == ParamList {
		s, err := FormatList(p.list)
		if err != nil {
			return "", fmt.Errorf("parameter '%s': %w", p.name, err)
		}
		v = s
	} else {
		if IsListValue(p.scalar) {
			return "", fmt.Errorf("parameter '%s': scalar value %q would parse as a list", p.name, p.scalar)
		}
		v = p.scalar
	}

	q := `"`
	if strings.Contains(v, `"`) {
		if strings.Contains(v, "'") {
			return "", fmt.Errorf("parameter '%s': value contains both quote characters", p.name)
		}
		q = "'"
	}
	return p.name + "=" + q + v + q, nil
}

func encodeNode(buf *bytes.Buffer, n *Node, depth int) error {
	if err := checkWord("element", n.name); err != nil {
		return err
	}
	indent := strings.Repeat(indentUnit, depth)
	buf.WriteString(indent)
	buf.WriteString("<" + n.name)
	for _, p := range n.Params() {
		attr, err := encodeParam(p)
		if err != nil {
			return err
		}
		buf.WriteString(" " + attr)
	}
	if len(n.children) == 0 {
		buf.WriteString("/>\n")
		return nil
	}
	buf.WriteString(">\n")
	for _, c := range n.children {
		if err := encodeNode(buf, c, depth+1); err != nil {
			return err
		}
	}
	buf.WriteString(indent + "</" + n.name + ">\n")
	return nil
}
