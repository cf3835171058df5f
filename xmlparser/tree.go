package xmlparser

import "fmt"

// ParamKind discriminates the Param value variant.
type ParamKind string

const (
	ParamScalar ParamKind = "scalar"
	ParamList   ParamKind = "list"
)

// Param is a parsed attribute. Kind determines which value is populated.
type Param struct {
	name   string
	kind   ParamKind
	scalar string   // populated when kind == ParamScalar
	list   []string // populated when kind == ParamList, never nil
	pos    Position
}

// ScalarParam returns a scalar parameter.
func ScalarParam(name, value string) *Param {
	return &Param{name: name, kind: ParamScalar, scalar: value}
}

// ListParam returns a list parameter holding a copy of elems.
func ListParam(name string, elems []string) *Param {
	return &Param{name: name, kind: ParamList, list: append([]string{}, elems...)}
}

func (p *Param) Name() string    { return p.name }
func (p *Param) Kind() ParamKind { return p.kind }
func (p *Param) IsList() bool    { return p.kind == ParamList }
func (p *Param) Pos() Position   { return p.pos }

// Value returns the scalar value. It fails for list parameters.
func (p *Param) Value() (string, error) {
	if p.kind != ParamScalar {
		return "", p.kindErr(ParamScalar)
	}
	return p.scalar, nil
}

// ValueList returns a copy of the list elements. It fails for scalar
// parameters.
func (p *Param) ValueList() ([]string, error) {
	if p.kind != ParamList {
		return nil, p.kindErr(ParamList)
	}
	return append([]string{}, p.list...), nil
}

// String returns the value as it would appear inside an attribute.
func (p *Param) String() string {
	if p.kind == ParamList {
		s, err := FormatList(p.list)
		if err != nil {
			return fmt.Sprint(p.list)
		}
		return s
	}
	return p.scalar
}

func (p *Param) kindErr(want ParamKind) error {
	return &ValueError{ParseError{
		Message: fmt.Sprintf("parameter '%s' is a %s, not a %s", p.name, p.kind, want),
		Pos:     p.pos,
	}}
}

// Node is one parsed element: a name, its parameters and its children in
// document order.
type Node struct {
	name     string
	params   map[string]*Param
	order    []string // param names in first-occurrence order
	children []*Node
	pos      Position
}

// NewNode builds a node. Parameter names must be unique.
func NewNode(name string, params []*Param, children []*Node) (*Node, error) {
	n := newNode(name, Position{})
	for _, p := range params {
		if err := n.addParam(p, false); err != nil {
			return nil, err
		}
	}
	n.children = append(n.children, children...)
	return n, nil
}

func newNode(name string, pos Position) *Node {
	return &Node{name: name, params: make(map[string]*Param), pos: pos}
}

// addParam registers p. With replace, an existing parameter of the same
// name is overwritten in place; otherwise a duplicate is an error.
func (n *Node) addParam(p *Param, replace bool) error {
	if _, ok := n.params[p.name]; ok {
		if !replace {
			return &SyntaxError{
				ParseError: ParseError{
					Message: fmt.Sprintf("Parameter '%s' already exists", p.name),
					Pos:     p.pos,
					Cause:   ErrDuplicateParam,
				},
			}
		}
		n.params[p.name] = p
		return nil
	}
	n.params[p.name] = p
	n.order = append(n.order, p.name)
	return nil
}

func (n *Node) Name() string  { return n.name }
func (n *Node) Pos() Position { return n.pos }

// ParamsCount returns the number of attributes on the node.
func (n *Node) ParamsCount() int { return len(n.params) }

// HasParam reports whether the node has a parameter called name.
func (n *Node) HasParam(name string) bool {
	_, ok := n.params[name]
	return ok
}

// Param looks up a parameter by name. Returns a *NotFoundError if absent.
func (n *Node) Param(name string) (*Param, error) {
	p, ok := n.params[name]
	if !ok {
		return nil, &NotFoundError{Node: n.name, Name: name}
	}
	return p, nil
}

// Params returns the parameters in document order.
func (n *Node) Params() []*Param {
	res := make([]*Param, 0, len(n.order))
	for _, name := range n.order {
		res = append(res, n.params[name])
	}
	return res
}

// Children returns the child nodes in document order.
func (n *Node) Children() []*Node {
	return append([]*Node{}, n.children...)
}

// Child returns the first child with the given name, or nil if not found.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var result []*Node
	for _, c := range n.children {
		if c.name == name {
			result = append(result, c)
		}
	}
	return result
}
