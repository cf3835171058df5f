package xmlparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatList(t *testing.T) {
	tests := []struct {
		elems []string
		want  string
	}{
		{[]string{}, "[]"},
		{[]string{"1", "2", "3"}, "[1, 2, 3]"},
		{[]string{"Hello", "world", " "}, "[Hello, world, ' ']"},
		{[]string{""}, "['']"},
		{[]string{"a,b"}, "['a,b']"},
		{[]string{"it's here"}, `["it's here"]`},
		{[]string{"'x"}, `["'x"]`},
		{[]string{"line\nbreak"}, "['line\nbreak']"},
	}
	for _, tt := range tests {
		got, err := FormatList(tt.elems)
		require.NoError(t, err, "elems: %q", tt.elems)
		assert.Equal(t, tt.want, got, "elems: %q", tt.elems)
	}

	_, err := FormatList([]string{`both ' and "`})
	assert.Error(t, err)
}

func TestFormatListRoundTrip(t *testing.T) {
	lists := [][]string{
		{},
		{"1", "2", "3"},
		{"Hello", "world", " "},
		{"Hello", "world", ""},
		{"a, b", "[x]", "tab\there"},
		{`say "hi"`, "it's"},
	}
	for _, elems := range lists {
		s, err := FormatList(elems)
		require.NoError(t, err)
		got, err := ParseList("p", s)
		require.NoError(t, err, "formatted: %s", s)
		assert.Equal(t, elems, got, "formatted: %s", s)
	}
}

func TestMarshal(t *testing.T) {
	tls, err := NewNode("tls", []*Param{ScalarParam("enabled", "true")}, nil)
	require.NoError(t, err)
	root, err := NewNode("server", []*Param{
		ScalarParam("host", "localhost"),
		ListParam("ports", []string{"80", "443"}),
		ScalarParam("motd", `say "hi"`),
	}, []*Node{tls})
	require.NoError(t, err)

	out, err := Marshal(root)
	require.NoError(t, err)
	want := `<server host="localhost" ports="[80, 443]" motd='say "hi"'>
    <tls enabled="true"/>
</server>
`
	assert.Equal(t, want, string(out))
}

func TestMarshalRoundTrip(t *testing.T) {
	src := `
<config version="2" empty="" tags="[]">
    <server host="localhost" ports="[80, 443]" names="['a b', c, '']">
        <tls enabled="true"/>
    </server>
    <server host='say "hi"'/>
</config>
`
	first := mustParse(t, src)
	out, err := Marshal(first)
	require.NoError(t, err)
	second := mustParse(t, string(out))

	if diff := cmp.Diff(snapshot(first), snapshot(second)); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestMarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		node func() (*Node, error)
	}{
		{"bad element name", func() (*Node, error) { return NewNode("a b", nil, nil) }},
		{"bad param name", func() (*Node, error) {
			return NewNode("a", []*Param{ScalarParam("x=y", "1")}, nil)
		}},
		{"list-shaped scalar", func() (*Node, error) {
			return NewNode("a", []*Param{ScalarParam("x", "[1]")}, nil)
		}},
		{"both quotes", func() (*Node, error) {
			return NewNode("a", []*Param{ScalarParam("x", `'"`)}, nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.node()
			require.NoError(t, err)
			_, err = Marshal(n)
			assert.Error(t, err)
		})
	}
}

func TestNewNodeDuplicateParam(t *testing.T) {
	_, err := NewNode("a", []*Param{ScalarParam("x", "1"), ScalarParam("x", "2")}, nil)
	assert.ErrorIs(t, err, ErrDuplicateParam)
}

func TestParamString(t *testing.T) {
	assert.Equal(t, "v", ScalarParam("s", "v").String())
	assert.Equal(t, "[a, 'b c']", ListParam("l", []string{"a", "b c"}).String())
}
