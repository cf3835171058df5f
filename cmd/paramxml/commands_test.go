package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/martinemde/paramxml/xmlparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleConfig = `<server host="localhost" ports="[80, 443]">
    <tls enabled="true" ciphers="['AES 128', AES256]"/>
</server>
`

func parseSample(t *testing.T) *xmlparser.Node {
	t.Helper()
	root, err := xmlparser.Parse([]byte(sampleConfig))
	require.NoError(t, err)
	return root
}

func TestWriteTreeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, parseSample(t), "text"))
	want := `server
  host = localhost
  ports = [80, 443]
  tls
    enabled = true
    ciphers = ['AES 128', AES256]
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTreeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, parseSample(t), "json"))

	var got dumpNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "server", got.Name)
	assert.Equal(t, "localhost", got.Params["host"])
	assert.Equal(t, []any{"80", "443"}, got.Params["ports"])
	require.Len(t, got.Children, 1)
	assert.Equal(t, "tls", got.Children[0].Name)
}

func TestWriteTreeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, parseSample(t), "yaml"))

	var got dumpNode
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "server", got.Name)
	require.Len(t, got.Children, 1)
	assert.Equal(t, []any{"AES 128", "AES256"}, got.Children[0].Params["ciphers"])
}

func TestWriteTreeTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, parseSample(t), "toml"))

	var got dumpNode
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err)
	assert.Equal(t, "server", got.Name)
	assert.Equal(t, "localhost", got.Params["host"])
	require.Len(t, got.Children, 1)
	assert.Equal(t, "true", got.Children[0].Params["enabled"])
}

func TestWriteTreeXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, parseSample(t), "xml"))

	again, err := xmlparser.Parse(buf.Bytes())
	require.NoError(t, err)
	tls := again.Child("tls")
	require.NotNil(t, tls)
	p, err := tls.Param("ciphers")
	require.NoError(t, err)
	elems, err := p.ValueList()
	require.NoError(t, err)
	assert.Equal(t, []string{"AES 128", "AES256"}, elems)
}

func TestWriteTreeUnknownFormat(t *testing.T) {
	err := writeTree(&bytes.Buffer{}, parseSample(t), "ini")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "ini"`)
}

func TestLookup(t *testing.T) {
	root := parseSample(t)

	p, err := lookup(root, "host")
	require.NoError(t, err)
	assert.Equal(t, "host", p.Name())

	p, err = lookup(root, "tls.enabled")
	require.NoError(t, err)
	v, _ := p.Value()
	assert.Equal(t, "true", v)

	_, err = lookup(root, "tls.missing")
	var nf *xmlparser.NotFoundError
	assert.ErrorAs(t, err, &nf)

	_, err = lookup(root, "nope.enabled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 'server' has no child 'nope'")
}

func TestWriteParam(t *testing.T) {
	root := parseSample(t)

	var buf bytes.Buffer
	p, _ := root.Param("ports")
	require.NoError(t, writeParam(&buf, p))
	assert.Equal(t, "80\n443\n", buf.String())

	buf.Reset()
	p, _ = root.Param("host")
	require.NoError(t, writeParam(&buf, p))
	assert.Equal(t, "localhost\n", buf.String())
}

func TestCheckFiles(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	failed := checkFiles(&buf, []string{"good.xml", "bad.xml"}, func(path string) error {
		if path == "bad.xml" {
			return errors.New("line 1, col 5: boom")
		}
		return nil
	})
	assert.Equal(t, 1, failed)
	assert.Equal(t, "ok   good.xml\nFAIL bad.xml: line 1, col 5: boom\n", buf.String())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xml")
	require.NoError(t, os.WriteFile(good, []byte(sampleConfig), 0o644))
	bad := filepath.Join(dir, "bad.xml")
	require.NoError(t, os.WriteFile(bad, []byte(`<root testIntList = "[1,2,]" />`), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	root, err := parseFile(good, logger)
	require.NoError(t, err)
	assert.Equal(t, "server", root.Name())

	_, err = parseFile(bad, logger)
	var listErr *xmlparser.ListError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, "Parameter list 'testIntList' element is missing", listErr.Message)

	_, err = parseFile(filepath.Join(dir, "missing.xml"), logger)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
