package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/martinemde/paramxml/xmlparser"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Print a single parameter",
	Long: `Print the value of the parameter addressed by path.

The path names child elements below the root followed by the parameter,
separated by dots: "server.tls.enabled". List values print one element
per line.`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	root, err := parseFile(args[0], newLogger())
	if err != nil {
		return err
	}
	p, err := lookup(root, args[1])
	if err != nil {
		return err
	}
	return writeParam(cmd.OutOrStdout(), p)
}

// lookup resolves a dotted path against root.
func lookup(root *xmlparser.Node, path string) (*xmlparser.Param, error) {
	parts := strings.Split(path, ".")
	n := root
	for _, name := range parts[:len(parts)-1] {
		child := n.Child(name)
		if child == nil {
			return nil, fmt.Errorf("element '%s' has no child '%s'", n.Name(), name)
		}
		n = child
	}
	return n.Param(parts[len(parts)-1])
}

func writeParam(w io.Writer, p *xmlparser.Param) error {
	if !p.IsList() {
		v, err := p.Value()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, v)
		return err
	}
	elems, err := p.ValueList()
	if err != nil {
		return err
	}
	for _, e := range elems {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}
