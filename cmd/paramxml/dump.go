package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/martinemde/paramxml/xmlparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the parsed configuration tree",
	Long:  "Parse a configuration file and print its tree as text, json, yaml, toml or normalized xml.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml, toml, xml")
	_ = viper.BindPFlag("format", dumpCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	root, err := parseFile(args[0], newLogger())
	if err != nil {
		return err
	}
	return writeTree(cmd.OutOrStdout(), root, viper.GetString("format"))
}

// dumpNode is the serializable shape of a parsed node.
type dumpNode struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Params   map[string]any `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
	Children []dumpNode     `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

func toDump(n *xmlparser.Node) dumpNode {
	d := dumpNode{Name: n.Name()}
	for _, p := range n.Params() {
		if d.Params == nil {
			d.Params = make(map[string]any)
		}
		if p.IsList() {
			d.Params[p.Name()], _ = p.ValueList()
		} else {
			d.Params[p.Name()], _ = p.Value()
		}
	}
	for _, c := range n.Children() {
		d.Children = append(d.Children, toDump(c))
	}
	return d
}

func writeTree(w io.Writer, root *xmlparser.Node, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		writeText(w, root, 0)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDump(root))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDump(root)); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(toDump(root))
	case "xml":
		out, err := xmlparser.Marshal(root)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, n *xmlparser.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, n.Name())
	for _, p := range n.Params() {
		fmt.Fprintf(w, "%s  %s = %s\n", indent, p.Name(), p.String())
	}
	for _, c := range n.Children() {
		writeText(w, c, depth+1)
	}
}
