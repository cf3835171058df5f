// Package xmlparser implements a parser for the paramxml configuration dialect.
//
// paramxml is an attribute-only subset of XML: one root element per
// document, nested elements, and quoted attribute values. Text content,
// comments, namespaces, entities, CDATA and processing instructions are not
// supported. An attribute value that is delimited by brackets after trimming
// is parsed as a list:
//
//	<server hosts="[alpha, 'beta gamma', '']" port="8080">
//	    <tls enabled="true"/>
//	</server>
//
// The parser is a hand-rolled recursive-descent parser with three layers:
//
//   - Stream: a byte cursor over the whole input that reports positions.
//   - Scanners: SkipWhitespace, ReadUntil, ReadWord and ReadQuotedString.
//   - Parser: consumes the grammar and builds the Node/Param tree, routing
//     list-shaped attribute values through ParseList.
//
// Usage:
//
//	root, err := xmlparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hosts, err := root.Param("hosts")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	elems, _ := hosts.ValueList()
//	fmt.Println(root.Name(), elems)
package xmlparser
