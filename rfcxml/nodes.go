/*
Package rfcxml builds and writes the xml2rfc v3 elements the catalog is
made of.

The catalog uses a small subset of the vocabulary: nested sections,
paragraphs with cross references, tables and unordered lists. Characters
under test are embedded as numeric character references inside <u>
elements. Package encoding/xml would escape the ampersand of such a
reference, so this package carries its own writer.

Sections are usually assembled with a [Builder], which tracks the chain of
open sections.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package rfcxml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unicharts.rfcxml'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.rfcxml")
}

// Node is a block-level element.
type Node interface {
	isNode()
}

// Inline is an element of running text.
type Inline interface {
	isInline()
}

// Fragment is an ordered sequence of block-level elements.
type Fragment []Node

// Section is a <section> with a heading.
type Section struct {
	Anchor   string
	Name     string
	Children []Node
}

// Paragraph is a <t> element.
type Paragraph []Inline

// Table is a <table> with a header row.
type Table struct {
	Name string
	Head []string
	Rows []Row
}

// Row is a table row; every cell is a sequence of inline elements.
type Row [][]Inline

// List is an unordered list <ul>; every item is a sequence of inline
// elements.
type List [][]Inline

// Text is character data. It is escaped when written.
type Text string

// Char is a codepoint embedded as <u>&#xHHHH;</u>.
type Char rune

// Xref is a cross reference to an anchor of the document.
type Xref struct {
	Target string
}

// Eref is an external link.
type Eref struct {
	Target string
	Text   string
}

func (*Section) isNode()  {}
func (Paragraph) isNode() {}
func (*Table) isNode()    {}
func (List) isNode()      {}

func (Text) isInline() {}
func (Char) isInline() {}
func (Xref) isInline() {}
func (Eref) isInline() {}

// Para creates a paragraph from plain text.
func Para(s string) Paragraph {
	return Paragraph{Text(s)}
}

// Cell creates a table cell or list item from plain text. An empty string
// yields an empty cell.
func Cell(s string) []Inline {
	if s == "" {
		return nil
	}
	return []Inline{Text(s)}
}
