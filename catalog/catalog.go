/*
Package catalog renders taxonomies of Unicode blocks into xml2rfc sections.

Every chapter of the catalog is a [taxonomy.Taxonomy]. The renderer walks
it group by group. For every block it emits a section with the block's
codepoint range, a link to the Unicode code chart and the samples drawn
from the block, either as a table of the block's leading characters
([Exhaustive]) or as a list describing a single random character
([Random]).

Block names not present in the block table produce a section with a
heading only.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package catalog

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicharts/blocks"
	"github.com/npillmayer/unicharts/rfcxml"
	"github.com/npillmayer/unicharts/sampler"
	"github.com/npillmayer/unicharts/taxonomy"
	"github.com/npillmayer/unicharts/xmlchar"
	"golang.org/x/text/unicode/runenames"
)

// tracer traces with key 'unicharts.catalog'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.catalog")
}

// Mode selects how blocks are sampled.
type Mode int

const (
	Exhaustive Mode = iota // table of the leading codepoints of a block
	Random                 // a single random character per block
)

func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case Random:
		return "random"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "exhaustive" or "random", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "table", "":
		return Exhaustive, nil
	case "random", "list":
		return Random, nil
	}
	return Exhaustive, fmt.Errorf("unknown catalog mode %q", s)
}

// Column headings of the character table.
var tableHead = []string{"Character", "xml2rfc scripts", "xml2rfc fonts"}

// ChartsAnchor is the anchor of the charts reference cited in chapter
// introductions.
const ChartsAnchor = "charts"

// Renderer renders taxonomies of blocks.
type Renderer struct {
	table   *blocks.Table
	sampler *sampler.Sampler
	mode    Mode
}

// NewRenderer creates a renderer looking up blocks in table and sampling
// them with s. If table is nil, the default block table is used. If s is
// nil, a sampler with default capabilities is used.
func NewRenderer(table *blocks.Table, s *sampler.Sampler, mode Mode) *Renderer {
	if table == nil {
		table = blocks.Default()
	}
	if s == nil {
		s = sampler.New()
	}
	return &Renderer{table: table, sampler: s, mode: mode}
}

// Mode returns the sampling mode of r.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Render renders a taxonomy into a chapter section.
func (r *Renderer) Render(t *taxonomy.Taxonomy) (rfcxml.Fragment, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	b := &rfcxml.Builder{}
	b.Open(t.Title)
	b.Add(rfcxml.Paragraph{
		rfcxml.Text("This section covers " + t.Subject + " as defined in "),
		rfcxml.Xref{Target: ChartsAnchor},
		rfcxml.Text("."),
	})
	for _, g := range t.Groups {
		b.Open(g.Name)
		for _, e := range g.Entries {
			r.openBlock(b, e.Block)
			for _, sub := range e.SubBlocks {
				r.openBlock(b, sub)
				b.Close()
			}
			b.Close()
		}
		b.Close()
	}
	b.Close()
	tracer().Infof("rendered chapter %q in %s mode", t.Title, r.mode)
	return b.Fragment()
}

// RenderBlock renders a single block section.
func (r *Renderer) RenderBlock(name string) (rfcxml.Fragment, error) {
	b := &rfcxml.Builder{}
	r.openBlock(b, name)
	b.Close()
	return b.Fragment()
}

// openBlock opens the section for block name and adds its content. The
// section is left open for sub-blocks to be nested into.
func (r *Renderer) openBlock(b *rfcxml.Builder, name string) {
	b.Open(name)
	block, ok := r.table.Lookup(name)
	if !ok {
		tracer().Infof("block %q not in block table, rendering placeholder", name)
		return
	}
	tracer().Debugf("rendering block %s", block)
	b.Add(
		rfcxml.Para("Unicode character range: "+block.Range()),
		rfcxml.Paragraph{rfcxml.Eref{
			Target: block.ChartURL(),
			Text:   "Unicode " + block.Name + " character list",
		}},
	)
	switch r.mode {
	case Random:
		b.Add(sampleList(r.sampler.Random(block)))
	default:
		b.Add(sampleTable(block.Name, r.sampler.Exhaustive(block)))
	}
}

func sampleTable(name string, samples []sampler.Sample) *rfcxml.Table {
	t := &rfcxml.Table{Name: name + " Characters", Head: tableHead}
	for _, s := range samples {
		if !s.Valid {
			t.Rows = append(t.Rows, rfcxml.Row{rfcxml.Cell(notSupported(s.Codepoint)), nil, nil})
			continue
		}
		t.Rows = append(t.Rows, rfcxml.Row{
			{rfcxml.Char(s.Codepoint)},
			rfcxml.Cell(strings.Join(s.ScriptNames(), ", ")),
			rfcxml.Cell(strings.Join(s.Fonts, ",")),
		})
	}
	return t
}

func sampleList(s sampler.Sample) rfcxml.List {
	var example []rfcxml.Inline
	if s.Valid {
		example = []rfcxml.Inline{rfcxml.Text("Example character: "), rfcxml.Char(s.Codepoint)}
		if name := runenames.Name(s.Codepoint); name != "" {
			example = append(example, rfcxml.Text(" ("+name+")"))
		}
	} else {
		example = rfcxml.Cell("Example character: " + notSupported(s.Codepoint))
	}
	return rfcxml.List{
		example,
		rfcxml.Cell("xml2rfc scripts: " + strings.Join(s.ScriptNames(), ", ")),
		rfcxml.Cell("xml2rfc fonts: " + strings.Join(s.Fonts, ",")),
	}
}

func notSupported(cp rune) string {
	return xmlchar.Hex(cp) + " is not supported"
}
