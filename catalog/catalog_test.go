package catalog

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicharts/rfcxml"
	"github.com/npillmayer/unicharts/sampler"
	"github.com/npillmayer/unicharts/taxonomy"
	"github.com/npillmayer/unicharts/xmlchar"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type CatalogTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestCatalogFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.catalog")
	defer teardown()
	suite.Run(t, new(CatalogTestEnviron))
}

func middleEast() *taxonomy.Taxonomy {
	return &taxonomy.Taxonomy{
		Title:   "Scripts",
		Subject: "Unicode scripts",
		Groups: []taxonomy.Group{
			{Name: "Middle Eastern Scripts", Entries: []taxonomy.Entry{
				{Block: "Hebrew", SubBlocks: []string{"Hebrew Presentation Forms"}},
				{Block: "Yezidi"},
			}},
			{Name: "Numbers & Digits", Entries: []taxonomy.Entry{
				{Block: "Basic Latin"},
			}},
		},
	}
}

func (env *CatalogTestEnviron) render(r *Renderer, t *taxonomy.Taxonomy) string {
	f, err := r.Render(t)
	env.Require().NoError(err)
	var buf bytes.Buffer
	env.Require().NoError(rfcxml.Write(&buf, f, 0))
	return buf.String()
}

// --- Tests -----------------------------------------------------------------

func (env *CatalogTestEnviron) TestChapterStructure() {
	r := NewRenderer(nil, nil, Exhaustive)
	f, err := r.Render(middleEast())
	env.Require().NoError(err)
	env.Require().Len(f, 1)
	chapter := f[0].(*rfcxml.Section)
	env.Equal("Scripts", chapter.Name)
	env.Require().Len(chapter.Children, 3) // intro, two groups
	env.IsType(rfcxml.Paragraph{}, chapter.Children[0])
	g1 := chapter.Children[1].(*rfcxml.Section)
	g2 := chapter.Children[2].(*rfcxml.Section)
	env.Equal("Middle Eastern Scripts", g1.Name)
	env.Equal("Numbers & Digits", g2.Name)
	env.Require().Len(g1.Children, 2)
	hebrew := g1.Children[0].(*rfcxml.Section)
	env.Equal("Hebrew", hebrew.Name)
	// range, chart link, table, nested placeholder
	env.Require().Len(hebrew.Children, 4)
	placeholder := hebrew.Children[3].(*rfcxml.Section)
	env.Equal("Hebrew Presentation Forms", placeholder.Name)
	env.Empty(placeholder.Children, "absent block must render as heading only")
}

func (env *CatalogTestEnviron) TestExhaustiveTable() {
	r := NewRenderer(nil, nil, Exhaustive)
	f, err := r.RenderBlock("Basic Latin")
	env.Require().NoError(err)
	section := f[0].(*rfcxml.Section)
	env.Equal(rfcxml.Para("Unicode character range: U+0000..U+007F"), section.Children[0])
	table := section.Children[2].(*rfcxml.Table)
	env.Equal("Basic Latin Characters", table.Name)
	env.Equal([]string{"Character", "xml2rfc scripts", "xml2rfc fonts"}, table.Head)
	env.Require().Len(table.Rows, 35)
	env.Equal(rfcxml.Row{rfcxml.Cell("0000 is not supported"), nil, nil}, table.Rows[0])
	env.Equal(rfcxml.Row{{rfcxml.Char(0x20)}, rfcxml.Cell("Common"), rfcxml.Cell("Noto Serif")}, table.Rows[0x20])
}

func (env *CatalogTestEnviron) TestRenderedMarkup() {
	out := env.render(NewRenderer(nil, nil, Exhaustive), middleEast())
	env.Contains(out, `<t>This section covers Unicode scripts as defined in <xref target="charts" />.</t>`)
	env.Contains(out, "<name>Numbers &amp; Digits</name>")
	env.Contains(out, `<eref target="https://www.unicode.org/charts/PDF/U0590.pdf">Unicode Hebrew character list</eref>`)
	env.Contains(out, "<td>0008 is not supported</td>")
	env.Contains(out, "<td><u>&#x0021;</u></td>")
	env.NoError(xmlchar.StdChecker{}.CheckWellFormed(out))
}

func (env *CatalogTestEnviron) TestRandomList() {
	r := NewRenderer(nil, sampler.New(sampler.WithSeed(11)), Random)
	f, err := r.RenderBlock("Latin Extended-A")
	env.Require().NoError(err)
	section := f[0].(*rfcxml.Section)
	env.Require().Len(section.Children, 3)
	list := section.Children[2].(rfcxml.List)
	env.Len(list, 3)
	var buf bytes.Buffer
	env.Require().NoError(rfcxml.Write(&buf, f, 0))
	env.Contains(buf.String(), "<li>Example character: <u>&#x")
	env.Contains(buf.String(), "<li>xml2rfc scripts: ")
	env.Contains(buf.String(), "<li>xml2rfc fonts: Noto Serif</li>")
}

func (env *CatalogTestEnviron) TestRenderingIsIdempotentForSeed() {
	a := env.render(NewRenderer(nil, sampler.New(sampler.WithSeed(5)), Random), taxonomy.Symbols())
	b := env.render(NewRenderer(nil, sampler.New(sampler.WithSeed(5)), Random), taxonomy.Symbols())
	env.Equal(a, b)
	c := env.render(NewRenderer(nil, nil, Exhaustive), middleEast())
	d := env.render(NewRenderer(nil, nil, Exhaustive), middleEast())
	env.Equal(c, d)
}

func (env *CatalogTestEnviron) TestDefaultTaxonomiesAreWellFormed() {
	r := NewRenderer(nil, sampler.New(sampler.WithSeed(1)), Random)
	for _, t := range []*taxonomy.Taxonomy{taxonomy.Scripts(), taxonomy.Symbols()} {
		out := env.render(r, t)
		env.NoError(xmlchar.StdChecker{}.CheckWellFormed(out), "chapter %s", t.Title)
	}
}

func (env *CatalogTestEnviron) TestInvalidTaxonomy() {
	r := NewRenderer(nil, nil, Exhaustive)
	_, err := r.Render(&taxonomy.Taxonomy{Title: "T", Groups: []taxonomy.Group{{Name: ""}}})
	env.Error(err)
}

func (env *CatalogTestEnviron) TestParseMode() {
	m, err := ParseMode("Random")
	env.NoError(err)
	env.Equal(Random, m)
	m, err = ParseMode("exhaustive")
	env.NoError(err)
	env.Equal(Exhaustive, m)
	_, err = ParseMode("sometimes")
	env.Error(err)
	env.Equal("random", Random.String())
}
