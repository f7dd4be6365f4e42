/*
Package unicharts generates a catalog of Unicode blocks as an xml2rfc
document.

For every block of the Unicode code charts, the catalog lists the block's
codepoint range and a sample of its characters. Every character is checked
for whether it may appear in an XML document as a numeric character
reference, and is annotated with the scripts it belongs to and the font
families xml2rfc would predict for these scripts. Rendering the catalog with
xml2rfc shows where predicted fonts are missing.

The catalog has two chapters, "Scripts" and "Symbols and Punctuation",
embedded between the front matter and the references of an Internet-Draft:

	err := unicharts.Generate(os.Stdout, unicharts.NewOptions(
	    unicharts.WithMode(catalog.Random),
	    unicharts.WithSeed(42),
	))

Sub-packages provide the building blocks: blocks (block table), xmlchar
(character validity), uniscript (script resolution), fontmap (font
prediction), sampler, taxonomy, catalog (rendering) and rfcxml (output).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package unicharts

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicharts/blocks"
	"github.com/npillmayer/unicharts/catalog"
	"github.com/npillmayer/unicharts/fontmap"
	"github.com/npillmayer/unicharts/rfcxml"
	"github.com/npillmayer/unicharts/sampler"
	"github.com/npillmayer/unicharts/taxonomy"
	"github.com/npillmayer/unicharts/uniscript"
	"github.com/npillmayer/unicharts/xmlchar"
)

// tracer traces with key 'unicharts'
func tracer() tracing.Trace {
	return tracing.Select("unicharts")
}

// Generator holds the components of a catalog run.
type Generator struct {
	opts     Options
	table    *blocks.Table
	oracle   *xmlchar.Oracle
	scripts  *uniscript.Resolver
	fonts    *fontmap.Resolver
	sampler  *sampler.Sampler
	renderer *catalog.Renderer
	chapters []*taxonomy.Taxonomy
	skeleton *rfcxml.Skeleton
}

// NewGenerator sets up the components for opts, reading all data files
// named by opts.
func NewGenerator(opts Options) (*Generator, error) {
	g := &Generator{opts: opts}
	var err error
	if g.table, err = loadBlocks(opts.BlocksFile); err != nil {
		return nil, err
	}
	ext := uniscript.DefaultExtensions()
	if opts.ExtensionsFile != "" {
		if err = readFile(opts.ExtensionsFile, func(r io.Reader) (err error) {
			ext, err = uniscript.ParseExtensions(r)
			return
		}); err != nil {
			return nil, err
		}
	}
	g.scripts = uniscript.NewResolver(ext)
	g.fonts = fontmap.New()
	if opts.FontOverrides != "" {
		if err = readFile(opts.FontOverrides, g.fonts.LoadOverrides); err != nil {
			return nil, err
		}
	}
	g.oracle = xmlchar.NewOracle(opts.Checker)
	sopts := []sampler.Option{
		sampler.WithValidator(g.oracle),
		sampler.WithScripts(g.scripts),
		sampler.WithFonts(g.fonts),
		sampler.WithCap(opts.Cap),
		sampler.WithMaxRetries(opts.MaxRetries),
	}
	if opts.Seeded {
		sopts = append(sopts, sampler.WithSeed(opts.Seed))
	}
	g.sampler = sampler.New(sopts...)
	g.renderer = catalog.NewRenderer(g.table, g.sampler, opts.Mode)
	scripts, err := loadTaxonomy(opts.ScriptsFile, taxonomy.Scripts)
	if err != nil {
		return nil, err
	}
	symbols, err := loadTaxonomy(opts.SymbolsFile, taxonomy.Symbols)
	if err != nil {
		return nil, err
	}
	g.chapters = []*taxonomy.Taxonomy{scripts, symbols}
	if g.skeleton, err = rfcxml.NewSkeleton(opts.Metadata); err != nil {
		return nil, err
	}
	return g, nil
}

// Table returns the block table in use.
func (g *Generator) Table() *blocks.Table { return g.table }

// Oracle returns the character validity oracle in use.
func (g *Generator) Oracle() *xmlchar.Oracle { return g.oracle }

// Scripts returns the script resolver in use.
func (g *Generator) Scripts() *uniscript.Resolver { return g.scripts }

// Fonts returns the font resolver in use.
func (g *Generator) Fonts() *fontmap.Resolver { return g.fonts }

// Sampler returns the block sampler in use.
func (g *Generator) Sampler() *sampler.Sampler { return g.sampler }

// Renderer returns the catalog renderer in use.
func (g *Generator) Renderer() *catalog.Renderer { return g.renderer }

// Chapters returns the taxonomies rendered as chapters.
func (g *Generator) Chapters() []*taxonomy.Taxonomy { return g.chapters }

// Generate writes the complete document to w.
func (g *Generator) Generate(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := g.skeleton.WriteHeader(bw); err != nil {
		return err
	}
	for _, chapter := range g.chapters {
		f, err := g.renderer.Render(chapter)
		if err != nil {
			return err
		}
		if err := rfcxml.Write(bw, f, 2); err != nil {
			return err
		}
	}
	if err := g.skeleton.WriteFooter(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Generate writes the catalog document for opts to w.
func Generate(w io.Writer, opts Options) error {
	g, err := NewGenerator(opts)
	if err != nil {
		return err
	}
	return g.Generate(w)
}

func loadBlocks(path string) (*blocks.Table, error) {
	if path == "" {
		return blocks.Default(), nil
	}
	var table *blocks.Table
	err := readFile(path, func(r io.Reader) (err error) {
		table, err = blocks.Load(r)
		return
	})
	return table, err
}

func loadTaxonomy(path string, builtin func() *taxonomy.Taxonomy) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return builtin(), nil
	}
	var t *taxonomy.Taxonomy
	err := readFile(path, func(r io.Reader) (err error) {
		t, err = taxonomy.Load(r)
		return
	})
	return t, err
}

func readFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	tracer().Infof("reading %s", path)
	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
