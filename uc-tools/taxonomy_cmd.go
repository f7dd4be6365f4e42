package main

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/unicharts/taxonomy"
	"github.com/thatisuday/commando"
)

func runTaxonomyCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(verbose(flags))
	page := strings.TrimSpace(args["page"].Value)
	if page == "" {
		fatalf("path of the charts index page is required")
	}
	f, err := os.Open(page)
	if err != nil {
		fatalf("cannot read %s: %v", page, err)
	}
	defer f.Close()
	scripts, symbols, err := taxonomy.ParseChartsIndex(f)
	if err != nil {
		fatalf("%s: %v", page, err)
	}
	tracer().Infof("%s: %d script groups, %d symbol groups", page, len(scripts.Groups), len(symbols.Groups))
	writeTaxonomy(scripts, flagString(flags["scripts"], "scripts"))
	writeTaxonomy(symbols, flagString(flags["symbols"], "symbols"))
}

// writeTaxonomy writes t as YAML to path, or to stdout for an empty path.
func writeTaxonomy(t *taxonomy.Taxonomy, path string) {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			fatalf("cannot create %s: %v", path, err)
		}
		defer f.Close()
		w = f
	} else {
		_, _ = io.WriteString(w, "---\n")
	}
	if err := t.WriteYAML(w); err != nil {
		fatalf("%v", err)
	}
}
