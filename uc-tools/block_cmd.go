package main

import (
	"os"
	"strings"

	"github.com/npillmayer/unicharts/rfcxml"
	"github.com/thatisuday/commando"
)

func runBlockCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	opts := configure(flags)
	g := newGenerator(opts)
	names := blockNames(args["name"].Value)
	if len(names) == 0 {
		fatalf("at least one block name is required")
	}
	for _, name := range names {
		if _, ok := g.Table().Lookup(name); !ok {
			fatalf("unknown block %q", name)
		}
		f, err := g.Renderer().RenderBlock(name)
		if err != nil {
			fatalf("%v", err)
		}
		if err := rfcxml.Write(os.Stdout, f, 0); err != nil {
			fatalf("%v", err)
		}
	}
}

// blockNames splits the variadic argument, which commando joins by commas.
func blockNames(raw string) []string {
	var names []string
	for _, n := range strings.Split(raw, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
