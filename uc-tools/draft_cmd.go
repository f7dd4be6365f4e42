package main

import (
	"io"
	"os"

	"github.com/thatisuday/commando"
)

func runDraftCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	opts := configure(flags)
	g := newGenerator(opts)
	if assignments := flagString(flags["font-file"], "font-file"); assignments != "" {
		if err := assignFontFiles(g, assignments); err != nil {
			fatalf("%v", err)
		}
	}
	var w io.Writer = os.Stdout
	outPath := flagString(flags["output"], "output")
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fatalf("cannot create %s: %v", outPath, err)
		}
		defer f.Close()
		w = f
	}
	tracer().Infof("generating catalog in %s mode", opts.Mode)
	if err := g.Generate(w); err != nil {
		fatalf("%v", err)
	}
	if outPath != "" {
		tracer().Infof("wrote %s", outPath)
	}
}
