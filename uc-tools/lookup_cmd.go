package main

import (
	"github.com/npillmayer/unicharts/internal/charinfo"
	"github.com/npillmayer/unicharts/internal/cptoken"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runLookupCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	opts := configure(flags)
	g := newGenerator(opts)
	runes, err := cptoken.Parse(args["codepoints"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	if len(runes) == 0 {
		fatalf("at least one codepoint is required")
	}
	data := [][]string{charinfo.Header()}
	for _, r := range runes {
		data = append(data, charinfo.Lookup(g, r).Row())
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fatalf("%v", err)
	}
}
