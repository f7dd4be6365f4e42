package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "info", "codepoint", "codepoints":
		pterm.Info.Println("info <codepoints>")
		pterm.Println(`
	Describes codepoints: name, block, bidi class, whether the codepoint
	may appear as an XML character reference, its scripts and the font
	families predicted for these scripts.
	Codepoints are separated by commas or spaces:
	    info U+0627 0x41 'ß' U+0030..U+0039
	`)
	case "block", "sample", "random":
		pterm.Info.Println("block / sample / random")
		pterm.Println(`
	block <name>     selects a block, e.g. "block Basic Latin"
	sample [name]    evaluates the leading codepoints of a block
	random [name]    draws a random valid codepoint of a block
	Without a name, sample and random use the selected block.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info <codepoints>    describe codepoints
	block <name>         select a block
	sample [name]        exhaustive sample of a block
	random [name]        random sample of a block
	find <text>          list blocks with matching names
	chapters             list the groups of the catalog chapters
	help [topic]         show help
	quit                 leave (or <ctrl>D)
	`)
	}
}
