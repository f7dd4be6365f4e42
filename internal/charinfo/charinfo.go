/*
Package charinfo collects what the catalog knows about a single character,
for display in the command line tools.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package charinfo

import (
	"strings"

	"github.com/npillmayer/unicharts"
	"github.com/npillmayer/unicharts/uniscript"
	"github.com/npillmayer/unicharts/xmlchar"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/runenames"
)

// Info describes a codepoint.
type Info struct {
	Codepoint rune
	Name      string // Unicode character name, may be empty
	Block     string // empty if not in any block
	Bidi      string // bidi class, e.g. "L" or "AL"
	Valid     bool   // valid as XML numeric character reference
	Scripts   []string
	Fonts     []string
}

// Lookup describes r using the components of g.
func Lookup(g *unicharts.Generator, r rune) Info {
	info := Info{
		Codepoint: r,
		Name:      runenames.Name(r),
		Bidi:      BidiClass(r),
	}
	if b, ok := g.Table().BlockOf(r); ok {
		info.Block = b.Name
	}
	sample := g.Sampler().Evaluate(r)
	info.Valid = sample.Valid
	// script properties are reported for invalid characters, too
	info.Scripts = uniscript.Names(g.Scripts().ScriptsOf(r))
	info.Fonts = sample.Fonts
	return info
}

// Row formats info as a table row with the columns of Header.
func (info Info) Row() []string {
	valid := "no"
	if info.Valid {
		valid = "yes"
	}
	return []string{
		"U+" + xmlchar.Hex(info.Codepoint),
		info.Name,
		info.Block,
		info.Bidi,
		valid,
		strings.Join(info.Scripts, ", "),
		strings.Join(info.Fonts, ","),
	}
}

// Header returns the column headings for Row.
func Header() []string {
	return []string{"Codepoint", "Name", "Block", "Bidi", "XML", "Scripts", "Fonts"}
}

var bidiClassNames = map[bidi.Class]string{
	bidi.L:       "L",
	bidi.R:       "R",
	bidi.EN:      "EN",
	bidi.ES:      "ES",
	bidi.ET:      "ET",
	bidi.AN:      "AN",
	bidi.CS:      "CS",
	bidi.B:       "B",
	bidi.S:       "S",
	bidi.WS:      "WS",
	bidi.ON:      "ON",
	bidi.BN:      "BN",
	bidi.NSM:     "NSM",
	bidi.AL:      "AL",
	bidi.Control: "Control",
	bidi.LRO:     "LRO",
	bidi.RLO:     "RLO",
	bidi.LRE:     "LRE",
	bidi.RLE:     "RLE",
	bidi.PDF:     "PDF",
	bidi.LRI:     "LRI",
	bidi.RLI:     "RLI",
	bidi.FSI:     "FSI",
	bidi.PDI:     "PDI",
}

// BidiClass returns the abbreviated bidi class of r.
func BidiClass(r rune) string {
	props, size := bidi.LookupRune(r)
	if size == 0 {
		return ""
	}
	return bidiClassNames[props.Class()]
}
