/*
Package taxonomy holds the hierarchy the catalog is organized by.

A [Taxonomy] is a chapter of the catalog, e.g. "Scripts". It consists of
groups ("European Scripts"), and every group lists block names in order.
A block entry may carry sub-blocks, which are rendered nested into their
parent. Deeper nesting is not supported.

Block names are references into a block table. They are not resolved by
this package; names unknown to the block table are legal and are rendered
as placeholders.

The default taxonomies follow the Unicode 15.0 code charts index. Taxonomies
may be loaded from and saved to YAML, or scraped from a saved copy of the
charts index page with [ParseChartsIndex].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unicharts.taxonomy'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.taxonomy")
}

// Taxonomy is one chapter of the catalog.
type Taxonomy struct {
	Title   string  `yaml:"title"`
	Subject string  `yaml:"subject"` // e.g. "Unicode scripts", used in the chapter intro
	Groups  []Group `yaml:"groups"`
}

// Group is a named list of block entries.
type Group struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Entry references a block by name, optionally with nested sub-blocks.
type Entry struct {
	Block     string   `yaml:"block"`
	SubBlocks []string `yaml:"sub_blocks,omitempty"`
}

// Error reports a malformed taxonomy.
type Error struct {
	Taxonomy string
	Group    string
	Issue    string
}

func (e *Error) Error() string {
	where := e.Taxonomy
	if e.Group != "" {
		where += "/" + e.Group
	}
	return fmt.Sprintf("taxonomy %s: %s", where, e.Issue)
}

// Validate checks that every group and every entry is named.
func (t *Taxonomy) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &Error{Issue: "missing title"}
	}
	for i, g := range t.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return &Error{Taxonomy: t.Title, Issue: fmt.Sprintf("group #%d has no name", i+1)}
		}
		for j, e := range g.Entries {
			if strings.TrimSpace(e.Block) == "" {
				return &Error{Taxonomy: t.Title, Group: g.Name,
					Issue: fmt.Sprintf("entry #%d has no block name", j+1)}
			}
			for _, sub := range e.SubBlocks {
				if strings.TrimSpace(sub) == "" {
					return &Error{Taxonomy: t.Title, Group: g.Name,
						Issue: fmt.Sprintf("block %s has an unnamed sub-block", e.Block)}
				}
			}
		}
	}
	return nil
}

// BlockNames returns all block names referenced by t in rendering order.
func (t *Taxonomy) BlockNames() []string {
	var names []string
	for _, g := range t.Groups {
		for _, e := range g.Entries {
			names = append(names, e.Block)
			names = append(names, e.SubBlocks...)
		}
	}
	return names
}

// Scripts returns the taxonomy of Unicode scripts.
func Scripts() *Taxonomy {
	return &Taxonomy{
		Title:   "Scripts",
		Subject: "Unicode scripts",
		Groups:  cloneGroups(scriptGroups),
	}
}

// Symbols returns the taxonomy of Unicode symbols and punctuation.
func Symbols() *Taxonomy {
	return &Taxonomy{
		Title:   "Symbols and Punctuation",
		Subject: "Unicode symbols and punctuation",
		Groups:  cloneGroups(symbolGroups),
	}
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Name: g.Name, Entries: make([]Entry, len(g.Entries))}
		for j, e := range g.Entries {
			out[i].Entries[j] = Entry{Block: e.Block}
			if len(e.SubBlocks) > 0 {
				out[i].Entries[j].SubBlocks = append([]string(nil), e.SubBlocks...)
			}
		}
	}
	return out
}
