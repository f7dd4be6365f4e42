/*
Package blocks holds the table of Unicode code blocks.

A block is a contiguous, named range of codepoints as defined by the Unicode
Character Database (file Blocks.txt). Block tables are immutable after
construction; a default table for Unicode 15.0.0 is available with [Default].

Clients may load other versions of the block definitions with [Load], which
reads the UCD file format.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package blocks

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicharts/internal/ucdparse"
)

// tracer traces with key 'unicharts.blocks'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.blocks")
}

// Block is a named, inclusive range of codepoints.
type Block struct {
	Name       string
	Start, End rune
}

// Len returns the number of codepoints in the block.
func (b Block) Len() int {
	return int(b.End-b.Start) + 1
}

// Contains reports whether codepoint r lies within the block.
func (b Block) Contains(r rune) bool {
	return r >= b.Start && r <= b.End
}

// Range formats the block's range as in the Unicode code charts,
// e.g. "U+0000..U+007F".
func (b Block) Range() string {
	return fmt.Sprintf("U+%04X..U+%04X", b.Start, b.End)
}

// ChartURL returns the location of the block's code chart at unicode.org.
func (b Block) ChartURL() string {
	return fmt.Sprintf("https://www.unicode.org/charts/PDF/U%04X.pdf", b.Start)
}

func (b Block) String() string {
	return fmt.Sprintf("%s[%s]", b.Name, b.Range())
}

// Table is an immutable set of non-overlapping blocks, ordered by start
// codepoint.
type Table struct {
	blocks []Block
	byName map[string]int
}

// NewTable creates a block table. Blocks are sorted by their start codepoint.
// NewTable checks the invariants of a block table and returns a *TableError
// for the first violation found:
// start must not be after end, codepoints must be in Unicode range,
// names must be unique and blocks must not overlap.
func NewTable(bs []Block) (*Table, error) {
	t := &Table{
		blocks: make([]Block, len(bs)),
		byName: make(map[string]int, len(bs)),
	}
	copy(t.blocks, bs)
	sort.SliceStable(t.blocks, func(i, j int) bool {
		return t.blocks[i].Start < t.blocks[j].Start
	})
	for i, b := range t.blocks {
		if err := checkBlock(b); err != nil {
			return nil, err
		}
		if _, dup := t.byName[b.Name]; dup {
			return nil, &TableError{Block: b.Name, Issue: "duplicate block name"}
		}
		if i > 0 && t.blocks[i-1].End >= b.Start {
			return nil, &TableError{
				Block: b.Name,
				Issue: fmt.Sprintf("overlaps block %q", t.blocks[i-1].Name),
			}
		}
		t.byName[b.Name] = i
	}
	tracer().Debugf("block table with %d blocks", len(t.blocks))
	return t, nil
}

func checkBlock(b Block) error {
	switch {
	case b.Name == "":
		return &TableError{Block: b.Range(), Issue: "block without a name"}
	case b.Start < 0 || b.End < 0:
		return &TableError{Block: b.Name, Issue: "negative codepoint"}
	case b.End > unicode.MaxRune || b.Start > unicode.MaxRune:
		return &TableError{Block: b.Name, Issue: "codepoint beyond U+10FFFF"}
	case b.Start > b.End:
		return &TableError{Block: b.Name, Issue: "start of range after end of range"}
	}
	return nil
}

// Len returns the number of blocks in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.blocks)
}

// Blocks returns the blocks of t in ascending order of codepoints.
// The returned slice is a copy.
func (t *Table) Blocks() []Block {
	if t == nil {
		return nil
	}
	bs := make([]Block, len(t.blocks))
	copy(bs, t.blocks)
	return bs
}

// Lookup finds a block by name.
func (t *Table) Lookup(name string) (Block, bool) {
	if t == nil {
		return Block{}, false
	}
	i, ok := t.byName[name]
	if !ok {
		return Block{}, false
	}
	return t.blocks[i], true
}

// BlockOf returns the block owning codepoint r. Codepoints which are not
// covered by any block of the table return false.
func (t *Table) BlockOf(r rune) (Block, bool) {
	if t == nil {
		return Block{}, false
	}
	i := sort.Search(len(t.blocks), func(i int) bool {
		return t.blocks[i].End >= r
	})
	if i < len(t.blocks) && t.blocks[i].Contains(r) {
		return t.blocks[i], true
	}
	return Block{}, false
}

// Load reads block definitions in the format of the Unicode Character
// Database file Blocks.txt and creates a table from them.
func Load(r io.Reader) (*Table, error) {
	bs, err := ParseBlocksTxt(r)
	if err != nil {
		return nil, err
	}
	return NewTable(bs)
}

// ParseBlocksTxt reads block definitions in the format of Blocks.txt:
//
//	0000..007F; Basic Latin
func ParseBlocksTxt(r io.Reader) ([]Block, error) {
	parser, err := ucdparse.New(r)
	if err != nil {
		return nil, err
	}
	var bs []Block
	for parser.Next() {
		from, to := parser.Token.Range()
		name := parser.Token.Field(1)
		if name == "" {
			return nil, fmt.Errorf("Blocks.txt line %d: missing block name", parser.Token.Line)
		}
		bs = append(bs, Block{Name: name, Start: from, End: to})
	}
	if err := parser.Err(); err != nil {
		return nil, fmt.Errorf("Blocks.txt: %w", err)
	}
	tracer().Infof("read %d block definitions", len(bs))
	return bs, nil
}

var defaultTable struct {
	once  sync.Once
	table *Table
}

// Default returns the block table of Unicode 15.0.0.
func Default() *Table {
	defaultTable.once.Do(func() {
		t, err := NewTable(ucd15)
		if err != nil {
			panic(fmt.Sprintf("built-in block table corrupt: %v", err))
		}
		defaultTable.table = t
	})
	return defaultTable.table
}
