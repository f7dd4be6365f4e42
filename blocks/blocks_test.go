package blocks

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type BlocksTestEnviron struct {
	suite.Suite
	table *Table
}

// listen for 'go test' command --> run test methods
func TestBlockFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.blocks")
	defer teardown()
	suite.Run(t, new(BlocksTestEnviron))
}

// run once, before test suite methods
func (env *BlocksTestEnviron) SetupSuite() {
	env.table = Default()
}

// --- Tests -----------------------------------------------------------------

func (env *BlocksTestEnviron) TestDefaultTableInvariants() {
	env.Equal(327, env.table.Len(), "expected 327 blocks in Unicode 15.0.0")
	var prev Block
	for i, b := range env.table.Blocks() {
		env.LessOrEqual(b.Start, b.End, "block %s has start after end", b.Name)
		if i > 0 {
			env.Less(prev.End, b.Start, "block %s overlaps %s", b.Name, prev.Name)
		}
		prev = b
	}
}

func (env *BlocksTestEnviron) TestLookupByName() {
	b, ok := env.table.Lookup("Basic Latin")
	env.Require().True(ok, "expected to find Basic Latin")
	env.Equal(rune(0x0000), b.Start)
	env.Equal(rune(0x007F), b.End)
	env.Equal(128, b.Len())
	_, ok = env.table.Lookup("Hebrew Presentation Forms")
	env.False(ok, "did not expect a block named 'Hebrew Presentation Forms'")
}

func (env *BlocksTestEnviron) TestBlockOf() {
	cases := map[rune]string{
		0x0041:   "Basic Latin",
		0x007F:   "Basic Latin",
		0x0080:   "Latin-1 Supplement",
		0x05D0:   "Hebrew",
		0xD800:   "High Surrogates",
		0x1F600:  "Emoticons",
		0x10FFFF: "Supplementary Private Use Area-B",
	}
	for r, name := range cases {
		b, ok := env.table.BlockOf(r)
		env.Require().True(ok, "expected a block for %U", r)
		env.Equal(name, b.Name, "wrong block for %U", r)
	}
	_, ok := env.table.BlockOf(0x2FE0) // gap between Kangxi Radicals and IDC
	env.False(ok, "expected no block for unallocated U+2FE0")
}

func (env *BlocksTestEnviron) TestFormatting() {
	b, _ := env.table.Lookup("Basic Latin")
	env.Equal("U+0000..U+007F", b.Range())
	env.Equal("https://www.unicode.org/charts/PDF/U0000.pdf", b.ChartURL())
	b, _ = env.table.Lookup("Tags")
	env.Equal("U+E0000..U+E007F", b.Range())
}

// --- Plain tests -----------------------------------------------------------

func TestNewTableRejectsMalformedBlocks(t *testing.T) {
	cases := []struct {
		name   string
		blocks []Block
	}{
		{"start after end", []Block{{Name: "X", Start: 0x20, End: 0x10}}},
		{"negative", []Block{{Name: "X", Start: -1, End: 0x10}}},
		{"beyond max", []Block{{Name: "X", Start: 0x10FFF0, End: 0x110000}}},
		{"unnamed", []Block{{Start: 0, End: 1}}},
		{"duplicate", []Block{{Name: "X", Start: 0, End: 1}, {Name: "X", Start: 2, End: 3}}},
		{"overlap", []Block{{Name: "X", Start: 0, End: 10}, {Name: "Y", Start: 10, End: 20}}},
	}
	for _, c := range cases {
		_, err := NewTable(c.blocks)
		var terr *TableError
		if !errors.As(err, &terr) {
			t.Errorf("%s: expected a *TableError, got %v", c.name, err)
		}
	}
}

func TestNewTableSortsBlocks(t *testing.T) {
	tab, err := NewTable([]Block{
		{Name: "B", Start: 0x100, End: 0x1FF},
		{Name: "A", Start: 0x000, End: 0x0FF},
	})
	if err != nil {
		t.Fatal(err)
	}
	bs := tab.Blocks()
	if bs[0].Name != "A" || bs[1].Name != "B" {
		t.Errorf("expected blocks in codepoint order, got %v", bs)
	}
}

func TestLoadBlocksTxt(t *testing.T) {
	input := `# Blocks-15.0.0.txt
# Date: 2022-01-28

0000..007F; Basic Latin
0080..00FF; Latin-1 Supplement

# EOF
`
	tab, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 2 {
		t.Fatalf("expected 2 blocks, got %d", tab.Len())
	}
	b, ok := tab.Lookup("Latin-1 Supplement")
	if !ok || b.Start != 0x80 || b.End != 0xFF {
		t.Errorf("unexpected block %v", b)
	}
}

func TestLoadBlocksTxtErrors(t *testing.T) {
	if _, err := Load(strings.NewReader("0000..007F\n")); err == nil {
		t.Error("expected error for missing block name")
	}
	if _, err := Load(strings.NewReader("0080..007F; Reversed\n")); err == nil {
		t.Error("expected error for reversed range")
	}
}
