package unicharts

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicharts/blocks"
	"github.com/npillmayer/unicharts/catalog"
	"github.com/npillmayer/unicharts/xmlchar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyMode:          "random",
		KeySeed:          "0x2a",
		KeyCap:           "10",
		KeyRetries:       "0",
		KeyFontOverrides: "fonts.yaml",
	}
	opts, err := FromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, catalog.Random, opts.Mode)
	assert.True(t, opts.Seeded)
	assert.Equal(t, uint64(42), opts.Seed)
	assert.Equal(t, 10, opts.Cap)
	assert.Equal(t, 0, opts.MaxRetries)
	assert.Equal(t, "fonts.yaml", opts.FontOverrides)
	assert.Empty(t, opts.BlocksFile)
	//
	opts, err = FromConfig(testconfig.Conf{}, WithCap(3))
	require.NoError(t, err)
	assert.Equal(t, catalog.Exhaustive, opts.Mode)
	assert.False(t, opts.Seeded)
	assert.Equal(t, 3, opts.Cap)
}

func TestFromConfigRejectsBadValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	bad := []testconfig.Conf{
		{KeyMode: "sometimes"},
		{KeySeed: "abc"},
		{KeyCap: "0"},
		{KeyRetries: "-1"},
	}
	for _, conf := range bad {
		_, err := FromConfig(conf)
		assert.Error(t, err, "expected error for %v", conf)
	}
}

func TestGenerateDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	var buf bytes.Buffer
	err := Generate(&buf, NewOptions(WithMode(catalog.Random), WithSeed(42)))
	require.NoError(t, err)
	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.True(t, strings.HasSuffix(doc, "</rfc>\n"))
	assert.Contains(t, doc, "<name>Scripts</name>")
	assert.Contains(t, doc, "<name>Symbols and Punctuation</name>")
	assert.Less(t, strings.Index(doc, "<name>Scripts</name>"), strings.Index(doc, "<name>Symbols and Punctuation</name>"))
	assert.NoError(t, xmlchar.StdChecker{}.CheckWellFormed(doc))
	//
	var again bytes.Buffer
	require.NoError(t, Generate(&again, NewOptions(WithMode(catalog.Random), WithSeed(42))))
	assert.Equal(t, doc, again.String(), "generation must be reproducible for a fixed seed")
}

func TestGenerateWithDataFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}
	blocksFile := write("Blocks.txt", "0000..007F; Basic Latin\n0080..00FF; Latin-1 Supplement\n")
	scriptsFile := write("scripts.yaml", `title: Scripts
subject: Unicode scripts
groups:
  - name: Latin
    entries:
      - block: Basic Latin
        sub_blocks: [Latin-1 Supplement, Latin Extended-A]
`)
	symbolsFile := write("symbols.yaml", "title: Symbols\nsubject: nothing\ngroups: []\n")
	fontsFile := write("fonts.yaml", "Common: Noto Sans Mono\n")
	opts := NewOptions(
		WithBlocksFile(blocksFile),
		WithTaxonomyFiles(scriptsFile, symbolsFile),
		WithFontOverrides(fontsFile),
		WithCap(40),
	)
	g, err := NewGenerator(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Table().Len())
	var buf bytes.Buffer
	require.NoError(t, g.Generate(&buf))
	doc := buf.String()
	assert.Contains(t, doc, "<td>Common</td>")
	assert.Contains(t, doc, "<td>Noto Sans Mono</td>")
	assert.Contains(t, doc, "<name>Latin Extended-A</name>\n") // placeholder
	assert.Contains(t, doc, "<td><u>&#x0027;</u></td>")      // beyond the default cap
	assert.NoError(t, xmlchar.StdChecker{}.CheckWellFormed(doc))
}

func TestGeneratorReportsDataErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "Blocks.txt")
	require.NoError(t, os.WriteFile(path, []byte("0000..00FF; A\n0080..00FF; B\n"), 0o644))
	_, err := NewGenerator(NewOptions(WithBlocksFile(path)))
	var terr *blocks.TableError
	assert.True(t, errors.As(err, &terr), "expected a block table error, got %v", err)
	//
	_, err = NewGenerator(NewOptions(WithFontOverrides(filepath.Join(dir, "missing.yaml"))))
	assert.Error(t, err)
}
