package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicharts"
	"github.com/npillmayer/unicharts/uniscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBlockNames(t *testing.T) {
	assert.Equal(t, []string{"Basic Latin", "Latin-1 Supplement"},
		blockNames(" Basic Latin,Latin-1 Supplement ,"))
	assert.Empty(t, blockNames(""))
}

func TestAssignFontFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	g, err := unicharts.NewGenerator(unicharts.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, assignFontFiles(g, "Latin="+path))
	latin, _ := uniscript.ByName("Latin")
	family, ok := g.Fonts().FamilyOf(latin)
	assert.True(t, ok)
	assert.Equal(t, "Go", family)
	assert.Equal(t, []string{"Go"}, g.Sampler().Evaluate('A').Fonts)
	//
	assert.Error(t, assignFontFiles(g, "Latin"), "missing '='")
	assert.Error(t, assignFontFiles(g, "Elvish="+path), "unknown script")
	assert.Error(t, assignFontFiles(g, "Greek="+path+".missing"), "missing file")
}
