package uniscript

import (
	"strings"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.scripts")
	defer teardown()
	//
	res := Default()
	cases := map[rune]string{
		'A':     "Latin",
		'z':     "Latin",
		' ':     "Common",
		0x03B1:  "Greek",
		0x0416:  "Cyrillic",
		0x05D0:  "Hebrew",
		0x4E00:  "Han",
		0x0300:  "Inherited",
		0x1F600: "Common",
	}
	for r, name := range cases {
		scripts := res.ScriptsOf(r)
		require.Len(t, scripts, 1, "expected a single script for U+%04X", r)
		assert.Equal(t, name, scripts[0].Name(), "script of U+%04X", r)
	}
}

func TestUnknownScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.scripts")
	defer teardown()
	//
	res := Default()
	for _, r := range []rune{0x0378, 0xD800, 0xDFFF, 0xE000, -1, 0x110000} {
		scripts := res.ScriptsOf(r)
		require.Len(t, scripts, 1)
		assert.True(t, scripts[0].IsUnknown(), "expected U+%04X to have script Unknown", r)
	}
	assert.Equal(t, "Unknown", Unknown.Name())
	assert.Equal(t, "Zzzz", Unknown.Code())
}

func TestScriptExtensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.scripts")
	defer teardown()
	//
	res := Default()
	assert.Equal(t, []string{"Hiragana", "Katakana"}, Names(res.ScriptsOf(0x30FC)))
	assert.Equal(t, []string{"Cyrillic", "Latin"}, Names(res.ScriptsOf(0x0485)))
	assert.Equal(t, []string{"Arabic", "Syriac"}, Names(res.ScriptsOf(0x0650)))
	// without extensions, the Script property applies
	plain := NewResolver(nil)
	assert.Equal(t, []string{"Common"}, Names(plain.ScriptsOf(0x30FC)))
}

func TestScriptsOfReturnsCopy(t *testing.T) {
	res := Default()
	first := res.ScriptsOf(0x30FC)
	first[0] = Unknown
	assert.Equal(t, "Hiragana", res.ScriptsOf(0x30FC)[0].Name())
}

func TestByName(t *testing.T) {
	s, ok := ByName("Old_Italic")
	require.True(t, ok)
	assert.Equal(t, language.Old_Italic, s.Tag())
	assert.Equal(t, "Ital", s.Code())
	s, ok = ByName("old italic")
	require.True(t, ok)
	assert.Equal(t, "Old_Italic", s.Name())
	_, ok = ByName("Klingon")
	assert.False(t, ok)
	assert.Equal(t, FromTag(language.Latin), mustByName(t, "LATIN"))
}

func mustByName(t *testing.T, name string) Script {
	s, ok := ByName(name)
	require.True(t, ok, "expected to find script %q", name)
	return s
}

func TestUnknownIsNotRecognizedByName(t *testing.T) {
	// a script named like the sentinel is still a different tag
	s := FromTag(language.Common)
	assert.False(t, s.IsUnknown())
	assert.True(t, FromTag(language.Unknown).IsUnknown())
}

func TestParseExtensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.scripts")
	defer teardown()
	//
	input := `# test
0951          ; Beng Deva   # comment
0300..0301    ; Latn Grek
`
	ext, err := ParseExtensions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, ext.Len())
	res := NewResolver(ext)
	assert.Equal(t, []string{"Latin", "Greek"}, Names(res.ScriptsOf(0x0301)))
	assert.Equal(t, []string{"Bengali", "Devanagari"}, Names(res.ScriptsOf(0x0951)))
	assert.Equal(t, []string{"Inherited"}, Names(res.ScriptsOf(0x0302)))
}

func TestParseExtensionsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.scripts")
	defer teardown()
	//
	bad := map[string]string{
		"no scripts":  "0951 ;   \n",
		"bad range":   "09XY ; Deva\n",
		"bad code":    "0951 ; De\n",
		"overlapping": "0300..0310 ; Latn\n0305 ; Grek\n",
	}
	for name, input := range bad {
		_, err := ParseExtensions(strings.NewReader(input))
		assert.Error(t, err, "expected error for case %q", name)
	}
}

func TestDefaultExtensionsAreValid(t *testing.T) {
	ext := DefaultExtensions()
	require.NotNil(t, ext)
	assert.Greater(t, ext.Len(), 30)
}
