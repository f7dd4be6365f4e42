package fontmap

import (
	"strings"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicharts/uniscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func script(t *testing.T, name string) uniscript.Script {
	s, ok := uniscript.ByName(name)
	require.True(t, ok, "expected to find script %q", name)
	return s
}

func TestBundledFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.fonts")
	defer teardown()
	//
	fr := New()
	cases := map[string]string{
		"Latin":    "Noto Serif",
		"Common":   "Noto Serif",
		"Greek":    "Noto Serif",
		"Han":      "Noto Serif CJK SC",
		"Hiragana": "Noto Serif CJK JP",
		"Arabic":   "Noto Naskh Arabic",
	}
	for name, family := range cases {
		f, ok := fr.FamilyOf(script(t, name))
		assert.True(t, ok)
		assert.Equal(t, family, f, "family of script %s", name)
	}
}

func TestPredictedFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.fonts")
	defer teardown()
	//
	fr := New()
	f, ok := fr.FamilyOf(script(t, "Old_Italic"))
	assert.True(t, ok)
	assert.Equal(t, "Noto Serif Old Italic", f)
	f, ok = fr.FamilyOf(script(t, "Linear_B"))
	assert.True(t, ok)
	assert.Equal(t, "Noto Serif Linear B", f)
}

func TestUnmappedScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.fonts")
	defer teardown()
	//
	fr := New()
	_, ok := fr.FamilyOf(uniscript.Unknown)
	assert.False(t, ok, "Unknown must not map to a font")
	_, ok = fr.FamilyOf(uniscript.FromTag(language.Blissymbols))
	assert.False(t, ok, "Blissymbols are marked unsupported")
}

func TestFamiliesAreDeduplicated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.fonts")
	defer teardown()
	//
	fr := New()
	scripts := uniscript.Default().ScriptsOf(0x0485) // Cyrillic, Latin
	require.Len(t, scripts, 2)
	assert.Equal(t, []string{"Noto Serif"}, fr.FamiliesOf(scripts))
	//
	mixed := []uniscript.Script{
		script(t, "Hiragana"), uniscript.Unknown, script(t, "Latin"), script(t, "Katakana"),
	}
	assert.Equal(t, []string{"Noto Serif CJK JP", "Noto Serif"}, fr.FamiliesOf(mixed))
}

func TestOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.fonts")
	defer teardown()
	//
	fr := New()
	latin := script(t, "Latin")
	_, _ = fr.FamilyOf(latin) // memoize
	yml := `
Latin: Noto Serif Display
Old Italic: ~
Gothic: ""
`
	require.NoError(t, fr.LoadOverrides(strings.NewReader(yml)))
	f, ok := fr.FamilyOf(latin)
	assert.True(t, ok)
	assert.Equal(t, "Noto Serif Display", f, "override must replace memoized family")
	_, ok = fr.FamilyOf(script(t, "Old_Italic"))
	assert.False(t, ok)
	_, ok = fr.FamilyOf(script(t, "Gothic"))
	assert.False(t, ok)
	//
	err := fr.LoadOverrides(strings.NewReader("Elvish: Tengwar Annatar\n"))
	assert.Error(t, err)
	assert.NoError(t, fr.LoadOverrides(strings.NewReader("")))
}

func TestFontFileOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.fonts")
	defer teardown()
	//
	family, err := FamilyName(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go", family)
	//
	fr := New()
	latin := script(t, "Latin")
	require.NoError(t, fr.SetFontFile(latin, goregular.TTF))
	f, _ := fr.FamilyOf(latin)
	assert.Equal(t, "Go", f)
	//
	_, err = FamilyName([]byte("no font"))
	assert.Error(t, err)
}
