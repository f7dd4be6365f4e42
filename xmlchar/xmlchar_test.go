package xmlchar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlCharactersAreInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.xml")
	defer teardown()
	//
	o := NewOracle(nil)
	for cp := rune(0x0000); cp <= 0x0008; cp++ {
		assert.False(t, o.IsValidReference(cp), "expected %s to be invalid", Hex(cp))
	}
	for _, cp := range []rune{0x000B, 0x000C, 0x000E, 0x001F} {
		assert.False(t, o.IsValidReference(cp), "expected %s to be invalid", Hex(cp))
	}
	for _, cp := range []rune{0x0009, 0x000A, 0x000D} {
		assert.True(t, o.IsValidReference(cp), "expected %s to be valid", Hex(cp))
	}
}

func TestSurrogatesAreInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.xml")
	defer teardown()
	//
	o := NewOracle(nil)
	for _, cp := range []rune{0xD800, 0xDB7F, 0xDC00, 0xDFFF} {
		assert.False(t, o.IsValidReference(cp), "expected surrogate %s to be invalid", Hex(cp))
	}
}

func TestNoncharactersAndRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.xml")
	defer teardown()
	//
	o := NewOracle(nil)
	assert.False(t, o.IsValidReference(0xFFFE))
	assert.False(t, o.IsValidReference(0xFFFF))
	assert.False(t, o.IsValidReference(-1))
	assert.False(t, o.IsValidReference(0x110000))
	assert.True(t, o.IsValidReference(0xFFFD))
	assert.True(t, o.IsValidReference(0x10FFFF))
}

func TestPrintableASCIIIsValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.xml")
	defer teardown()
	//
	o := NewOracle(nil)
	for cp := rune(0x20); cp < 0x7F; cp++ {
		require.True(t, o.IsValidReference(cp), "expected %s to be valid", Hex(cp))
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0041", Hex('A'))
	assert.Equal(t, "1F600", Hex(0x1F600))
	assert.Equal(t, "&#x0041;", Reference('A'))
	assert.Equal(t, "<u>&#x00E9;</u>", Fragment(0xE9))
}

func TestInjectedChecker(t *testing.T) {
	var seen []string
	reject := CheckerFunc(func(fragment string) error {
		seen = append(seen, fragment)
		return errors.New("rejected")
	})
	o := NewOracle(reject)
	assert.False(t, o.IsValidReference('A'))
	require.Len(t, seen, 1)
	assert.Equal(t, "<u>&#x0041;</u>", seen[0])
	//
	o.IsValidReference(0x110000)
	assert.Len(t, seen, 1, "out-of-range codepoints must not reach the checker")
}

func TestStdCheckerFragments(t *testing.T) {
	c := StdChecker{}
	assert.NoError(t, c.CheckWellFormed("<u>x</u>"))
	assert.NoError(t, c.CheckWellFormed("<u>&#65;&#x42;</u>"))
	assert.Error(t, c.CheckWellFormed("<u>x"))
	assert.Error(t, c.CheckWellFormed("<u>x</u><u>y</u>"))
	assert.Error(t, c.CheckWellFormed("<u>&#55296;</u>"))
	assert.Error(t, c.CheckWellFormed("<u>&#x110000;</u>"))
}
