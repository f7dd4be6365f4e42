package cptoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	cases := map[string]rune{
		"U+0041":   0x41,
		"u+41":     0x41,
		"0x1F600":  0x1F600,
		"0X10FFFF": 0x10FFFF,
		"41":       0x41,
		"A":        0x0A,
		"'A'":      'A',
		"ä":        'ä',
		"'ä'":      'ä',
		" 20 ":     0x20,
	}
	for token, want := range cases {
		r, err := Token(token)
		require.NoError(t, err, "token %q", token)
		assert.Equal(t, want, r, "token %q", token)
	}
}

func TestTokenErrors(t *testing.T) {
	for _, token := range []string{"", "U+", "xyz", "U+110000", "'ab'", "0xG"} {
		_, err := Token(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestParseList(t *testing.T) {
	runes, err := Parse("U+0041, 0x42\t43 'D'")
	require.NoError(t, err)
	assert.Equal(t, []rune{'A', 'B', 'C', 'D'}, runes)
	//
	runes, err = Parse("U+0030..U+0033,ß")
	require.NoError(t, err)
	assert.Equal(t, []rune{'0', '1', '2', '3', 'ß'}, runes)
	//
	_, err = Parse("U+0033..U+0030")
	assert.Error(t, err)
	_, err = Parse("0..FFFF")
	assert.Error(t, err, "range larger than MaxRange")
}
