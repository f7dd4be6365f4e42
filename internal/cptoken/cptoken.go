/*
Package cptoken parses codepoints given on command lines.

Accepted tokens, separated by commas or white space:

	U+0041  u+41  0x41  41     hexadecimal codepoint
	'A'                        quoted literal character
	ä                          literal character, if not a hex digit
	U+0041..U+0045             inclusive range

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cptoken

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxRange is the maximum number of codepoints a range token may expand to.
const MaxRange = 4096

// Parse parses a list of codepoint tokens.
func Parse(list string) ([]rune, error) {
	parts := Split(list)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		if lo, hi, ok := strings.Cut(p, ".."); ok {
			from, to, err := parseRange(lo, hi)
			if err != nil {
				return nil, err
			}
			for r := from; r <= to; r++ {
				out = append(out, r)
			}
			continue
		}
		r, err := Token(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseRange(lo, hi string) (rune, rune, error) {
	from, err := Token(lo)
	if err != nil {
		return 0, 0, err
	}
	to, err := Token(hi)
	if err != nil {
		return 0, 0, err
	}
	if to < from {
		return 0, 0, fmt.Errorf("invalid codepoint range %s..%s", lo, hi)
	}
	if to-from >= MaxRange {
		return 0, 0, fmt.Errorf("codepoint range %s..%s exceeds %d codepoints", lo, hi, MaxRange)
	}
	return from, to, nil
}

// Token parses a single codepoint token.
func Token(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	if len(token) >= 3 && token[0] == '\'' && token[len(token)-1] == '\'' {
		inner := token[1 : len(token)-1]
		if r, size := utf8.DecodeRuneInString(inner); size == len(inner) && r != utf8.RuneError {
			return r, nil
		}
		return 0, fmt.Errorf("invalid character literal %s", token)
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	default:
		if r, size := utf8.DecodeRuneInString(token); size == len(token) && !isHexDigit(r) {
			return r, nil
		}
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > unicode.MaxRune {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

func isHexDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

// Split splits a token list at commas and white space.
func Split(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
