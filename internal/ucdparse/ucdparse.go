/*
Package ucdparse reads the semicolon-separated text files of the Unicode
Character Database, e.g. Blocks.txt or ScriptExtensions.txt.

Every data line starts with a single codepoint or a range of codepoints,
followed by one or more fields:

	0000..007F; Basic Latin
	0951      ; Beng Deva Gran Gujr Guru Knda Latn Mlym Orya Shrd Taml Telu Tirh

Comments start with '#' and run to the end of the line. Blank lines are skipped.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is one parsed data line.
type Token struct {
	Line   int     // 1-based line number within the input
	Error  error   // set if the line could not be parsed
	from   rune    // first codepoint of range
	to     rune    // last codepoint of range, inclusive
	fields []string
}

// Range returns the inclusive codepoint range of the line.
func (t Token) Range() (rune, rune) {
	return t.from, t.to
}

// Field returns field i of the line, with surrounding white space removed.
// Field 0 is the codepoint (range) field. Missing fields are returned as "".
func (t Token) Field(i int) string {
	if i < 0 || i >= len(t.fields) {
		return ""
	}
	return strings.TrimSpace(t.fields[i])
}

// FieldCount returns the number of fields, including the range field.
func (t Token) FieldCount() int {
	return len(t.fields)
}

// Parser iterates over the data lines of a UCD file.
type Parser struct {
	Token   Token
	scanner *bufio.Scanner
	line    int
}

// New creates a parser reading from r.
func New(r io.Reader) (*Parser, error) {
	if r == nil {
		return nil, errors.New("ucdparse: no input")
	}
	return &Parser{scanner: bufio.NewScanner(r)}, nil
}

// Next advances to the next data line. It returns false at end of input or
// after a line failed to parse; in the latter case Token.Error is set.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.line++
		text := p.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		p.Token = Token{Line: p.line, fields: strings.Split(text, ";")}
		from, to, err := parseRange(p.Token.Field(0))
		if err != nil {
			p.Token.Error = fmt.Errorf("line %d: %w", p.line, err)
			return false
		}
		p.Token.from, p.Token.to = from, to
		return true
	}
	if err := p.scanner.Err(); err != nil {
		p.Token = Token{Line: p.line, Error: err}
	}
	return false
}

// Err returns the first error encountered, if any.
func (p *Parser) Err() error {
	return p.Token.Error
}

func parseRange(field string) (rune, rune, error) {
	lo, hi, isRange := strings.Cut(field, "..")
	from, err := parseCodepoint(lo)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return from, from, nil
	}
	to, err := parseCodepoint(hi)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", s, err)
	}
	if n > unicode.MaxRune {
		return 0, fmt.Errorf("codepoint %q out of range", s)
	}
	return rune(n), nil
}
