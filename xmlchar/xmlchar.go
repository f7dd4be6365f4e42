/*
Package xmlchar decides whether a codepoint may be embedded into XML
character data as a numeric character reference.

Not every codepoint in [0, 0x10FFFF] is legal in XML 1.0 documents: most C0
controls, the surrogates and the noncharacters U+FFFE and U+FFFF are rejected
by a conformant parser. Instead of re-stating the Char production of the XML
grammar, an [Oracle] wraps the codepoint into a minimal fragment and hands it
to a [Checker]. Checkers are injected, so tests may substitute them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package xmlchar

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unicharts.xml'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.xml")
}

// Checker reports whether a markup fragment is well-formed.
// A nil error means the fragment parsed without a well-formedness error.
type Checker interface {
	CheckWellFormed(fragment string) error
}

// CheckerFunc adapts an ordinary function to the Checker interface.
type CheckerFunc func(fragment string) error

// CheckWellFormed calls f(fragment).
func (f CheckerFunc) CheckWellFormed(fragment string) error {
	return f(fragment)
}

// Oracle answers whether codepoints are valid as numeric character references.
type Oracle struct {
	checker Checker
}

// NewOracle creates an oracle delegating to checker. If checker is nil,
// a StdChecker is used.
func NewOracle(checker Checker) *Oracle {
	if checker == nil {
		checker = StdChecker{}
	}
	return &Oracle{checker: checker}
}

// IsValidReference reports whether codepoint cp, written as a numeric
// character reference, is accepted inside XML character data.
// Values outside [0, 0x10FFFF] are never valid.
func (o *Oracle) IsValidReference(cp rune) bool {
	if cp < 0 || cp > unicode.MaxRune {
		return false
	}
	if err := o.checker.CheckWellFormed(Fragment(cp)); err != nil {
		tracer().Debugf("%s rejected: %v", Hex(cp), err)
		return false
	}
	return true
}

// Hex formats cp in upper-case hexadecimal with at least 4 digits.
func Hex(cp rune) string {
	return fmt.Sprintf("%04X", cp)
}

// Reference returns cp as a hexadecimal numeric character reference,
// e.g. "&#x0041;".
func Reference(cp rune) string {
	return "&#x" + Hex(cp) + ";"
}

// Fragment wraps the numeric character reference for cp into an xml2rfc
// <u> element, e.g. "<u>&#x0041;</u>".
func Fragment(cp rune) string {
	return "<u>" + Reference(cp) + "</u>"
}
