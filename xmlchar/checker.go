package xmlchar

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// StdChecker checks well-formedness with a strict encoding/xml decoder.
//
// encoding/xml decodes numeric character references to surrogates as
// U+FFFD instead of rejecting them. StdChecker therefore additionally
// requires every numeric character reference to denote a Unicode scalar
// value, which is what a conformant XML 1.0 parser enforces.
type StdChecker struct{}

// CheckWellFormed parses fragment completely and returns the first syntax
// error, if any.
func (StdChecker) CheckWellFormed(fragment string) error {
	if err := checkCharRefs(fragment); err != nil {
		return err
	}
	dec := xml.NewDecoder(strings.NewReader(fragment))
	dec.Strict = true
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if roots != 1 {
		return fmt.Errorf("fragment must have exactly one root element, has %d", roots)
	}
	return nil
}

// checkCharRefs scans for numeric character references and rejects those
// which do not denote a Unicode scalar value.
func checkCharRefs(fragment string) error {
	for rest := fragment; ; {
		i := strings.Index(rest, "&#")
		if i < 0 {
			return nil
		}
		rest = rest[i+2:]
		end := strings.IndexByte(rest, ';')
		if end < 0 {
			return nil // left to the decoder to report
		}
		digits, base := rest[:end], 10
		if strings.HasPrefix(digits, "x") {
			digits, base = digits[1:], 16
		}
		n, err := strconv.ParseUint(digits, base, 32)
		if err != nil {
			return nil // dito
		}
		if !utf8.ValidRune(rune(n)) {
			return &xml.SyntaxError{
				Msg:  fmt.Sprintf("character reference &#%s; is not a Unicode scalar value", rest[:end]),
				Line: 1,
			}
		}
		rest = rest[end+1:]
	}
}
