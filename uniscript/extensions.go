package uniscript

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/unicharts/internal/ucdparse"
	xlanguage "golang.org/x/text/language"
)

// Extensions holds the Script_Extensions property for a set of codepoint
// ranges.
type Extensions struct {
	ranges []extRange // sorted by from, non-overlapping
}

type extRange struct {
	from, to rune
	scripts  []Script
}

// Len returns the number of codepoint ranges in the table.
func (ext *Extensions) Len() int {
	if ext == nil {
		return 0
	}
	return len(ext.ranges)
}

func (ext *Extensions) lookup(r rune) ([]Script, bool) {
	i := sort.Search(len(ext.ranges), func(i int) bool {
		return ext.ranges[i].to >= r
	})
	if i < len(ext.ranges) && ext.ranges[i].from <= r {
		return ext.ranges[i].scripts, true
	}
	return nil, false
}

// ParseExtensions reads the Script_Extensions property in the format of the
// Unicode Character Database file ScriptExtensions.txt:
//
//	0951          ; Beng Deva Gran Gujr Guru Knda Latn Mlym Orya Shrd Taml Telu Tirh
//
// Script codes are ISO 15924 codes. Codes which are syntactically valid but
// not (yet) registered are accepted.
func ParseExtensions(r io.Reader) (*Extensions, error) {
	parser, err := ucdparse.New(r)
	if err != nil {
		return nil, err
	}
	ext := &Extensions{}
	for parser.Next() {
		from, to := parser.Token.Range()
		codes := strings.Fields(parser.Token.Field(1))
		if len(codes) == 0 {
			return nil, fmt.Errorf("ScriptExtensions line %d: no scripts", parser.Token.Line)
		}
		scripts := make([]Script, 0, len(codes))
		for _, code := range codes {
			s, err := parseCode(code)
			if err != nil {
				return nil, fmt.Errorf("ScriptExtensions line %d: %w", parser.Token.Line, err)
			}
			scripts = append(scripts, s)
		}
		ext.ranges = append(ext.ranges, extRange{from: from, to: to, scripts: scripts})
	}
	if err := parser.Err(); err != nil {
		return nil, fmt.Errorf("ScriptExtensions: %w", err)
	}
	sort.Slice(ext.ranges, func(i, j int) bool {
		return ext.ranges[i].from < ext.ranges[j].from
	})
	for i := 1; i < len(ext.ranges); i++ {
		if ext.ranges[i-1].to >= ext.ranges[i].from {
			return nil, fmt.Errorf("ScriptExtensions: overlapping entries at U+%04X", ext.ranges[i].from)
		}
	}
	tracer().Debugf("read %d Script_Extensions ranges", len(ext.ranges))
	return ext, nil
}

// parseCode checks an ISO 15924 code against the registry of x/text and
// converts it to a go-text script tag.
func parseCode(code string) (Script, error) {
	if _, err := xlanguage.ParseScript(code); err != nil {
		var verr xlanguage.ValueError
		if !errors.As(err, &verr) {
			return Script{}, fmt.Errorf("invalid script code %q: %w", code, err)
		}
		tracer().Debugf("script code %q not registered with x/text", code)
	}
	tag, err := language.ParseScript(code)
	if err != nil {
		return Script{}, err
	}
	return Script{tag: tag}, nil
}

var defaultExt struct {
	once sync.Once
	ext  *Extensions
}

// DefaultExtensions returns the bundled excerpt of Script_Extensions,
// covering shared punctuation, digits and marks of the major scripts.
// Clients needing the full property should load ScriptExtensions.txt with
// [ParseExtensions].
func DefaultExtensions() *Extensions {
	defaultExt.once.Do(func() {
		ext, err := ParseExtensions(strings.NewReader(scxExcerpt))
		if err != nil {
			panic(fmt.Sprintf("built-in Script_Extensions corrupt: %v", err))
		}
		defaultExt.ext = ext
	})
	return defaultExt.ext
}
