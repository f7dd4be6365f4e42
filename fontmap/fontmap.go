/*
Package fontmap predicts the font family xml2rfc would select for a
Unicode script.

xml2rfc embeds Noto Serif fonts into PDF output. A [Resolver] knows the
families actually shipped for the common scripts. For every other script it
predicts the family name "Noto Serif <script name>", whether such a family
exists or not. Comparing predictions with rendered output is the point of
the catalog, so predictions are never verified against installed fonts.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontmap

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicharts/uniscript"
)

// tracer traces with key 'unicharts.fonts'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.fonts")
}

// FamilyPrefix is prepended to script names for predicted families.
const FamilyPrefix = "Noto Serif "

// Resolver maps scripts to font family names.
// A Resolver is safe for concurrent use.
type Resolver struct {
	mu        sync.Mutex
	overrides map[language.Script]entry
	memo      map[language.Script]entry
}

type entry struct {
	family string
	ok     bool
}

// New creates a font resolver with the built-in family table.
func New() *Resolver {
	return &Resolver{
		overrides: make(map[language.Script]entry),
		memo:      make(map[language.Script]entry),
	}
}

// FamilyOf returns the font family for script s. If s is Unknown or marked
// as unsupported, ok is false.
func (fr *Resolver) FamilyOf(s uniscript.Script) (family string, ok bool) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if e, found := fr.memo[s.Tag()]; found {
		return e.family, e.ok
	}
	e := fr.resolve(s)
	fr.memo[s.Tag()] = e
	tracer().Debugf("font for script %s: %q (%v)", s.Name(), e.family, e.ok)
	return e.family, e.ok
}

func (fr *Resolver) resolve(s uniscript.Script) entry {
	if e, found := fr.overrides[s.Tag()]; found {
		return e
	}
	if s.IsUnknown() {
		return entry{}
	}
	if family, found := notoSerif[s.Tag()]; found {
		return entry{family: family, ok: family != ""}
	}
	return entry{family: Predict(s), ok: true}
}

// Predict returns the family name derived from the name of s,
// e.g. "Noto Serif Old Italic".
func Predict(s uniscript.Script) string {
	return FamilyPrefix + strings.ReplaceAll(s.Name(), "_", " ")
}

// SetFamily overrides the family for script s. An empty family marks s
// as unsupported.
func (fr *Resolver) SetFamily(s uniscript.Script, family string) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	family = strings.TrimSpace(family)
	fr.overrides[s.Tag()] = entry{family: family, ok: family != ""}
	delete(fr.memo, s.Tag())
}

// FamiliesOf returns the families of a list of scripts, skipping scripts
// without a family. Duplicates are removed, keeping the first occurrence.
func (fr *Resolver) FamiliesOf(scripts []uniscript.Script) []string {
	families := make([]string, 0, len(scripts))
	seen := make(map[string]bool, len(scripts))
	for _, s := range scripts {
		family, ok := fr.FamilyOf(s)
		if !ok || seen[family] {
			continue
		}
		seen[family] = true
		families = append(families, family)
	}
	return families
}
