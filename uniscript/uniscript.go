/*
Package uniscript resolves the Unicode scripts of characters.

The Script property of a character is taken from
github.com/go-text/typesetting/language. Characters which are shared between
scripts, e.g. the Devanagari danda used throughout Brahmic scripts, carry a
Script_Extensions property listing all of them. A [Resolver] consults an
[Extensions] table first and falls back to the Script property.

Scripts are represented by their ISO 15924 tag. The sentinel [Unknown] is a
tag like any other and is never recognized by its name.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package uniscript

import (
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unicharts.scripts'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.scripts")
}

// Script is a Unicode script, identified by its ISO 15924 tag.
type Script struct {
	tag language.Script
}

// Unknown is the script of unassigned, private-use and surrogate codepoints.
var Unknown = Script{tag: language.Unknown}

// FromTag wraps a go-text script tag.
func FromTag(tag language.Script) Script {
	return Script{tag: tag}
}

// ByName finds a script by its long property value name, e.g. "Old_Italic".
// Spaces are accepted in place of underscores and case is ignored.
func ByName(name string) (Script, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	tag, ok := scriptsByName[key]
	return Script{tag: tag}, ok
}

var scriptsByName = func() map[string]language.Script {
	m := make(map[string]language.Script, len(scriptNames))
	for tag, name := range scriptNames {
		m[strings.ToLower(name)] = tag
	}
	return m
}()

// Tag returns the go-text representation of s.
func (s Script) Tag() language.Script {
	return s.tag
}

// Code returns the ISO 15924 code of s, e.g. "Latn".
func (s Script) Code() string {
	return s.tag.String()
}

// Name returns the long property value name of s, e.g. "Latin" or
// "Old_Italic". Scripts without a registered name are reported by their code.
func (s Script) Name() string {
	if name, ok := scriptNames[s.tag]; ok {
		return name
	}
	return s.Code()
}

// IsUnknown reports whether s is the Unknown script.
func (s Script) IsUnknown() bool {
	return s.tag == language.Unknown
}

func (s Script) String() string {
	return s.Name()
}

// Names returns the names of a list of scripts.
func Names(scripts []Script) []string {
	names := make([]string, len(scripts))
	for i, s := range scripts {
		names[i] = s.Name()
	}
	return names
}

// Resolver maps characters to the scripts they are used with.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	ext *Extensions
}

// NewResolver creates a script resolver. ext may be nil, in which case
// only the Script property is used.
func NewResolver(ext *Extensions) *Resolver {
	return &Resolver{ext: ext}
}

// Default returns a resolver using the bundled Script_Extensions excerpt.
func Default() *Resolver {
	return NewResolver(DefaultExtensions())
}

// ScriptsOf returns the scripts of character r. The result is never empty;
// characters without an assigned script yield [Unknown].
func (res *Resolver) ScriptsOf(r rune) []Script {
	if !utf8.ValidRune(r) {
		return []Script{Unknown}
	}
	if res != nil && res.ext != nil {
		if scripts, ok := res.ext.lookup(r); ok {
			out := make([]Script, len(scripts))
			copy(out, scripts)
			return out
		}
	}
	return []Script{{tag: language.LookupScript(r)}}
}
