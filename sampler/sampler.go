/*
Package sampler draws character samples from Unicode blocks.

A [Sample] records, for a single codepoint, whether it may be written as an
XML numeric character reference, the scripts it belongs to and the fonts
predicted for those scripts. A [Sampler] produces samples in two modes:

  - Exhaustive: the leading codepoints of a block, in order, up to a cap.
  - Random: one randomly chosen codepoint, re-drawn a bounded number of
    times while it is not a valid character reference.

The capabilities a sampler needs are interfaces, so tests and clients may
substitute them. Packages xmlchar, uniscript and fontmap provide the
default implementations.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sampler

import (
	"math/rand/v2"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicharts/blocks"
	"github.com/npillmayer/unicharts/fontmap"
	"github.com/npillmayer/unicharts/uniscript"
	"github.com/npillmayer/unicharts/xmlchar"
)

// tracer traces with key 'unicharts.sampler'
func tracer() tracing.Trace {
	return tracing.Select("unicharts.sampler")
}

// Validator decides whether a codepoint is a valid XML character reference.
type Validator interface {
	IsValidReference(cp rune) bool
}

// ScriptResolver maps a codepoint to its scripts.
type ScriptResolver interface {
	ScriptsOf(r rune) []uniscript.Script
}

// FontResolver maps a script to a font family.
type FontResolver interface {
	FamilyOf(s uniscript.Script) (string, bool)
}

// Sample is the evaluation of a single codepoint.
type Sample struct {
	Codepoint rune
	Valid     bool
	Scripts   []uniscript.Script // empty if not valid
	Fonts     []string           // unique, in order of first occurrence
}

// ScriptNames returns the names of the scripts of s.
func (s Sample) ScriptNames() []string {
	return uniscript.Names(s.Scripts)
}

const (
	DefaultCap        = 35 // number of leading codepoints sampled exhaustively
	DefaultMaxRetries = 5  // re-draws after an invalid random draw
)

// Sampler evaluates codepoints of blocks.
type Sampler struct {
	validator  Validator
	scripts    ScriptResolver
	fonts      FontResolver
	rnd        *rand.Rand
	cap        int
	maxRetries int
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithValidator sets the character reference validator.
func WithValidator(v Validator) Option {
	return func(s *Sampler) { s.validator = v }
}

// WithScripts sets the script resolver.
func WithScripts(r ScriptResolver) Option {
	return func(s *Sampler) { s.scripts = r }
}

// WithFonts sets the font resolver.
func WithFonts(r FontResolver) Option {
	return func(s *Sampler) { s.fonts = r }
}

// WithRand sets the random source for Random.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Sampler) { s.rnd = rnd }
}

// WithSeed seeds a PCG random source for Random.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) { s.rnd = rand.New(rand.NewPCG(seed, seed)) }
}

// WithCap sets the number of codepoints sampled by Exhaustive.
// Values < 1 are ignored.
func WithCap(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.cap = n
		}
	}
}

// WithMaxRetries sets the number of re-draws for Random.
// Negative values are ignored.
func WithMaxRetries(n int) Option {
	return func(s *Sampler) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// New creates a sampler. Capabilities not set by options default to
// an xmlchar oracle with the standard checker, the default uniscript
// resolver and a fresh fontmap resolver. Without a random source, Random
// draws from an unseeded generator.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		cap:        DefaultCap,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = xmlchar.NewOracle(nil)
	}
	if s.scripts == nil {
		s.scripts = uniscript.Default()
	}
	if s.fonts == nil {
		s.fonts = fontmap.New()
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Evaluate computes the sample for a single codepoint.
func (s *Sampler) Evaluate(cp rune) Sample {
	sample := Sample{Codepoint: cp}
	if !s.validator.IsValidReference(cp) {
		return sample
	}
	sample.Valid = true
	sample.Scripts = s.scripts.ScriptsOf(cp)
	seen := make(map[string]bool, len(sample.Scripts))
	for _, script := range sample.Scripts {
		if script.IsUnknown() {
			continue
		}
		family, ok := s.fonts.FamilyOf(script)
		if !ok || seen[family] {
			continue
		}
		seen[family] = true
		sample.Fonts = append(sample.Fonts, family)
	}
	return sample
}

// Exhaustive samples the codepoints of b in ascending order, starting at
// b.Start. The terminal codepoint b.End is never sampled, and at most the
// configured cap of codepoints is returned.
func (s *Sampler) Exhaustive(b blocks.Block) []Sample {
	n := int(b.End - b.Start)
	if n > s.cap {
		n = s.cap
	}
	if n <= 0 {
		return nil
	}
	samples := make([]Sample, 0, n)
	for cp := b.Start; cp < b.Start+rune(n); cp++ {
		samples = append(samples, s.Evaluate(cp))
	}
	tracer().Debugf("block %s: sampled %d codepoints", b.Name, len(samples))
	return samples
}

// Random draws a codepoint from (b.Start, b.End]. While the draw is not a
// valid character reference, it is repeated up to the configured number of
// retries. The last draw is returned even if it is invalid. A block of a
// single codepoint yields a sample of b.Start.
func (s *Sampler) Random(b blocks.Block) Sample {
	if b.End <= b.Start {
		return s.Evaluate(b.Start)
	}
	var sample Sample
	for remaining := s.maxRetries + 1; remaining > 0; remaining-- {
		cp := b.Start + 1 + rune(s.rnd.IntN(int(b.End-b.Start)))
		sample = s.Evaluate(cp)
		if sample.Valid {
			return sample
		}
		tracer().Debugf("block %s: drew invalid %s, %d attempts left",
			b.Name, xmlchar.Hex(cp), remaining-1)
	}
	tracer().Infof("block %s: no valid character found", b.Name)
	return sample
}
