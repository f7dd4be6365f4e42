package sampler

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicharts/blocks"
	"github.com/npillmayer/unicharts/uniscript"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type SamplerTestEnviron struct {
	suite.Suite
	table *blocks.Table
}

// listen for 'go test' command --> run test methods
func TestSamplerFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts.sampler")
	defer teardown()
	suite.Run(t, new(SamplerTestEnviron))
}

// run once, before test suite methods
func (env *SamplerTestEnviron) SetupSuite() {
	env.table = blocks.Default()
}

func (env *SamplerTestEnviron) block(name string) blocks.Block {
	b, ok := env.table.Lookup(name)
	env.Require().True(ok, "block %q not found", name)
	return b
}

// countingValidator rejects every codepoint and counts the calls.
type countingValidator struct {
	calls int
	seen  []rune
}

func (v *countingValidator) IsValidReference(cp rune) bool {
	v.calls++
	v.seen = append(v.seen, cp)
	return false
}

// --- Tests -----------------------------------------------------------------

func (env *SamplerTestEnviron) TestExhaustiveBasicLatin() {
	s := New()
	samples := s.Exhaustive(env.block("Basic Latin"))
	env.Require().Len(samples, 35)
	for i, sample := range samples {
		env.Equal(rune(i), sample.Codepoint)
	}
	for _, sample := range samples[:9] {
		env.False(sample.Valid, "expected U+%04X to be invalid", sample.Codepoint)
		env.Empty(sample.Scripts)
		env.Empty(sample.Fonts)
	}
	env.True(samples[0x09].Valid)
	env.True(samples[0x0A].Valid)
	env.False(samples[0x0B].Valid)
	space := samples[0x20]
	env.True(space.Valid)
	env.Equal([]string{"Common"}, space.ScriptNames())
	env.Equal([]string{"Noto Serif"}, space.Fonts)
}

func (env *SamplerTestEnviron) TestExhaustiveLengthForAllBlocks() {
	s := New()
	for _, b := range env.table.Blocks() {
		expected := min(35, int(b.End-b.Start))
		samples := s.Exhaustive(b)
		env.Require().Len(samples, expected, "block %s", b.Name)
		for i, sample := range samples {
			env.Equal(b.Start+rune(i), sample.Codepoint)
			env.NotEqual(b.End, sample.Codepoint, "terminal codepoint must be excluded")
		}
	}
}

func (env *SamplerTestEnviron) TestExhaustiveCap() {
	s := New(WithCap(3))
	env.Len(s.Exhaustive(env.block("Greek and Coptic")), 3)
	s = New(WithCap(0))
	env.Len(s.Exhaustive(env.block("Greek and Coptic")), DefaultCap)
}

func (env *SamplerTestEnviron) TestExhaustiveSurrogates() {
	s := New()
	for _, sample := range s.Exhaustive(env.block("High Surrogates")) {
		env.False(sample.Valid, "surrogate U+%04X must be invalid", sample.Codepoint)
	}
}

func (env *SamplerTestEnviron) TestRandomYieldsOneSampleInRange() {
	s := New(WithSeed(42))
	for _, b := range env.table.Blocks() {
		sample := s.Random(b)
		env.Greater(sample.Codepoint, b.Start, "block %s", b.Name)
		env.LessOrEqual(sample.Codepoint, b.End, "block %s", b.Name)
	}
}

func (env *SamplerTestEnviron) TestRandomIsDeterministicForSeed() {
	b := env.block("CJK Unified Ideographs")
	s1, s2 := New(WithSeed(7)), New(WithSeed(7))
	for i := 0; i < 10; i++ {
		env.Equal(s1.Random(b).Codepoint, s2.Random(b).Codepoint)
	}
}

func (env *SamplerTestEnviron) TestRandomRetriesAreBounded() {
	v := &countingValidator{}
	s := New(WithValidator(v), WithSeed(1))
	b := env.block("Cyrillic")
	sample := s.Random(b)
	env.Equal(DefaultMaxRetries+1, v.calls)
	env.False(sample.Valid)
	env.Equal(v.seen[len(v.seen)-1], sample.Codepoint, "expected the last attempt to be returned")
	//
	v = &countingValidator{}
	s = New(WithValidator(v), WithSeed(1), WithMaxRetries(0))
	s.Random(b)
	env.Equal(1, v.calls)
}

func (env *SamplerTestEnviron) TestRandomSingleCodepointBlock() {
	v := &countingValidator{}
	s := New(WithValidator(v))
	b := blocks.Block{Name: "Single", Start: 0x0041, End: 0x0041}
	sample := s.Random(b)
	env.Equal(rune(0x0041), sample.Codepoint)
	env.Equal(1, v.calls)
}

func (env *SamplerTestEnviron) TestRandomStopsAtFirstValidDraw() {
	s := New(WithSeed(3))
	sample := s.Random(env.block("Basic Latin"))
	if sample.Codepoint >= 0x20 {
		env.True(sample.Valid)
	}
	if sample.Valid {
		env.Equal(uniscript.Default().ScriptsOf(sample.Codepoint), sample.Scripts)
	} else {
		env.Empty(sample.Scripts)
	}
}

func (env *SamplerTestEnviron) TestFontsFollowScripts() {
	s := New()
	sample := s.Evaluate(0x30FC) // Hiragana, Katakana share a family
	env.True(sample.Valid)
	env.Equal([]string{"Hiragana", "Katakana"}, sample.ScriptNames())
	env.Equal([]string{"Noto Serif CJK JP"}, sample.Fonts)
	//
	sample = s.Evaluate(0x0378) // unassigned
	env.True(sample.Valid)
	env.Equal([]string{"Unknown"}, sample.ScriptNames())
	env.Empty(sample.Fonts)
}
