package unicharts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/unicharts/catalog"
	"github.com/npillmayer/unicharts/rfcxml"
	"github.com/npillmayer/unicharts/sampler"
	"github.com/npillmayer/unicharts/xmlchar"
)

// Configuration keys read by FromConfig.
const (
	KeyMode          = "catalog.mode"       // exhaustive | random
	KeySeed          = "catalog.seed"       // seed for random mode
	KeyCap           = "catalog.cap"        // characters per block table
	KeyRetries       = "catalog.retries"    // re-draws in random mode
	KeyBlocksFile    = "blocks.file"        // Blocks.txt
	KeyScriptsFile   = "taxonomy.scripts"   // YAML taxonomy
	KeySymbolsFile   = "taxonomy.symbols"   // YAML taxonomy
	KeyFontOverrides = "fonts.overrides"    // YAML script → family
	KeyExtensions    = "scripts.extensions" // ScriptExtensions.txt
)

// Options control the generation of a catalog document.
// The zero value is not useful, use DefaultOptions.
type Options struct {
	Mode           catalog.Mode
	Seed           uint64
	Seeded         bool // if false, random mode draws from an unseeded source
	Cap            int
	MaxRetries     int
	BlocksFile     string // empty for the built-in Unicode 15.0 table
	ExtensionsFile string // ScriptExtensions.txt, empty for the built-in excerpt
	ScriptsFile    string // empty for the built-in scripts taxonomy
	SymbolsFile    string // empty for the built-in symbols taxonomy
	FontOverrides  string
	Metadata       rfcxml.Metadata
	Checker        xmlchar.Checker // nil for xmlchar.StdChecker
}

// DefaultOptions returns options for an exhaustive catalog of the built-in
// data.
func DefaultOptions() Options {
	return Options{
		Mode:       catalog.Exhaustive,
		Cap:        sampler.DefaultCap,
		MaxRetries: sampler.DefaultMaxRetries,
	}
}

// Option modifies Options.
type Option func(*Options)

// NewOptions applies opts to the default options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMode selects exhaustive or random sampling.
func WithMode(m catalog.Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithSeed seeds random sampling.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed, o.Seeded = seed, true }
}

// WithCap sets the number of characters per block table.
func WithCap(n int) Option {
	return func(o *Options) { o.Cap = n }
}

// WithMaxRetries sets the number of re-draws in random mode.
func WithMaxRetries(n int) Option {
	return func(o *Options) { o.MaxRetries = n }
}

// WithBlocksFile reads the block table from a Blocks.txt file.
func WithBlocksFile(path string) Option {
	return func(o *Options) { o.BlocksFile = path }
}

// WithExtensionsFile reads Script_Extensions from a ScriptExtensions.txt file.
func WithExtensionsFile(path string) Option {
	return func(o *Options) { o.ExtensionsFile = path }
}

// WithTaxonomyFiles reads the scripts and symbols taxonomies from YAML
// files. Empty paths keep the built-in taxonomy.
func WithTaxonomyFiles(scripts, symbols string) Option {
	return func(o *Options) { o.ScriptsFile, o.SymbolsFile = scripts, symbols }
}

// WithFontOverrides reads script to font family assignments from YAML.
func WithFontOverrides(path string) Option {
	return func(o *Options) { o.FontOverrides = path }
}

// WithMetadata sets the document metadata.
func WithMetadata(meta rfcxml.Metadata) Option {
	return func(o *Options) { o.Metadata = meta }
}

// WithChecker replaces the XML well-formedness checker.
func WithChecker(c xmlchar.Checker) Option {
	return func(o *Options) { o.Checker = c }
}

// FromConfig reads options from a configuration. Keys not set keep their
// default values; opts are applied last.
func FromConfig(conf schuko.Configuration, opts ...Option) (Options, error) {
	o := DefaultOptions()
	if conf.IsSet(KeyMode) {
		m, err := catalog.ParseMode(conf.GetString(KeyMode))
		if err != nil {
			return o, fmt.Errorf("configuration %s: %w", KeyMode, err)
		}
		o.Mode = m
	}
	if conf.IsSet(KeySeed) {
		s := strings.TrimSpace(conf.GetString(KeySeed))
		seed, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return o, fmt.Errorf("configuration %s: invalid seed %q", KeySeed, s)
		}
		o.Seed, o.Seeded = seed, true
	}
	if conf.IsSet(KeyCap) {
		n, err := positiveInt(conf, KeyCap, 1)
		if err != nil {
			return o, err
		}
		o.Cap = n
	}
	if conf.IsSet(KeyRetries) {
		n, err := positiveInt(conf, KeyRetries, 0)
		if err != nil {
			return o, err
		}
		o.MaxRetries = n
	}
	o.BlocksFile = conf.GetString(KeyBlocksFile)
	o.ExtensionsFile = conf.GetString(KeyExtensions)
	o.ScriptsFile = conf.GetString(KeyScriptsFile)
	o.SymbolsFile = conf.GetString(KeySymbolsFile)
	o.FontOverrides = conf.GetString(KeyFontOverrides)
	for _, opt := range opts {
		opt(&o)
	}
	return o, nil
}

// positiveInt reads an integer >= lo from its string form.
func positiveInt(conf schuko.Configuration, key string, lo int) (int, error) {
	s := strings.TrimSpace(conf.GetString(key))
	n, err := strconv.Atoi(s)
	if err != nil || n < lo {
		return 0, fmt.Errorf("configuration %s: expected an integer >= %d, have %q", key, lo, s)
	}
	return n, nil
}
