package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/unicharts"
	"github.com/npillmayer/unicharts/uniscript"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("uc-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for generating the Unicode block catalog and inspecting its data.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("draft").
		SetDescription("Generate the complete xml2rfc catalog document.").
		SetShortDescription("generate document").
		AddFlag("mode,m", "sampling mode: exhaustive|random", commando.String, "exhaustive").
		AddFlag("seed,s", "seed for random mode (decimal or 0x-hex, '-' for unseeded)", commando.String, "-").
		AddFlag("cap,c", "number of characters per block table", commando.Int, 35).
		AddFlag("retries,r", "re-draws after an invalid random draw", commando.Int, 5).
		AddFlag("blocks,b", "Blocks.txt file (default: built-in Unicode 15.0)", commando.String, "-").
		AddFlag("extensions,x", "ScriptExtensions.txt file (default: built-in excerpt)", commando.String, "-").
		AddFlag("scripts", "YAML taxonomy for the scripts chapter", commando.String, "-").
		AddFlag("symbols", "YAML taxonomy for the symbols chapter", commando.String, "-").
		AddFlag("fonts,f", "YAML file of script to font family overrides", commando.String, "-").
		AddFlag("font-file,F", "font files assigned to scripts (e.g. Latin=/path/a.ttf,Greek=/path/b.otf)", commando.String, "-").
		AddFlag("output,o", "output file ('-' for stdout)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runDraftCommand)

	commando.
		Register("block").
		SetDescription("Render the catalog section of one or more blocks.").
		SetShortDescription("render blocks").
		AddArgument("name...", "block names (e.g. \"Basic Latin\")", "").
		AddFlag("mode,m", "sampling mode: exhaustive|random", commando.String, "exhaustive").
		AddFlag("seed,s", "seed for random mode (decimal or 0x-hex, '-' for unseeded)", commando.String, "-").
		AddFlag("cap,c", "number of characters per block table", commando.Int, 35).
		AddFlag("blocks,b", "Blocks.txt file (default: built-in Unicode 15.0)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runBlockCommand)

	commando.
		Register("lookup").
		SetDescription("Print block, validity, scripts and fonts of codepoints.").
		SetShortDescription("describe codepoints").
		AddArgument("codepoints...", "codepoints (comma/space separated, e.g. U+0627,0x41,'x',U+0030..U+0039)", "").
		AddFlag("blocks,b", "Blocks.txt file (default: built-in Unicode 15.0)", commando.String, "-").
		AddFlag("extensions,x", "ScriptExtensions.txt file (default: built-in excerpt)", commando.String, "-").
		AddFlag("fonts,f", "YAML file of script to font family overrides", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runLookupCommand)

	commando.
		Register("taxonomy").
		SetDescription("Extract the scripts and symbols taxonomies from the Unicode charts index page.").
		SetShortDescription("scrape charts index").
		AddArgument("page", "saved copy of https://www.unicode.org/charts/", "").
		AddFlag("scripts", "output file for the scripts taxonomy ('-' for stdout)", commando.String, "-").
		AddFlag("symbols", "output file for the symbols taxonomy ('-' for stdout)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runTaxonomyCommand)

	commando.Parse(nil)
}

// Configuration keys for command line flags. Flags not registered for a
// command are skipped.
var (
	stringFlagKeys = map[string]string{
		"mode":       unicharts.KeyMode,
		"seed":       unicharts.KeySeed,
		"blocks":     unicharts.KeyBlocksFile,
		"extensions": unicharts.KeyExtensions,
		"scripts":    unicharts.KeyScriptsFile,
		"symbols":    unicharts.KeySymbolsFile,
		"fonts":      unicharts.KeyFontOverrides,
	}
	intFlagKeys = map[string]string{
		"cap":     unicharts.KeyCap,
		"retries": unicharts.KeyRetries,
	}
)

// configure reads the flags of a command into a configuration and derives
// generator options from it.
func configure(flags map[string]commando.FlagValue) unicharts.Options {
	setupTracing(verbose(flags))
	conf := testconfig.Conf{}
	for flag, key := range stringFlagKeys {
		if fv, ok := flags[flag]; ok {
			if v := flagString(fv, flag); v != "" {
				conf[key] = v
			}
		}
	}
	for flag, key := range intFlagKeys {
		if fv, ok := flags[flag]; ok {
			conf[key] = strconv.Itoa(mustFlagInt(fv, flag))
		}
	}
	opts, err := unicharts.FromConfig(conf)
	if err != nil {
		fatalf("%v", err)
	}
	return opts
}

// flagString returns the value of a string flag, with "-" mapped to "".
func flagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func newGenerator(opts unicharts.Options) *unicharts.Generator {
	g, err := unicharts.NewGenerator(opts)
	if err != nil {
		fatalf("%v", err)
	}
	return g
}

// assignFontFiles parses "Script=path" pairs and overrides the family of
// each script with the family of the font file.
func assignFontFiles(g *unicharts.Generator, assignments string) error {
	for _, pair := range strings.Split(assignments, ",") {
		if pair = strings.TrimSpace(pair); pair == "" {
			continue
		}
		name, path, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid font file assignment %q, expected Script=path", pair)
		}
		s, ok := uniscript.ByName(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("unknown script %q", name)
		}
		data, err := os.ReadFile(strings.TrimSpace(path))
		if err != nil {
			return fmt.Errorf("cannot read font %s: %w", path, err)
		}
		if err := g.Fonts().SetFontFile(s, data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		family, _ := g.Fonts().FamilyOf(s)
		tracer().Infof("script %s uses font family %q", s.Name(), family)
	}
	return nil
}

func setupTracing(verbose bool) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Error"
	if verbose {
		level = "Info"
	}
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.unicharts": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// tracer traces with key 'unicharts'
func tracer() tracing.Trace {
	return tracing.Select("unicharts")
}

// verbose reports whether the --verbose flag is set for a command.
func verbose(flags map[string]commando.FlagValue) bool {
	if _, ok := flags["verbose"]; !ok {
		return false
	}
	return mustFlagBool(flags["verbose"], "verbose")
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "uc-tools: "+format+"\n", args...)
	os.Exit(1)
}
