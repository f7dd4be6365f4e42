package taxonomy

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Table ids of the charts index page at https://www.unicode.org/charts/.
const (
	ScriptsTableID = "table5"
	SymbolsTableID = "table9"
)

// chartFixes maps labels of the charts index to block names.
var chartFixes = map[string]string{
	"Latin":                                 "Basic Latin",
	"Greek":                                 "Greek and Coptic",
	"CJK Unified Ideographs (Han) (35MB)":   "CJK Unified Ideographs",
	"CJK  Extension A (6MB)":                "CJK Unified Ideographs Extension A",
	"CJK Extension B (40MB)":                "CJK Unified Ideographs Extension B",
	"CJK Extension C (3MB)":                 "CJK Unified Ideographs Extension C",
	"CJK Extension D":                       "CJK Unified Ideographs Extension D",
	"CJK Extension E (3.5MB)":               "CJK Unified Ideographs Extension E",
	"CJK Extension F (4MB)":                 "CJK Unified Ideographs Extension F",
	"CJK Extension G (2MB)":                 "CJK Unified Ideographs Extension G",
	"CJK Extension H (2.5MB)":               "CJK Unified Ideographs Extension H",
	"N'Ko":                                  "NKo",
	"CJK Radicals / Kangxi Radicals":        "Kangxi Radicals",
	"Oriya (Odia)":                          "Oriya",
	"Bengali and Assamese":                  "Bengali",
	"Phags-Pa":                              "Phags-pa",
	"Aramaic, Imperial":                     "Imperial Aramaic",
	"Pahlavi, Inscriptional":                "Inscriptional Pahlavi",
	"Pahlavi, Psalter":                      "Psalter Pahlavi",
	"Parthian, Inscriptional":               "Inscriptional Parthian",
	"Optical Character Recognition (OCR)":   "Optical Character Recognition",
	"Super and Subscripts":                  "Superscripts and Subscripts",
	"Miscellaneous Symbols And Pictographs": "Miscellaneous Symbols and Pictographs",
}

// chartIgnore lists labels of the charts index which do not denote blocks.
var chartIgnore = map[string]bool{
	"Armenian Ligatures":          true,
	"Basic Latin (ASCII)":         true,
	"Coptic in Greek block":       true,
	"(see also Unihan Database)":  true,
	"ASCII Punctuation":           true,
	"Latin-1 Punctuation":         true,
	"Roman Symbols":               true,
	"Additional Squared Symbols":  true,
	"ASCII Digits":                true,
	"Fullwidth ASCII Digits":      true,
	"Additional Shapes":           true,
	"(see also specific scripts)": true,
	"Dollar Sign, Euro Sign":      true,
	"Yen, Pound and Cent":         true,
	"Fullwidth Currency Symbols":  true,
	"Rial Sign":                   true,
	"Chess, Checkers/Draughts":    true,
	"Basic operators: Plus, Factorial, Division, Multiplication": true,
	"Yijing Mono-, Di- and Trigrams":                             true,
}

// ParseChartsIndex scrapes the scripts and the symbols taxonomies from a
// saved copy of the Unicode charts index page.
func ParseChartsIndex(r io.Reader) (scripts, symbols *Taxonomy, err error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("charts index: %w", err)
	}
	scripts = &Taxonomy{Title: "Scripts", Subject: "Unicode scripts"}
	if scripts.Groups, err = TableGroups(doc, ScriptsTableID); err != nil {
		return nil, nil, err
	}
	symbols = &Taxonomy{Title: "Symbols and Punctuation", Subject: "Unicode symbols and punctuation"}
	if symbols.Groups, err = TableGroups(doc, SymbolsTableID); err != nil {
		return nil, nil, err
	}
	return scripts, symbols, nil
}

// TableGroups extracts the groups of one table of the charts index.
// Paragraphs of the table carry their role as CSS class:
//
//	sg   starts a group
//	mb   a block with parts following
//	pb   a part of the preceding mb block
//	sb   a block without parts
func TableGroups(doc *html.Node, tableID string) ([]Group, error) {
	tableSel, err := cascadia.Compile("table#" + tableID)
	if err != nil {
		return nil, fmt.Errorf("charts index: %w", err)
	}
	table := tableSel.MatchFirst(doc)
	if table == nil {
		return nil, &Error{Taxonomy: tableID, Issue: "table not found in charts index"}
	}
	var (
		groups []Group
		group  *Group
		main   *Entry
	)
	flushMain := func() {
		if main != nil && group != nil {
			group.Entries = append(group.Entries, *main)
		}
		main = nil
	}
	flushGroup := func() {
		flushMain()
		if group != nil {
			groups = append(groups, *group)
		}
		group = nil
	}
	for _, p := range cascadia.MustCompile("p").MatchAll(table) {
		label := strings.TrimSpace(strings.ReplaceAll(text(p), "\u00a0", " "))
		if chartIgnore[label] {
			continue
		}
		if fixed, ok := chartFixes[label]; ok {
			label = fixed
		}
		switch firstClass(p) {
		case "sg":
			flushGroup()
			group = &Group{Name: label}
		case "mb":
			flushMain()
			main = &Entry{Block: label}
		case "pb":
			if main == nil {
				tracer().Debugf("charts index: part %q without main block", label)
				continue
			}
			main.SubBlocks = append(main.SubBlocks, label)
		case "sb":
			flushMain()
			if group == nil {
				tracer().Debugf("charts index: block %q outside of group", label)
				continue
			}
			group.Entries = append(group.Entries, Entry{Block: label})
		}
	}
	flushGroup()
	tracer().Infof("charts index %s: %d groups", tableID, len(groups))
	return groups, nil
}

func text(node *html.Node) string {
	var b bytes.Buffer
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else if c.Type == html.ElementNode {
			b.WriteString(text(c))
		}
	}
	return b.String()
}

func firstClass(node *html.Node) string {
	for _, a := range node.Attr {
		if a.Key == "class" {
			if fields := strings.Fields(a.Val); len(fields) > 0 {
				return fields[0]
			}
		}
	}
	return ""
}
