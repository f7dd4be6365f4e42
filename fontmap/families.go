package fontmap

import "github.com/go-text/typesetting/language"

// notoSerif lists the families xml2rfc bundles. An empty family marks a
// script for which no serif family is available.
var notoSerif = map[language.Script]string{
	language.Common:    "Noto Serif",
	language.Inherited: "Noto Serif",
	language.Latin:     "Noto Serif",
	language.Greek:     "Noto Serif",
	language.Cyrillic:  "Noto Serif",
	//
	language.Han:                  "Noto Serif CJK SC",
	language.Hiragana:             "Noto Serif CJK JP",
	language.Katakana:             "Noto Serif CJK JP",
	language.Katakana_Or_Hiragana: "Noto Serif CJK JP",
	language.Hangul:               "Noto Serif CJK KR",
	language.Bopomofo:             "Noto Serif CJK TC",
	//
	language.Arabic:  "Noto Naskh Arabic",
	language.Hebrew:  "Noto Serif Hebrew",
	language.Syriac:  "Noto Sans Syriac",
	language.Thaana:  "Noto Sans Thaana",
	language.Nko:     "Noto Sans NKo",
	language.Mandaic: "Noto Sans Mandaic",
	//
	language.Devanagari: "Noto Serif Devanagari",
	language.Bengali:    "Noto Serif Bengali",
	language.Gurmukhi:   "Noto Serif Gurmukhi",
	language.Gujarati:   "Noto Serif Gujarati",
	language.Oriya:      "Noto Serif Oriya",
	language.Tamil:      "Noto Serif Tamil",
	language.Telugu:     "Noto Serif Telugu",
	language.Kannada:    "Noto Serif Kannada",
	language.Malayalam:  "Noto Serif Malayalam",
	language.Sinhala:    "Noto Serif Sinhala",
	language.Thai:       "Noto Serif Thai",
	language.Lao:        "Noto Serif Lao",
	language.Tibetan:    "Noto Serif Tibetan",
	language.Myanmar:    "Noto Serif Myanmar",
	language.Khmer:      "Noto Serif Khmer",
	language.Georgian:   "Noto Serif Georgian",
	language.Armenian:   "Noto Serif Armenian",
	language.Ethiopic:   "Noto Serif Ethiopic",
	//
	language.Braille:     "Noto Sans Symbols 2",
	language.SignWriting: "Noto Sans SignWriting",
	language.Blissymbols: "",
}
