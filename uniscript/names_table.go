package uniscript

import "github.com/go-text/typesetting/language"

// scriptNames maps ISO 15924 tags to the long property value names of the
// Unicode Character Database (PropertyValueAliases.txt, property sc).
var scriptNames = map[language.Script]string{
	language.Adlam:                        "Adlam",
	language.Afaka:                        "Afaka",
	language.Ahom:                         "Ahom",
	language.Anatolian_Hieroglyphs:        "Anatolian_Hieroglyphs",
	language.Arabic:                       "Arabic",
	language.Armenian:                     "Armenian",
	language.Avestan:                      "Avestan",
	language.Balinese:                     "Balinese",
	language.Bamum:                        "Bamum",
	language.Bassa_Vah:                    "Bassa_Vah",
	language.Batak:                        "Batak",
	language.Bengali:                      "Bengali",
	language.Bhaiksuki:                    "Bhaiksuki",
	language.Blissymbols:                  "Blissymbols",
	language.Book_Pahlavi:                 "Book_Pahlavi",
	language.Bopomofo:                     "Bopomofo",
	language.Brahmi:                       "Brahmi",
	language.Braille:                      "Braille",
	language.Buginese:                     "Buginese",
	language.Buhid:                        "Buhid",
	language.Canadian_Aboriginal:          "Canadian_Aboriginal",
	language.Carian:                       "Carian",
	language.Caucasian_Albanian:           "Caucasian_Albanian",
	language.Chakma:                       "Chakma",
	language.Cham:                         "Cham",
	language.Cherokee:                     "Cherokee",
	language.Chorasmian:                   "Chorasmian",
	language.Cirth:                        "Cirth",
	language.Code_for_unwritten_documents: "Code_for_unwritten_documents",
	language.Common:                       "Common",
	language.Coptic:                       "Coptic",
	language.Cuneiform:                    "Cuneiform",
	language.Cypriot:                      "Cypriot",
	language.Cypro_Minoan:                 "Cypro_Minoan",
	language.Cyrillic:                     "Cyrillic",
	language.Deseret:                      "Deseret",
	language.Devanagari:                   "Devanagari",
	language.Dives_Akuru:                  "Dives_Akuru",
	language.Dogra:                        "Dogra",
	language.Duployan:                     "Duployan",
	language.Egyptian_Hieroglyphs:         "Egyptian_Hieroglyphs",
	language.Egyptian_demotic:             "Egyptian_demotic",
	language.Egyptian_hieratic:            "Egyptian_hieratic",
	language.Elbasan:                      "Elbasan",
	language.Elymaic:                      "Elymaic",
	language.Ethiopic:                     "Ethiopic",
	language.Georgian:                     "Georgian",
	language.Glagolitic:                   "Glagolitic",
	language.Gothic:                       "Gothic",
	language.Grantha:                      "Grantha",
	language.Greek:                        "Greek",
	language.Gujarati:                     "Gujarati",
	language.Gunjala_Gondi:                "Gunjala_Gondi",
	language.Gurmukhi:                     "Gurmukhi",
	language.Han:                          "Han",
	language.Hangul:                       "Hangul",
	language.Hanifi_Rohingya:              "Hanifi_Rohingya",
	language.Hanunoo:                      "Hanunoo",
	language.Hatran:                       "Hatran",
	language.Hebrew:                       "Hebrew",
	language.Hiragana:                     "Hiragana",
	language.Imperial_Aramaic:             "Imperial_Aramaic",
	language.Inherited:                    "Inherited",
	language.Inscriptional_Pahlavi:        "Inscriptional_Pahlavi",
	language.Inscriptional_Parthian:       "Inscriptional_Parthian",
	language.Javanese:                     "Javanese",
	language.Jurchen:                      "Jurchen",
	language.Kaithi:                       "Kaithi",
	language.Kannada:                      "Kannada",
	language.Katakana:                     "Katakana",
	language.Katakana_Or_Hiragana:         "Katakana_Or_Hiragana",
	language.Kawi:                         "Kawi",
	language.Kayah_Li:                     "Kayah_Li",
	language.Kharoshthi:                   "Kharoshthi",
	language.Khitan_Small_Script:          "Khitan_Small_Script",
	language.Khitan_large_script:          "Khitan_large_script",
	language.Khmer:                        "Khmer",
	language.Khojki:                       "Khojki",
	language.Khudawadi:                    "Khudawadi",
	language.Kpelle:                       "Kpelle",
	language.Lao:                          "Lao",
	language.Latin:                        "Latin",
	language.Leke:                         "Leke",
	language.Lepcha:                       "Lepcha",
	language.Limbu:                        "Limbu",
	language.Linear_A:                     "Linear_A",
	language.Linear_B:                     "Linear_B",
	language.Lisu:                         "Lisu",
	language.Loma:                         "Loma",
	language.Lycian:                       "Lycian",
	language.Lydian:                       "Lydian",
	language.Mahajani:                     "Mahajani",
	language.Makasar:                      "Makasar",
	language.Malayalam:                    "Malayalam",
	language.Mandaic:                      "Mandaic",
	language.Manichaean:                   "Manichaean",
	language.Marchen:                      "Marchen",
	language.Masaram_Gondi:                "Masaram_Gondi",
	language.Mathematical_notation:        "Mathematical_notation",
	language.Mayan_hieroglyphs:            "Mayan_hieroglyphs",
	language.Medefaidrin:                  "Medefaidrin",
	language.Meetei_Mayek:                 "Meetei_Mayek",
	language.Mende_Kikakui:                "Mende_Kikakui",
	language.Meroitic_Cursive:             "Meroitic_Cursive",
	language.Meroitic_Hieroglyphs:         "Meroitic_Hieroglyphs",
	language.Miao:                         "Miao",
	language.Modi:                         "Modi",
	language.Mongolian:                    "Mongolian",
	language.Mro:                          "Mro",
	language.Multani:                      "Multani",
	language.Myanmar:                      "Myanmar",
	language.Nabataean:                    "Nabataean",
	language.Nag_Mundari:                  "Nag_Mundari",
	language.Nandinagari:                  "Nandinagari",
	language.New_Tai_Lue:                  "New_Tai_Lue",
	language.Newa:                         "Newa",
	language.Nko:                          "Nko",
	language.Nushu:                        "Nushu",
	language.Nyiakeng_Puachue_Hmong:       "Nyiakeng_Puachue_Hmong",
	language.Ogham:                        "Ogham",
	language.Ol_Chiki:                     "Ol_Chiki",
	language.Old_Hungarian:                "Old_Hungarian",
	language.Old_Italic:                   "Old_Italic",
	language.Old_North_Arabian:            "Old_North_Arabian",
	language.Old_Permic:                   "Old_Permic",
	language.Old_Persian:                  "Old_Persian",
	language.Old_Sogdian:                  "Old_Sogdian",
	language.Old_South_Arabian:            "Old_South_Arabian",
	language.Old_Turkic:                   "Old_Turkic",
	language.Old_Uyghur:                   "Old_Uyghur",
	language.Oriya:                        "Oriya",
	language.Osage:                        "Osage",
	language.Osmanya:                      "Osmanya",
	language.Pahawh_Hmong:                 "Pahawh_Hmong",
	language.Palmyrene:                    "Palmyrene",
	language.Pau_Cin_Hau:                  "Pau_Cin_Hau",
	language.Phags_Pa:                     "Phags_Pa",
	language.Phoenician:                   "Phoenician",
	language.Psalter_Pahlavi:              "Psalter_Pahlavi",
	language.Ranjana:                      "Ranjana",
	language.Rejang:                       "Rejang",
	language.Rongorongo:                   "Rongorongo",
	language.Runic:                        "Runic",
	language.Samaritan:                    "Samaritan",
	language.Sarati:                       "Sarati",
	language.Saurashtra:                   "Saurashtra",
	language.Sharada:                      "Sharada",
	language.Shavian:                      "Shavian",
	language.Shuishu:                      "Shuishu",
	language.Siddham:                      "Siddham",
	language.SignWriting:                  "SignWriting",
	language.Sinhala:                      "Sinhala",
	language.Sogdian:                      "Sogdian",
	language.Sora_Sompeng:                 "Sora_Sompeng",
	language.Soyombo:                      "Soyombo",
	language.Sundanese:                    "Sundanese",
	language.Sunuwar:                      "Sunuwar",
	language.Syloti_Nagri:                 "Syloti_Nagri",
	language.Symbols:                      "Symbols",
	language.Syriac:                       "Syriac",
	language.Tagalog:                      "Tagalog",
	language.Tagbanwa:                     "Tagbanwa",
	language.Tai_Le:                       "Tai_Le",
	language.Tai_Tham:                     "Tai_Tham",
	language.Tai_Viet:                     "Tai_Viet",
	language.Takri:                        "Takri",
	language.Tamil:                        "Tamil",
	language.Tangsa:                       "Tangsa",
	language.Tangut:                       "Tangut",
	language.Telugu:                       "Telugu",
	language.Tengwar:                      "Tengwar",
	language.Thaana:                       "Thaana",
	language.Thai:                         "Thai",
	language.Tibetan:                      "Tibetan",
	language.Tifinagh:                     "Tifinagh",
	language.Tirhuta:                      "Tirhuta",
	language.Toto:                         "Toto",
	language.Ugaritic:                     "Ugaritic",
	language.Unknown:                      "Unknown",
	language.Vai:                          "Vai",
	language.Visible_Speech:               "Visible_Speech",
	language.Vithkuqi:                     "Vithkuqi",
	language.Wancho:                       "Wancho",
	language.Warang_Citi:                  "Warang_Citi",
	language.Woleai:                       "Woleai",
	language.Yezidi:                       "Yezidi",
	language.Yi:                           "Yi",
	language.Zanabazar_Square:             "Zanabazar_Square",
}
