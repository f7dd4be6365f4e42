package taxonomy

// Groupings follow the layout of the Unicode 15.0 code charts index
// (https://www.unicode.org/charts/).

var scriptGroups = []Group{
	{Name: "European Scripts", Entries: []Entry{
		{Block: "Armenian"},
		{Block: "Carian"},
		{Block: "Caucasian Albanian"},
		{Block: "Cypriot Syllabary"},
		{Block: "Cypro-Minoan"},
		{Block: "Cyrillic"},
		{Block: "Cyrillic Supplement"},
		{Block: "Cyrillic Extended-A"},
		{Block: "Cyrillic Extended-B"},
		{Block: "Cyrillic Extended-C"},
		{Block: "Cyrillic Extended-D"},
		{Block: "Elbasan"},
		{Block: "Georgian"},
		{Block: "Georgian Extended"},
		{Block: "Georgian Supplement"},
		{Block: "Glagolitic"},
		{Block: "Glagolitic Supplement"},
		{Block: "Gothic"},
		{Block: "Greek and Coptic"},
		{Block: "Greek Extended"},
		{Block: "Ancient Greek Numbers"},
		{Block: "Basic Latin"},
		{Block: "Latin-1 Supplement"},
		{Block: "Latin Extended-A"},
		{Block: "Latin Extended-B"},
		{Block: "Latin Extended-C"},
		{Block: "Latin Extended-D"},
		{Block: "Latin Extended-E"},
		{Block: "Latin Extended-F"},
		{Block: "Latin Extended-G"},
		{Block: "Latin Extended Additional"},
		{Block: "IPA Extensions"},
		{Block: "Phonetic Extensions"},
		{Block: "Phonetic Extensions Supplement"},
		{Block: "Linear A"},
		{Block: "Linear B"},
		{Block: "Linear B Syllabary"},
		{Block: "Linear B Ideograms"},
		{Block: "Aegean Numbers"},
		{Block: "Lycian"},
		{Block: "Lydian"},
		{Block: "Ogham"},
		{Block: "Old Hungarian"},
		{Block: "Old Italic"},
		{Block: "Old Permic"},
		{Block: "Phaistos Disc"},
		{Block: "Runic"},
		{Block: "Shavian"},
		{Block: "Vithkuqi"},
	}},
	{Name: "Modifier Letters", Entries: []Entry{
		{Block: "Modifier Tone Letters"},
		{Block: "Spacing Modifier Letters"},
		{Block: "Superscripts and Subscripts"},
	}},
	{Name: "Combining Marks", Entries: []Entry{
		{Block: "Combining Diacritical Marks"},
		{Block: "Combining Diacritical Marks Extended"},
		{Block: "Combining Diacritical Marks Supplement"},
		{Block: "Combining Diacritical Marks for Symbols"},
		{Block: "Combining Half Marks"},
	}},
	{Name: "Miscellaneous", Entries: []Entry{
		{Block: "Alphabetic Presentation Forms"},
		{Block: "Halfwidth and Fullwidth Forms"},
	}},
	{Name: "African Scripts", Entries: []Entry{
		{Block: "Adlam"},
		{Block: "Bamum"},
		{Block: "Bamum Supplement"},
		{Block: "Bassa Vah"},
		{Block: "Coptic"},
		{Block: "Coptic Epact Numbers"},
		{Block: "Egyptian Hieroglyphs"},
		{Block: "Egyptian Hieroglyph Format Controls"},
		{Block: "Ethiopic"},
		{Block: "Ethiopic Supplement"},
		{Block: "Ethiopic Extended"},
		{Block: "Ethiopic Extended-A"},
		{Block: "Ethiopic Extended-B"},
		{Block: "Medefaidrin"},
		{Block: "Mende Kikakui"},
		{Block: "Meroitic"},
		{Block: "Meroitic Cursive"},
		{Block: "Meroitic Hieroglyphs"},
		{Block: "NKo"},
		{Block: "Osmanya"},
		{Block: "Tifinagh"},
		{Block: "Vai"},
	}},
	{Name: "Middle Eastern Scripts", Entries: []Entry{
		{Block: "Anatolian Hieroglyphs"},
		{Block: "Arabic"},
		{Block: "Arabic Supplement"},
		{Block: "Arabic Extended-A"},
		{Block: "Arabic Extended-B"},
		{Block: "Arabic Extended-C"},
		{Block: "Arabic Presentation Forms-A"},
		{Block: "Arabic Presentation Forms-B"},
		{Block: "Imperial Aramaic"},
		{Block: "Avestan"},
		{Block: "Chorasmian"},
		{Block: "Cuneiform"},
		{Block: "Cuneiform Numbers and Punctuation"},
		{Block: "Early Dynastic Cuneiform"},
		{Block: "Old Persian"},
		{Block: "Ugaritic"},
		{Block: "Elymaic"},
		{Block: "Hatran"},
		{Block: "Hebrew", SubBlocks: []string{"Hebrew Presentation Forms"}},
		{Block: "Mandaic"},
		{Block: "Nabataean"},
		{Block: "Old North Arabian"},
		{Block: "Old South Arabian"},
		{Block: "Inscriptional Pahlavi"},
		{Block: "Psalter Pahlavi"},
		{Block: "Palmyrene"},
		{Block: "Inscriptional Parthian"},
		{Block: "Phoenician"},
		{Block: "Samaritan"},
		{Block: "Syriac", SubBlocks: []string{"Syriac Supplement"}},
		{Block: "Yezidi"},
	}},
	{Name: "Central Asian Scripts", Entries: []Entry{
		{Block: "Manichaean"},
		{Block: "Marchen"},
		{Block: "Mongolian"},
		{Block: "Mongolian Supplement"},
		{Block: "Old Sogdian"},
		{Block: "Old Turkic"},
		{Block: "Old Uyghur"},
		{Block: "Phags-pa"},
		{Block: "Sogdian"},
		{Block: "Soyombo"},
		{Block: "Tibetan"},
		{Block: "Zanabazar Square"},
	}},
	{Name: "South Asian Scripts", Entries: []Entry{
		{Block: "Ahom"},
		{Block: "Bengali"},
		{Block: "Bhaiksuki"},
		{Block: "Brahmi"},
		{Block: "Chakma"},
		{Block: "Devanagari"},
		{Block: "Devanagari Extended"},
		{Block: "Devanagari Extended-A"},
		{Block: "Dives Akuru"},
		{Block: "Dogra"},
		{Block: "Grantha"},
		{Block: "Gujarati"},
		{Block: "Gunjala Gondi"},
		{Block: "Gurmukhi"},
		{Block: "Kaithi"},
		{Block: "Kannada"},
		{Block: "Kharoshthi"},
		{Block: "Khojki"},
		{Block: "Khudawadi"},
		{Block: "Lepcha"},
		{Block: "Limbu"},
		{Block: "Mahajani"},
		{Block: "Malayalam"},
		{Block: "Masaram Gondi"},
		{Block: "Meetei Mayek"},
		{Block: "Meetei Mayek Extensions"},
		{Block: "Modi"},
		{Block: "Mro"},
		{Block: "Multani"},
		{Block: "Nag Mundari"},
		{Block: "Nandinagari"},
		{Block: "Newa"},
		{Block: "Ol Chiki"},
		{Block: "Oriya"},
		{Block: "Saurashtra"},
		{Block: "Sharada"},
		{Block: "Siddham"},
		{Block: "Sinhala"},
		{Block: "Sinhala Archaic Numbers"},
		{Block: "Sora Sompeng"},
		{Block: "Syloti Nagri"},
		{Block: "Takri"},
		{Block: "Tamil"},
		{Block: "Tamil Supplement"},
		{Block: "Telugu"},
		{Block: "Thaana"},
		{Block: "Tirhuta"},
		{Block: "Toto"},
		{Block: "Vedic Extensions"},
		{Block: "Wancho"},
		{Block: "Warang Citi"},
	}},
	{Name: "Southeast Asian Scripts", Entries: []Entry{
		{Block: "Cham"},
		{Block: "Hanifi Rohingya"},
		{Block: "Kayah Li"},
		{Block: "Khmer"},
		{Block: "Khmer Symbols"},
		{Block: "Lao"},
		{Block: "Myanmar"},
		{Block: "Myanmar Extended-A"},
		{Block: "Myanmar Extended-B"},
		{Block: "New Tai Lue"},
		{Block: "Nyiakeng Puachue Hmong"},
		{Block: "Pahawh Hmong"},
		{Block: "Pau Cin Hau"},
		{Block: "Tai Le"},
		{Block: "Tai Tham"},
		{Block: "Tai Viet"},
		{Block: "Tangsa"},
		{Block: "Thai"},
	}},
	{Name: "Indonesian & Philippine Scripts", Entries: []Entry{
		{Block: "Balinese"},
		{Block: "Batak"},
		{Block: "Buginese"},
		{Block: "Buhid"},
		{Block: "Hanunoo"},
		{Block: "Javanese"},
		{Block: "Kawi"},
		{Block: "Makasar"},
		{Block: "Rejang"},
		{Block: "Sundanese"},
		{Block: "Sundanese Supplement"},
		{Block: "Tagalog"},
		{Block: "Tagbanwa"},
	}},
	{Name: "East Asian Scripts", Entries: []Entry{
		{Block: "Bopomofo"},
		{Block: "Bopomofo Extended"},
		{Block: "CJK Unified Ideographs"},
		{Block: "CJK Unified Ideographs Extension A"},
		{Block: "CJK Unified Ideographs Extension B"},
		{Block: "CJK Unified Ideographs Extension C"},
		{Block: "CJK Unified Ideographs Extension D"},
		{Block: "CJK Unified Ideographs Extension E"},
		{Block: "CJK Unified Ideographs Extension F"},
		{Block: "CJK Unified Ideographs Extension G"},
		{Block: "CJK Unified Ideographs Extension H"},
		{Block: "CJK Compatibility Ideographs"},
		{Block: "CJK Compatibility Ideographs Supplement"},
		{Block: "Kangxi Radicals"},
		{Block: "CJK Radicals Supplement"},
		{Block: "CJK Strokes"},
		{Block: "Ideographic Description Characters"},
		{Block: "Hangul Jamo"},
		{Block: "Hangul Jamo Extended-A"},
		{Block: "Hangul Jamo Extended-B"},
		{Block: "Hangul Compatibility Jamo"},
		{Block: "Hangul Syllables"},
		{Block: "Hiragana"},
		{Block: "Kana Extended-A"},
		{Block: "Kana Extended-B"},
		{Block: "Kana Supplement"},
		{Block: "Small Kana Extension"},
		{Block: "Kanbun"},
		{Block: "Katakana"},
		{Block: "Katakana Phonetic Extensions"},
		{Block: "Khitan Small Script"},
		{Block: "Lisu"},
		{Block: "Lisu Supplement"},
		{Block: "Miao"},
		{Block: "Nushu"},
		{Block: "Tangut"},
		{Block: "Tangut Components"},
		{Block: "Tangut Supplement"},
		{Block: "Yi"},
		{Block: "Yi Syllables"},
		{Block: "Yi Radicals"},
	}},
}

var symbolGroups = []Group{
	{Name: "Notational Systems", Entries: []Entry{
		{Block: "Braille Patterns"},
		{Block: "Musical Symbols"},
		{Block: "Ancient Greek Musical Notation"},
		{Block: "Byzantine Musical Symbols"},
		{Block: "Znamenny Musical Notation"},
		{Block: "Duployan"},
		{Block: "Shorthand Format Controls"},
		{Block: "Sutton SignWriting"},
	}},
	{Name: "Punctuation", Entries: []Entry{
		{Block: "General Punctuation"},
		{Block: "Supplemental Punctuation"},
		{Block: "CJK Symbols and Punctuation"},
		{Block: "Ideographic Symbols and Punctuation"},
		{Block: "CJK Compatibility Forms"},
		{Block: "Halfwidth and Fullwidth Forms"},
		{Block: "Small Form Variants"},
		{Block: "Vertical Forms"},
	}},
	{Name: "Alphanumeric Symbols", Entries: []Entry{
		{Block: "Letterlike Symbols"},
		{Block: "Mathematical Alphanumeric Symbols"},
		{Block: "Arabic Mathematical Alphabetic Symbols"},
		{Block: "Enclosed Alphanumerics"},
		{Block: "Enclosed Alphanumeric Supplement"},
		{Block: "Enclosed CJK Letters and Months"},
		{Block: "Enclosed Ideographic Supplement"},
		{Block: "CJK Compatibility"},
	}},
	{Name: "Technical Symbols", Entries: []Entry{
		{Block: "Control Pictures"},
		{Block: "Miscellaneous Technical"},
		{Block: "Optical Character Recognition"},
	}},
	{Name: "Numbers & Digits", Entries: []Entry{
		{Block: "Common Indic Number Forms"},
		{Block: "Coptic Epact Numbers"},
		{Block: "Counting Rod Numerals"},
		{Block: "Cuneiform Numbers and Punctuation"},
		{Block: "Indic Siyaq Numbers"},
		{Block: "Kaktovik Numerals"},
		{Block: "Mayan Numerals"},
		{Block: "Number Forms"},
		{Block: "Ottoman Siyaq Numbers"},
		{Block: "Rumi Numeral Symbols"},
		{Block: "Sinhala Archaic Numbers"},
		{Block: "Superscripts and Subscripts"},
	}},
	{Name: "Mathematical Symbols", Entries: []Entry{
		{Block: "Arrows"},
		{Block: "Supplemental Arrows-A"},
		{Block: "Supplemental Arrows-B"},
		{Block: "Supplemental Arrows-C"},
		{Block: "Miscellaneous Symbols and Arrows"},
		{Block: "Mathematical Alphanumeric Symbols"},
		{Block: "Arabic Mathematical Alphabetic Symbols"},
		{Block: "Letterlike Symbols"},
		{Block: "Mathematical Operators"},
		{Block: "Supplemental Mathematical Operators"},
		{Block: "Miscellaneous Mathematical Symbols-A"},
		{Block: "Miscellaneous Mathematical Symbols-B"},
		{Block: "Geometric Shapes"},
		{Block: "Box Drawing"},
		{Block: "Block Elements"},
		{Block: "Geometric Shapes Extended"},
	}},
	{Name: "Emoji & Pictographs", Entries: []Entry{
		{Block: "Dingbats"},
		{Block: "Ornamental Dingbats"},
		{Block: "Emoticons"},
		{Block: "Miscellaneous Symbols"},
		{Block: "Miscellaneous Symbols and Pictographs"},
		{Block: "Supplemental Symbols and Pictographs"},
		{Block: "Symbols and Pictographs Extended-A"},
		{Block: "Transport and Map Symbols"},
	}},
	{Name: "Other Symbols", Entries: []Entry{
		{Block: "Alchemical Symbols"},
		{Block: "Ancient Symbols"},
		{Block: "Currency Symbols"},
		{Block: "Game Symbols"},
		{Block: "Chess Symbols"},
		{Block: "Domino Tiles"},
		{Block: "Mahjong Tiles"},
		{Block: "Playing Cards"},
		{Block: "Miscellaneous Symbols and Arrows"},
		{Block: "Symbols for Legacy Computing"},
		{Block: "Yijing Symbols"},
		{Block: "Yijing Hexagram Symbols"},
		{Block: "Tai Xuan Jing Symbols"},
	}},
	{Name: "Specials", Entries: []Entry{
		{Block: "Specials"},
		{Block: "Tags"},
		{Block: "Variation Selectors"},
		{Block: "Variation Selectors Supplement"},
	}},
	{Name: "Private Use", Entries: []Entry{
		{Block: "Private Use Area"},
		{Block: "Supplementary Private Use Area-A"},
		{Block: "Supplementary Private Use Area-B"},
	}},
	{Name: "Surrogates", Entries: []Entry{
		{Block: "High Surrogates"},
		{Block: "Low Surrogates"},
	}},
}
