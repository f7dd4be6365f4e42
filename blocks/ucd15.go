package blocks

// Blocks of Unicode 15.0.0, taken from Blocks-15.0.0.txt.
var ucd15 = []Block{
	{Name: "Basic Latin", Start: 0x0000, End: 0x007F},
	{Name: "Latin-1 Supplement", Start: 0x0080, End: 0x00FF},
	{Name: "Latin Extended-A", Start: 0x0100, End: 0x017F},
	{Name: "Latin Extended-B", Start: 0x0180, End: 0x024F},
	{Name: "IPA Extensions", Start: 0x0250, End: 0x02AF},
	{Name: "Spacing Modifier Letters", Start: 0x02B0, End: 0x02FF},
	{Name: "Combining Diacritical Marks", Start: 0x0300, End: 0x036F},
	{Name: "Greek and Coptic", Start: 0x0370, End: 0x03FF},
	{Name: "Cyrillic", Start: 0x0400, End: 0x04FF},
	{Name: "Cyrillic Supplement", Start: 0x0500, End: 0x052F},
	{Name: "Armenian", Start: 0x0530, End: 0x058F},
	{Name: "Hebrew", Start: 0x0590, End: 0x05FF},
	{Name: "Arabic", Start: 0x0600, End: 0x06FF},
	{Name: "Syriac", Start: 0x0700, End: 0x074F},
	{Name: "Arabic Supplement", Start: 0x0750, End: 0x077F},
	{Name: "Thaana", Start: 0x0780, End: 0x07BF},
	{Name: "NKo", Start: 0x07C0, End: 0x07FF},
	{Name: "Samaritan", Start: 0x0800, End: 0x083F},
	{Name: "Mandaic", Start: 0x0840, End: 0x085F},
	{Name: "Syriac Supplement", Start: 0x0860, End: 0x086F},
	{Name: "Arabic Extended-B", Start: 0x0870, End: 0x089F},
	{Name: "Arabic Extended-A", Start: 0x08A0, End: 0x08FF},
	{Name: "Devanagari", Start: 0x0900, End: 0x097F},
	{Name: "Bengali", Start: 0x0980, End: 0x09FF},
	{Name: "Gurmukhi", Start: 0x0A00, End: 0x0A7F},
	{Name: "Gujarati", Start: 0x0A80, End: 0x0AFF},
	{Name: "Oriya", Start: 0x0B00, End: 0x0B7F},
	{Name: "Tamil", Start: 0x0B80, End: 0x0BFF},
	{Name: "Telugu", Start: 0x0C00, End: 0x0C7F},
	{Name: "Kannada", Start: 0x0C80, End: 0x0CFF},
	{Name: "Malayalam", Start: 0x0D00, End: 0x0D7F},
	{Name: "Sinhala", Start: 0x0D80, End: 0x0DFF},
	{Name: "Thai", Start: 0x0E00, End: 0x0E7F},
	{Name: "Lao", Start: 0x0E80, End: 0x0EFF},
	{Name: "Tibetan", Start: 0x0F00, End: 0x0FFF},
	{Name: "Myanmar", Start: 0x1000, End: 0x109F},
	{Name: "Georgian", Start: 0x10A0, End: 0x10FF},
	{Name: "Hangul Jamo", Start: 0x1100, End: 0x11FF},
	{Name: "Ethiopic", Start: 0x1200, End: 0x137F},
	{Name: "Ethiopic Supplement", Start: 0x1380, End: 0x139F},
	{Name: "Cherokee", Start: 0x13A0, End: 0x13FF},
	{Name: "Unified Canadian Aboriginal Syllabics", Start: 0x1400, End: 0x167F},
	{Name: "Ogham", Start: 0x1680, End: 0x169F},
	{Name: "Runic", Start: 0x16A0, End: 0x16FF},
	{Name: "Tagalog", Start: 0x1700, End: 0x171F},
	{Name: "Hanunoo", Start: 0x1720, End: 0x173F},
	{Name: "Buhid", Start: 0x1740, End: 0x175F},
	{Name: "Tagbanwa", Start: 0x1760, End: 0x177F},
	{Name: "Khmer", Start: 0x1780, End: 0x17FF},
	{Name: "Mongolian", Start: 0x1800, End: 0x18AF},
	{Name: "Unified Canadian Aboriginal Syllabics Extended", Start: 0x18B0, End: 0x18FF},
	{Name: "Limbu", Start: 0x1900, End: 0x194F},
	{Name: "Tai Le", Start: 0x1950, End: 0x197F},
	{Name: "New Tai Lue", Start: 0x1980, End: 0x19DF},
	{Name: "Khmer Symbols", Start: 0x19E0, End: 0x19FF},
	{Name: "Buginese", Start: 0x1A00, End: 0x1A1F},
	{Name: "Tai Tham", Start: 0x1A20, End: 0x1AAF},
	{Name: "Combining Diacritical Marks Extended", Start: 0x1AB0, End: 0x1AFF},
	{Name: "Balinese", Start: 0x1B00, End: 0x1B7F},
	{Name: "Sundanese", Start: 0x1B80, End: 0x1BBF},
	{Name: "Batak", Start: 0x1BC0, End: 0x1BFF},
	{Name: "Lepcha", Start: 0x1C00, End: 0x1C4F},
	{Name: "Ol Chiki", Start: 0x1C50, End: 0x1C7F},
	{Name: "Cyrillic Extended-C", Start: 0x1C80, End: 0x1C8F},
	{Name: "Georgian Extended", Start: 0x1C90, End: 0x1CBF},
	{Name: "Sundanese Supplement", Start: 0x1CC0, End: 0x1CCF},
	{Name: "Vedic Extensions", Start: 0x1CD0, End: 0x1CFF},
	{Name: "Phonetic Extensions", Start: 0x1D00, End: 0x1D7F},
	{Name: "Phonetic Extensions Supplement", Start: 0x1D80, End: 0x1DBF},
	{Name: "Combining Diacritical Marks Supplement", Start: 0x1DC0, End: 0x1DFF},
	{Name: "Latin Extended Additional", Start: 0x1E00, End: 0x1EFF},
	{Name: "Greek Extended", Start: 0x1F00, End: 0x1FFF},
	{Name: "General Punctuation", Start: 0x2000, End: 0x206F},
	{Name: "Superscripts and Subscripts", Start: 0x2070, End: 0x209F},
	{Name: "Currency Symbols", Start: 0x20A0, End: 0x20CF},
	{Name: "Combining Diacritical Marks for Symbols", Start: 0x20D0, End: 0x20FF},
	{Name: "Letterlike Symbols", Start: 0x2100, End: 0x214F},
	{Name: "Number Forms", Start: 0x2150, End: 0x218F},
	{Name: "Arrows", Start: 0x2190, End: 0x21FF},
	{Name: "Mathematical Operators", Start: 0x2200, End: 0x22FF},
	{Name: "Miscellaneous Technical", Start: 0x2300, End: 0x23FF},
	{Name: "Control Pictures", Start: 0x2400, End: 0x243F},
	{Name: "Optical Character Recognition", Start: 0x2440, End: 0x245F},
	{Name: "Enclosed Alphanumerics", Start: 0x2460, End: 0x24FF},
	{Name: "Box Drawing", Start: 0x2500, End: 0x257F},
	{Name: "Block Elements", Start: 0x2580, End: 0x259F},
	{Name: "Geometric Shapes", Start: 0x25A0, End: 0x25FF},
	{Name: "Miscellaneous Symbols", Start: 0x2600, End: 0x26FF},
	{Name: "Dingbats", Start: 0x2700, End: 0x27BF},
	{Name: "Miscellaneous Mathematical Symbols-A", Start: 0x27C0, End: 0x27EF},
	{Name: "Supplemental Arrows-A", Start: 0x27F0, End: 0x27FF},
	{Name: "Braille Patterns", Start: 0x2800, End: 0x28FF},
	{Name: "Supplemental Arrows-B", Start: 0x2900, End: 0x297F},
	{Name: "Miscellaneous Mathematical Symbols-B", Start: 0x2980, End: 0x29FF},
	{Name: "Supplemental Mathematical Operators", Start: 0x2A00, End: 0x2AFF},
	{Name: "Miscellaneous Symbols and Arrows", Start: 0x2B00, End: 0x2BFF},
	{Name: "Glagolitic", Start: 0x2C00, End: 0x2C5F},
	{Name: "Latin Extended-C", Start: 0x2C60, End: 0x2C7F},
	{Name: "Coptic", Start: 0x2C80, End: 0x2CFF},
	{Name: "Georgian Supplement", Start: 0x2D00, End: 0x2D2F},
	{Name: "Tifinagh", Start: 0x2D30, End: 0x2D7F},
	{Name: "Ethiopic Extended", Start: 0x2D80, End: 0x2DDF},
	{Name: "Cyrillic Extended-A", Start: 0x2DE0, End: 0x2DFF},
	{Name: "Supplemental Punctuation", Start: 0x2E00, End: 0x2E7F},
	{Name: "CJK Radicals Supplement", Start: 0x2E80, End: 0x2EFF},
	{Name: "Kangxi Radicals", Start: 0x2F00, End: 0x2FDF},
	{Name: "Ideographic Description Characters", Start: 0x2FF0, End: 0x2FFF},
	{Name: "CJK Symbols and Punctuation", Start: 0x3000, End: 0x303F},
	{Name: "Hiragana", Start: 0x3040, End: 0x309F},
	{Name: "Katakana", Start: 0x30A0, End: 0x30FF},
	{Name: "Bopomofo", Start: 0x3100, End: 0x312F},
	{Name: "Hangul Compatibility Jamo", Start: 0x3130, End: 0x318F},
	{Name: "Kanbun", Start: 0x3190, End: 0x319F},
	{Name: "Bopomofo Extended", Start: 0x31A0, End: 0x31BF},
	{Name: "CJK Strokes", Start: 0x31C0, End: 0x31EF},
	{Name: "Katakana Phonetic Extensions", Start: 0x31F0, End: 0x31FF},
	{Name: "Enclosed CJK Letters and Months", Start: 0x3200, End: 0x32FF},
	{Name: "CJK Compatibility", Start: 0x3300, End: 0x33FF},
	{Name: "CJK Unified Ideographs Extension A", Start: 0x3400, End: 0x4DBF},
	{Name: "Yijing Hexagram Symbols", Start: 0x4DC0, End: 0x4DFF},
	{Name: "CJK Unified Ideographs", Start: 0x4E00, End: 0x9FFF},
	{Name: "Yi Syllables", Start: 0xA000, End: 0xA48F},
	{Name: "Yi Radicals", Start: 0xA490, End: 0xA4CF},
	{Name: "Lisu", Start: 0xA4D0, End: 0xA4FF},
	{Name: "Vai", Start: 0xA500, End: 0xA63F},
	{Name: "Cyrillic Extended-B", Start: 0xA640, End: 0xA69F},
	{Name: "Bamum", Start: 0xA6A0, End: 0xA6FF},
	{Name: "Modifier Tone Letters", Start: 0xA700, End: 0xA71F},
	{Name: "Latin Extended-D", Start: 0xA720, End: 0xA7FF},
	{Name: "Syloti Nagri", Start: 0xA800, End: 0xA82F},
	{Name: "Common Indic Number Forms", Start: 0xA830, End: 0xA83F},
	{Name: "Phags-pa", Start: 0xA840, End: 0xA87F},
	{Name: "Saurashtra", Start: 0xA880, End: 0xA8DF},
	{Name: "Devanagari Extended", Start: 0xA8E0, End: 0xA8FF},
	{Name: "Kayah Li", Start: 0xA900, End: 0xA92F},
	{Name: "Rejang", Start: 0xA930, End: 0xA95F},
	{Name: "Hangul Jamo Extended-A", Start: 0xA960, End: 0xA97F},
	{Name: "Javanese", Start: 0xA980, End: 0xA9DF},
	{Name: "Myanmar Extended-B", Start: 0xA9E0, End: 0xA9FF},
	{Name: "Cham", Start: 0xAA00, End: 0xAA5F},
	{Name: "Myanmar Extended-A", Start: 0xAA60, End: 0xAA7F},
	{Name: "Tai Viet", Start: 0xAA80, End: 0xAADF},
	{Name: "Meetei Mayek Extensions", Start: 0xAAE0, End: 0xAAFF},
	{Name: "Ethiopic Extended-A", Start: 0xAB00, End: 0xAB2F},
	{Name: "Latin Extended-E", Start: 0xAB30, End: 0xAB6F},
	{Name: "Cherokee Supplement", Start: 0xAB70, End: 0xABBF},
	{Name: "Meetei Mayek", Start: 0xABC0, End: 0xABFF},
	{Name: "Hangul Syllables", Start: 0xAC00, End: 0xD7AF},
	{Name: "Hangul Jamo Extended-B", Start: 0xD7B0, End: 0xD7FF},
	{Name: "High Surrogates", Start: 0xD800, End: 0xDB7F},
	{Name: "High Private Use Surrogates", Start: 0xDB80, End: 0xDBFF},
	{Name: "Low Surrogates", Start: 0xDC00, End: 0xDFFF},
	{Name: "Private Use Area", Start: 0xE000, End: 0xF8FF},
	{Name: "CJK Compatibility Ideographs", Start: 0xF900, End: 0xFAFF},
	{Name: "Alphabetic Presentation Forms", Start: 0xFB00, End: 0xFB4F},
	{Name: "Arabic Presentation Forms-A", Start: 0xFB50, End: 0xFDFF},
	{Name: "Variation Selectors", Start: 0xFE00, End: 0xFE0F},
	{Name: "Vertical Forms", Start: 0xFE10, End: 0xFE1F},
	{Name: "Combining Half Marks", Start: 0xFE20, End: 0xFE2F},
	{Name: "CJK Compatibility Forms", Start: 0xFE30, End: 0xFE4F},
	{Name: "Small Form Variants", Start: 0xFE50, End: 0xFE6F},
	{Name: "Arabic Presentation Forms-B", Start: 0xFE70, End: 0xFEFF},
	{Name: "Halfwidth and Fullwidth Forms", Start: 0xFF00, End: 0xFFEF},
	{Name: "Specials", Start: 0xFFF0, End: 0xFFFF},
	{Name: "Linear B Syllabary", Start: 0x10000, End: 0x1007F},
	{Name: "Linear B Ideograms", Start: 0x10080, End: 0x100FF},
	{Name: "Aegean Numbers", Start: 0x10100, End: 0x1013F},
	{Name: "Ancient Greek Numbers", Start: 0x10140, End: 0x1018F},
	{Name: "Ancient Symbols", Start: 0x10190, End: 0x101CF},
	{Name: "Phaistos Disc", Start: 0x101D0, End: 0x101FF},
	{Name: "Lycian", Start: 0x10280, End: 0x1029F},
	{Name: "Carian", Start: 0x102A0, End: 0x102DF},
	{Name: "Coptic Epact Numbers", Start: 0x102E0, End: 0x102FF},
	{Name: "Old Italic", Start: 0x10300, End: 0x1032F},
	{Name: "Gothic", Start: 0x10330, End: 0x1034F},
	{Name: "Old Permic", Start: 0x10350, End: 0x1037F},
	{Name: "Ugaritic", Start: 0x10380, End: 0x1039F},
	{Name: "Old Persian", Start: 0x103A0, End: 0x103DF},
	{Name: "Deseret", Start: 0x10400, End: 0x1044F},
	{Name: "Shavian", Start: 0x10450, End: 0x1047F},
	{Name: "Osmanya", Start: 0x10480, End: 0x104AF},
	{Name: "Osage", Start: 0x104B0, End: 0x104FF},
	{Name: "Elbasan", Start: 0x10500, End: 0x1052F},
	{Name: "Caucasian Albanian", Start: 0x10530, End: 0x1056F},
	{Name: "Vithkuqi", Start: 0x10570, End: 0x105BF},
	{Name: "Linear A", Start: 0x10600, End: 0x1077F},
	{Name: "Latin Extended-F", Start: 0x10780, End: 0x107BF},
	{Name: "Cypriot Syllabary", Start: 0x10800, End: 0x1083F},
	{Name: "Imperial Aramaic", Start: 0x10840, End: 0x1085F},
	{Name: "Palmyrene", Start: 0x10860, End: 0x1087F},
	{Name: "Nabataean", Start: 0x10880, End: 0x108AF},
	{Name: "Hatran", Start: 0x108E0, End: 0x108FF},
	{Name: "Phoenician", Start: 0x10900, End: 0x1091F},
	{Name: "Lydian", Start: 0x10920, End: 0x1093F},
	{Name: "Meroitic Hieroglyphs", Start: 0x10980, End: 0x1099F},
	{Name: "Meroitic Cursive", Start: 0x109A0, End: 0x109FF},
	{Name: "Kharoshthi", Start: 0x10A00, End: 0x10A5F},
	{Name: "Old South Arabian", Start: 0x10A60, End: 0x10A7F},
	{Name: "Old North Arabian", Start: 0x10A80, End: 0x10A9F},
	{Name: "Manichaean", Start: 0x10AC0, End: 0x10AFF},
	{Name: "Avestan", Start: 0x10B00, End: 0x10B3F},
	{Name: "Inscriptional Parthian", Start: 0x10B40, End: 0x10B5F},
	{Name: "Inscriptional Pahlavi", Start: 0x10B60, End: 0x10B7F},
	{Name: "Psalter Pahlavi", Start: 0x10B80, End: 0x10BAF},
	{Name: "Old Turkic", Start: 0x10C00, End: 0x10C4F},
	{Name: "Old Hungarian", Start: 0x10C80, End: 0x10CFF},
	{Name: "Hanifi Rohingya", Start: 0x10D00, End: 0x10D3F},
	{Name: "Rumi Numeral Symbols", Start: 0x10E60, End: 0x10E7F},
	{Name: "Yezidi", Start: 0x10E80, End: 0x10EBF},
	{Name: "Arabic Extended-C", Start: 0x10EC0, End: 0x10EFF},
	{Name: "Old Sogdian", Start: 0x10F00, End: 0x10F2F},
	{Name: "Sogdian", Start: 0x10F30, End: 0x10F6F},
	{Name: "Old Uyghur", Start: 0x10F70, End: 0x10FAF},
	{Name: "Chorasmian", Start: 0x10FB0, End: 0x10FDF},
	{Name: "Elymaic", Start: 0x10FE0, End: 0x10FFF},
	{Name: "Brahmi", Start: 0x11000, End: 0x1107F},
	{Name: "Kaithi", Start: 0x11080, End: 0x110CF},
	{Name: "Sora Sompeng", Start: 0x110D0, End: 0x110FF},
	{Name: "Chakma", Start: 0x11100, End: 0x1114F},
	{Name: "Mahajani", Start: 0x11150, End: 0x1117F},
	{Name: "Sharada", Start: 0x11180, End: 0x111DF},
	{Name: "Sinhala Archaic Numbers", Start: 0x111E0, End: 0x111FF},
	{Name: "Khojki", Start: 0x11200, End: 0x1124F},
	{Name: "Multani", Start: 0x11280, End: 0x112AF},
	{Name: "Khudawadi", Start: 0x112B0, End: 0x112FF},
	{Name: "Grantha", Start: 0x11300, End: 0x1137F},
	{Name: "Newa", Start: 0x11400, End: 0x1147F},
	{Name: "Tirhuta", Start: 0x11480, End: 0x114DF},
	{Name: "Siddham", Start: 0x11580, End: 0x115FF},
	{Name: "Modi", Start: 0x11600, End: 0x1165F},
	{Name: "Mongolian Supplement", Start: 0x11660, End: 0x1167F},
	{Name: "Takri", Start: 0x11680, End: 0x116CF},
	{Name: "Ahom", Start: 0x11700, End: 0x1174F},
	{Name: "Dogra", Start: 0x11800, End: 0x1184F},
	{Name: "Warang Citi", Start: 0x118A0, End: 0x118FF},
	{Name: "Dives Akuru", Start: 0x11900, End: 0x1195F},
	{Name: "Nandinagari", Start: 0x119A0, End: 0x119FF},
	{Name: "Zanabazar Square", Start: 0x11A00, End: 0x11A4F},
	{Name: "Soyombo", Start: 0x11A50, End: 0x11AAF},
	{Name: "Unified Canadian Aboriginal Syllabics Extended-A", Start: 0x11AB0, End: 0x11ABF},
	{Name: "Pau Cin Hau", Start: 0x11AC0, End: 0x11AFF},
	{Name: "Devanagari Extended-A", Start: 0x11B00, End: 0x11B5F},
	{Name: "Bhaiksuki", Start: 0x11C00, End: 0x11C6F},
	{Name: "Marchen", Start: 0x11C70, End: 0x11CBF},
	{Name: "Masaram Gondi", Start: 0x11D00, End: 0x11D5F},
	{Name: "Gunjala Gondi", Start: 0x11D60, End: 0x11DAF},
	{Name: "Makasar", Start: 0x11EE0, End: 0x11EFF},
	{Name: "Kawi", Start: 0x11F00, End: 0x11F5F},
	{Name: "Lisu Supplement", Start: 0x11FB0, End: 0x11FBF},
	{Name: "Tamil Supplement", Start: 0x11FC0, End: 0x11FFF},
	{Name: "Cuneiform", Start: 0x12000, End: 0x123FF},
	{Name: "Cuneiform Numbers and Punctuation", Start: 0x12400, End: 0x1247F},
	{Name: "Early Dynastic Cuneiform", Start: 0x12480, End: 0x1254F},
	{Name: "Cypro-Minoan", Start: 0x12F90, End: 0x12FFF},
	{Name: "Egyptian Hieroglyphs", Start: 0x13000, End: 0x1342F},
	{Name: "Egyptian Hieroglyph Format Controls", Start: 0x13430, End: 0x1345F},
	{Name: "Anatolian Hieroglyphs", Start: 0x14400, End: 0x1467F},
	{Name: "Bamum Supplement", Start: 0x16800, End: 0x16A3F},
	{Name: "Mro", Start: 0x16A40, End: 0x16A6F},
	{Name: "Tangsa", Start: 0x16A70, End: 0x16ACF},
	{Name: "Bassa Vah", Start: 0x16AD0, End: 0x16AFF},
	{Name: "Pahawh Hmong", Start: 0x16B00, End: 0x16B8F},
	{Name: "Medefaidrin", Start: 0x16E40, End: 0x16E9F},
	{Name: "Miao", Start: 0x16F00, End: 0x16F9F},
	{Name: "Ideographic Symbols and Punctuation", Start: 0x16FE0, End: 0x16FFF},
	{Name: "Tangut", Start: 0x17000, End: 0x187FF},
	{Name: "Tangut Components", Start: 0x18800, End: 0x18AFF},
	{Name: "Khitan Small Script", Start: 0x18B00, End: 0x18CFF},
	{Name: "Tangut Supplement", Start: 0x18D00, End: 0x18D7F},
	{Name: "Kana Extended-B", Start: 0x1AFF0, End: 0x1AFFF},
	{Name: "Kana Supplement", Start: 0x1B000, End: 0x1B0FF},
	{Name: "Kana Extended-A", Start: 0x1B100, End: 0x1B12F},
	{Name: "Small Kana Extension", Start: 0x1B130, End: 0x1B16F},
	{Name: "Nushu", Start: 0x1B170, End: 0x1B2FF},
	{Name: "Duployan", Start: 0x1BC00, End: 0x1BC9F},
	{Name: "Shorthand Format Controls", Start: 0x1BCA0, End: 0x1BCAF},
	{Name: "Znamenny Musical Notation", Start: 0x1CF00, End: 0x1CFCF},
	{Name: "Byzantine Musical Symbols", Start: 0x1D000, End: 0x1D0FF},
	{Name: "Musical Symbols", Start: 0x1D100, End: 0x1D1FF},
	{Name: "Ancient Greek Musical Notation", Start: 0x1D200, End: 0x1D24F},
	{Name: "Kaktovik Numerals", Start: 0x1D2C0, End: 0x1D2DF},
	{Name: "Mayan Numerals", Start: 0x1D2E0, End: 0x1D2FF},
	{Name: "Tai Xuan Jing Symbols", Start: 0x1D300, End: 0x1D35F},
	{Name: "Counting Rod Numerals", Start: 0x1D360, End: 0x1D37F},
	{Name: "Mathematical Alphanumeric Symbols", Start: 0x1D400, End: 0x1D7FF},
	{Name: "Sutton SignWriting", Start: 0x1D800, End: 0x1DAAF},
	{Name: "Latin Extended-G", Start: 0x1DF00, End: 0x1DFFF},
	{Name: "Glagolitic Supplement", Start: 0x1E000, End: 0x1E02F},
	{Name: "Cyrillic Extended-D", Start: 0x1E030, End: 0x1E08F},
	{Name: "Nyiakeng Puachue Hmong", Start: 0x1E100, End: 0x1E14F},
	{Name: "Toto", Start: 0x1E290, End: 0x1E2BF},
	{Name: "Wancho", Start: 0x1E2C0, End: 0x1E2FF},
	{Name: "Nag Mundari", Start: 0x1E4D0, End: 0x1E4FF},
	{Name: "Ethiopic Extended-B", Start: 0x1E7E0, End: 0x1E7FF},
	{Name: "Mende Kikakui", Start: 0x1E800, End: 0x1E8DF},
	{Name: "Adlam", Start: 0x1E900, End: 0x1E95F},
	{Name: "Indic Siyaq Numbers", Start: 0x1EC70, End: 0x1ECBF},
	{Name: "Ottoman Siyaq Numbers", Start: 0x1ED00, End: 0x1ED4F},
	{Name: "Arabic Mathematical Alphabetic Symbols", Start: 0x1EE00, End: 0x1EEFF},
	{Name: "Mahjong Tiles", Start: 0x1F000, End: 0x1F02F},
	{Name: "Domino Tiles", Start: 0x1F030, End: 0x1F09F},
	{Name: "Playing Cards", Start: 0x1F0A0, End: 0x1F0FF},
	{Name: "Enclosed Alphanumeric Supplement", Start: 0x1F100, End: 0x1F1FF},
	{Name: "Enclosed Ideographic Supplement", Start: 0x1F200, End: 0x1F2FF},
	{Name: "Miscellaneous Symbols and Pictographs", Start: 0x1F300, End: 0x1F5FF},
	{Name: "Emoticons", Start: 0x1F600, End: 0x1F64F},
	{Name: "Ornamental Dingbats", Start: 0x1F650, End: 0x1F67F},
	{Name: "Transport and Map Symbols", Start: 0x1F680, End: 0x1F6FF},
	{Name: "Alchemical Symbols", Start: 0x1F700, End: 0x1F77F},
	{Name: "Geometric Shapes Extended", Start: 0x1F780, End: 0x1F7FF},
	{Name: "Supplemental Arrows-C", Start: 0x1F800, End: 0x1F8FF},
	{Name: "Supplemental Symbols and Pictographs", Start: 0x1F900, End: 0x1F9FF},
	{Name: "Chess Symbols", Start: 0x1FA00, End: 0x1FA6F},
	{Name: "Symbols and Pictographs Extended-A", Start: 0x1FA70, End: 0x1FAFF},
	{Name: "Symbols for Legacy Computing", Start: 0x1FB00, End: 0x1FBFF},
	{Name: "CJK Unified Ideographs Extension B", Start: 0x20000, End: 0x2A6DF},
	{Name: "CJK Unified Ideographs Extension C", Start: 0x2A700, End: 0x2B73F},
	{Name: "CJK Unified Ideographs Extension D", Start: 0x2B740, End: 0x2B81F},
	{Name: "CJK Unified Ideographs Extension E", Start: 0x2B820, End: 0x2CEAF},
	{Name: "CJK Unified Ideographs Extension F", Start: 0x2CEB0, End: 0x2EBEF},
	{Name: "CJK Compatibility Ideographs Supplement", Start: 0x2F800, End: 0x2FA1F},
	{Name: "CJK Unified Ideographs Extension G", Start: 0x30000, End: 0x3134F},
	{Name: "CJK Unified Ideographs Extension H", Start: 0x31350, End: 0x323AF},
	{Name: "Tags", Start: 0xE0000, End: 0xE007F},
	{Name: "Variation Selectors Supplement", Start: 0xE0100, End: 0xE01EF},
	{Name: "Supplementary Private Use Area-A", Start: 0xF0000, End: 0xFFFFF},
	{Name: "Supplementary Private Use Area-B", Start: 0x100000, End: 0x10FFFF},
}
