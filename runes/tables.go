package runes

// Classification tables. Point sets hold exact code point membership;
// range tables hold inclusive [Lo, Hi] intervals, sorted ascending and
// non-overlapping within each table so membership can binary search.
// Ranges may overlap across tables (full-width forms sit inside the wide
// table too); Categorize resolves those collisions by precedence.

// runeRange is an inclusive interval of code points.
type runeRange struct {
	Lo, Hi rune
}

// inRanges reports whether r falls inside any interval of a sorted,
// non-overlapping range table.
func inRanges(table []runeRange, r rune) bool {
	from := 0
	to := len(table)
	for to > from {
		middle := (from + to) / 2
		rng := table[middle]
		if r < rng.Lo {
			to = middle
			continue
		}
		if r > rng.Hi {
			from = middle + 1
			continue
		}
		return true
	}
	return false
}

// whitespaceSet holds horizontal and vertical space code points that are
// not tabs or newlines: ASCII space, NBSP, the Unicode space separators,
// and the line/paragraph separators.
var whitespaceSet = map[rune]struct{}{
	0x0020: {}, // SPACE
	0x00A0: {}, // NO-BREAK SPACE
	0x1680: {}, // OGHAM SPACE MARK
	0x2000: {}, // EN QUAD
	0x2001: {}, // EM QUAD
	0x2002: {}, // EN SPACE
	0x2003: {}, // EM SPACE
	0x2004: {}, // THREE-PER-EM SPACE
	0x2005: {}, // FOUR-PER-EM SPACE
	0x2006: {}, // SIX-PER-EM SPACE
	0x2007: {}, // FIGURE SPACE
	0x2008: {}, // PUNCTUATION SPACE
	0x2009: {}, // THIN SPACE
	0x200A: {}, // HAIR SPACE
	0x2028: {}, // LINE SEPARATOR
	0x2029: {}, // PARAGRAPH SEPARATOR
	0x202F: {}, // NARROW NO-BREAK SPACE
	0x205F: {}, // MEDIUM MATHEMATICAL SPACE
	0x3000: {}, // IDEOGRAPHIC SPACE
}

// zeroWidthSet holds code points that occupy no columns and carry no
// semantics a terminal needs: the classic invisible troublemakers that
// sneak into copied text.
var zeroWidthSet = map[rune]struct{}{
	0x180E: {}, // MONGOLIAN VOWEL SEPARATOR
	0x200B: {}, // ZERO WIDTH SPACE
	0x200C: {}, // ZERO WIDTH NON-JOINER
	0x200D: {}, // ZERO WIDTH JOINER
	0x2060: {}, // WORD JOINER
	0xFEFF: {}, // ZERO WIDTH NO-BREAK SPACE / BOM
}

// directionalSet holds bidirectional control marks. These can reorder
// rendered text (a known spoofing vector in terminal output), so the
// sanitizer drops them unless told otherwise.
var directionalSet = map[rune]struct{}{
	0x061C: {}, // ARABIC LETTER MARK
	0x200E: {}, // LEFT-TO-RIGHT MARK
	0x200F: {}, // RIGHT-TO-LEFT MARK
	0x202A: {}, // LEFT-TO-RIGHT EMBEDDING
	0x202B: {}, // RIGHT-TO-LEFT EMBEDDING
	0x202C: {}, // POP DIRECTIONAL FORMATTING
	0x202D: {}, // LEFT-TO-RIGHT OVERRIDE
	0x202E: {}, // RIGHT-TO-LEFT OVERRIDE
	0x2066: {}, // LEFT-TO-RIGHT ISOLATE
	0x2067: {}, // RIGHT-TO-LEFT ISOLATE
	0x2068: {}, // FIRST STRONG ISOLATE
	0x2069: {}, // POP DIRECTIONAL ISOLATE
}

// formattingSet holds invisible formatting controls that are not
// directional overrides. The isolate controls 0x2066-0x2069 appear here
// and in directionalSet; Categorize resolves them as directional.
var formattingSet = map[rune]struct{}{
	0x00AD: {}, // SOFT HYPHEN
	0x034F: {}, // COMBINING GRAPHEME JOINER
	0x2066: {}, // LEFT-TO-RIGHT ISOLATE
	0x2067: {}, // RIGHT-TO-LEFT ISOLATE
	0x2068: {}, // FIRST STRONG ISOLATE
	0x2069: {}, // POP DIRECTIONAL ISOLATE
	0xFFF9: {}, // INTERLINEAR ANNOTATION ANCHOR
	0xFFFA: {}, // INTERLINEAR ANNOTATION SEPARATOR
	0xFFFB: {}, // INTERLINEAR ANNOTATION TERMINATOR
}

// emojiRanges covers the Supplementary Multilingual Plane emoji blocks.
// BMP pictographs (dingbats, misc symbols) are deliberately absent: the
// status glyphs this library itself emits (checkmarks, warning signs)
// render single-column in every terminal we target and must keep
// measuring as 1.
var emojiRanges = []runeRange{
	{0x1F1E6, 0x1F1FF}, // Regional Indicator Symbols (flags)
	{0x1F300, 0x1F5FF}, // Misc Symbols and Pictographs
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F680, 0x1F6FF}, // Transport and Map Symbols
	{0x1F700, 0x1F77F}, // Alchemical Symbols
	{0x1F780, 0x1F7FF}, // Geometric Shapes Extended
	{0x1F800, 0x1F8FF}, // Supplemental Arrows-C
	{0x1F900, 0x1F9FF}, // Supplemental Symbols and Pictographs
	{0x1FA00, 0x1FA6F}, // Chess Symbols
	{0x1FA70, 0x1FAFF}, // Symbols and Pictographs Extended-A
}

// wideRanges covers East Asian Wide and Fullwidth blocks: anything that
// occupies two terminal cells. Fullwidth forms appear here and in
// fullWidthRanges on purpose.
var wideRanges = []runeRange{
	{0x1100, 0x115F},   // Hangul Jamo (leading consonants)
	{0x2E80, 0x303E},   // CJK Radicals .. CJK Symbols and Punctuation
	{0x3041, 0x33FF},   // Hiragana .. CJK Compatibility
	{0x3400, 0x4DBF},   // CJK Unified Ideographs Extension A
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0xA000, 0xA4CF},   // Yi Syllables and Radicals
	{0xAC00, 0xD7A3},   // Hangul Syllables
	{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
	{0xFE30, 0xFE4F},   // CJK Compatibility Forms
	{0xFF00, 0xFF60},   // Fullwidth Forms
	{0xFFE0, 0xFFE6},   // Fullwidth Signs
	{0x20000, 0x2FFFD}, // CJK Unified Ideographs Extensions B-F
	{0x30000, 0x3FFFD}, // CJK Unified Ideographs Extension G
}

// fullWidthRanges is the fullwidth subset of wideRanges, kept as its own
// table so the width calculator can price fullwidth forms separately
// from general CJK.
var fullWidthRanges = []runeRange{
	{0x3000, 0x3000}, // IDEOGRAPHIC SPACE
	{0xFF01, 0xFF60}, // Fullwidth punctuation, latin, katakana forms
	{0xFFE0, 0xFFE6}, // Fullwidth currency and signs
}

// ambiguousRanges follows East Asian Width property A: characters whose
// column count depends on the rendering context. Legacy East Asian
// terminals draw them double-width; everything else draws them narrow.
// The default width of 1 matches modern terminals; AmbiguousWidth lets
// callers opt in to the legacy behavior.
var ambiguousRanges = []runeRange{
	{0x00A1, 0x00A1},
	{0x00A4, 0x00A4},
	{0x00A7, 0x00A8},
	{0x00AA, 0x00AA},
	{0x00AD, 0x00AE},
	{0x00B0, 0x00B4},
	{0x00B6, 0x00BA},
	{0x00BC, 0x00BF},
	{0x00C6, 0x00C6},
	{0x00D0, 0x00D0},
	{0x00D7, 0x00D8},
	{0x00DE, 0x00E1},
	{0x00E6, 0x00E6},
	{0x00E8, 0x00EA},
	{0x00EC, 0x00ED},
	{0x00F0, 0x00F0},
	{0x00F2, 0x00F3},
	{0x00F7, 0x00FA},
	{0x00FC, 0x00FC},
	{0x00FE, 0x00FE},
	{0x0101, 0x0101},
	{0x0111, 0x0111},
	{0x0113, 0x0113},
	{0x011B, 0x011B},
	{0x0126, 0x0127},
	{0x012B, 0x012B},
	{0x0131, 0x0133},
	{0x0138, 0x0138},
	{0x013F, 0x0142},
	{0x0144, 0x0144},
	{0x0148, 0x014B},
	{0x014D, 0x014D},
	{0x0152, 0x0153},
	{0x0166, 0x0167},
	{0x016B, 0x016B},
	{0x01CE, 0x01CE},
	{0x01D0, 0x01D0},
	{0x01D2, 0x01D2},
	{0x01D4, 0x01D4},
	{0x01D6, 0x01D6},
	{0x01D8, 0x01D8},
	{0x01DA, 0x01DA},
	{0x01DC, 0x01DC},
	{0x0251, 0x0251},
	{0x0261, 0x0261},
	{0x02C4, 0x02C4},
	{0x02C7, 0x02C7},
	{0x02C9, 0x02CB},
	{0x02CD, 0x02CD},
	{0x02D0, 0x02D0},
	{0x02D8, 0x02DB},
	{0x02DD, 0x02DD},
	{0x02DF, 0x02DF},
	{0x0300, 0x036F},
	{0x0391, 0x03A1},
	{0x03A3, 0x03A9},
	{0x03B1, 0x03C1},
	{0x03C3, 0x03C9},
	{0x0401, 0x0401},
	{0x0410, 0x044F},
	{0x0451, 0x0451},
	{0x2010, 0x2010},
	{0x2013, 0x2016},
	{0x2018, 0x2019},
	{0x201C, 0x201D},
	{0x2020, 0x2022},
	{0x2024, 0x2027},
	{0x2030, 0x2030},
	{0x2032, 0x2033},
	{0x2035, 0x2035},
	{0x203B, 0x203B},
	{0x203E, 0x203E},
	{0x2074, 0x2074},
	{0x207F, 0x207F},
	{0x2081, 0x2084},
	{0x20AC, 0x20AC},
	{0x2103, 0x2103},
	{0x2105, 0x2105},
	{0x2109, 0x2109},
	{0x2113, 0x2113},
	{0x2116, 0x2116},
	{0x2121, 0x2122},
	{0x2126, 0x2126},
	{0x212B, 0x212B},
	{0x2153, 0x2154},
	{0x215B, 0x215E},
	{0x2160, 0x216B},
	{0x2170, 0x2179},
	{0x2189, 0x2189},
	{0x2190, 0x2199},
	{0x21B8, 0x21B9},
	{0x21D2, 0x21D2},
	{0x21D4, 0x21D4},
	{0x21E7, 0x21E7},
	{0x2200, 0x2200},
	{0x2202, 0x2203},
	{0x2207, 0x2208},
	{0x220B, 0x220B},
	{0x220F, 0x220F},
	{0x2211, 0x2211},
	{0x2215, 0x2215},
	{0x221A, 0x221A},
	{0x221D, 0x2220},
	{0x2223, 0x2223},
	{0x2225, 0x2225},
	{0x2227, 0x222C},
	{0x222E, 0x222E},
	{0x2234, 0x2237},
	{0x223C, 0x223D},
	{0x2248, 0x2248},
	{0x224C, 0x224C},
	{0x2252, 0x2252},
	{0x2260, 0x2261},
	{0x2264, 0x2267},
	{0x226A, 0x226B},
	{0x226E, 0x226F},
	{0x2282, 0x2283},
	{0x2286, 0x2287},
	{0x2295, 0x2295},
	{0x2299, 0x2299},
	{0x22A5, 0x22A5},
	{0x22BF, 0x22BF},
	{0x2312, 0x2312},
	{0x2460, 0x24E9},
	{0x24EB, 0x254B},
	{0x2550, 0x2573},
	{0x2580, 0x258F},
	{0x2592, 0x2595},
	{0x25A0, 0x25A1},
	{0x25A3, 0x25A9},
	{0x25B2, 0x25B3},
	{0x25B6, 0x25B7},
	{0x25BC, 0x25BD},
	{0x25C0, 0x25C1},
	{0x25C6, 0x25C8},
	{0x25CB, 0x25CB},
	{0x25CE, 0x25D1},
	{0x25E2, 0x25E5},
	{0x25EF, 0x25EF},
	{0x2605, 0x2606},
	{0x2609, 0x2609},
	{0x260E, 0x260F},
	{0x261C, 0x261C},
	{0x261E, 0x261E},
	{0x2640, 0x2640},
	{0x2642, 0x2642},
	{0x2660, 0x2661},
	{0x2663, 0x2665},
	{0x2667, 0x266A},
	{0x266C, 0x266D},
	{0x266F, 0x266F},
	{0x2776, 0x277F},
	{0xE000, 0xF8FF}, // Private Use Area (nerd font icons land here)
	{0xFE00, 0xFE0F}, // Variation Selectors
	{0xFFFD, 0xFFFD}, // REPLACEMENT CHARACTER
}
