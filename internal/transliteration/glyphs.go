package transliteration

import "github.com/jusunglee/baybayin/internal/options"

// Baybayin block, U+1700 to U+171F, plus the pamudpod from the Hanunoo block.
const (
	glyphNga      = 'ᜅ'
	glyphModernRa = 'ᜍ'
	kudlitI       = 'ᜒ'
	kudlitU       = 'ᜓ'
	krus          = '᜔'
	pamudpod      = '᜴'
)

// e and i share a glyph, as do o and u.
var vowelGlyphs = map[byte]rune{
	'a': 'ᜀ',
	'e': 'ᜁ',
	'i': 'ᜁ',
	'o': 'ᜂ',
	'u': 'ᜂ',
}

// r is an allophone of d and shares its glyph outside Modern orthography.
var consonantGlyphs = map[byte]rune{
	'k': 'ᜃ',
	'g': 'ᜄ',
	't': 'ᜆ',
	'd': 'ᜇ',
	'r': 'ᜇ',
	'n': 'ᜈ',
	'p': 'ᜉ',
	'b': 'ᜊ',
	'm': 'ᜋ',
	'y': 'ᜌ',
	'l': 'ᜎ',
	'w': 'ᜏ',
	's': 'ᜐ',
	'h': 'ᜑ',
}

func consonantGlyph(c byte, o options.Orthography) (rune, bool) {
	if c == 'r' && o == options.Modern {
		return glyphModernRa, true
	}
	g, ok := consonantGlyphs[c]
	return g, ok
}

// kudlit returns the diacritic that changes a consonant's inherent a into v.
// It reports false for a, which needs none.
func kudlit(v byte) (rune, bool) {
	switch v {
	case 'e', 'i':
		return kudlitI, true
	case 'o', 'u':
		return kudlitU, true
	}
	return 0, false
}

func viramaGlyph(v options.Virama) rune {
	if v == options.Pamudpod {
		return pamudpod
	}
	return krus
}
