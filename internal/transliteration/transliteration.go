// Package transliteration writes normalized Latin text in the Baybayin
// script.
//
// Transliterate is a pure function of its input and options and is safe for
// concurrent use. Bytes it has no glyph for are copied through, so it never
// fails.
package transliteration

import (
	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/phonetics"
	"github.com/jusunglee/baybayin/internal/textbuf"
)

type state int

const (
	atWordStart state = iota
	inWord
)

// Transliterate converts one line of Filipino-spelled Latin text to
// Baybayin. Consonants followed by a vowel take the matching kudlit;
// consonants without one follow the coda rules of opts.Orthography.
// Whitespace is collapsed to single spaces and trimmed.
func Transliterate(s string, opts options.Transliteration) string {
	s = phonetics.LowerASCII(s)
	// Every glyph is three bytes of UTF-8 and most letters become one glyph.
	out := textbuf.New(len(s) * 3)
	st := atWordStart

	for i := 0; i < len(s); {
		c := s[i]
		if phonetics.IsSpace(c) {
			out.Space()
			st = atWordStart
			i++
			continue
		}
		if phonetics.IsVowel(c) {
			out.Rune(vowelGlyphs[c])
			st = inWord
			i++
			continue
		}

		glyph, width := glyphNga, 2
		if c != 'n' || phonetics.ByteAt(s, i+1) != 'g' {
			g, ok := consonantGlyph(c, opts.Orthography)
			if !ok {
				out.Byte(c)
				st = inWord
				i++
				continue
			}
			glyph, width = g, 1
		}
		i += width

		if v := phonetics.ByteAt(s, i); phonetics.IsVowel(v) {
			out.Rune(glyph)
			if k, ok := kudlit(v); ok {
				out.Rune(k)
			}
			i++
		} else {
			// A bare "ng" word is the particle itself, not a trailing ng.
			trailingNg := width == 2 && st == inWord && phonetics.BoundaryAt(s, i)
			writeCoda(out, glyph, trailingNg, opts)
		}
		st = inWord
	}
	return out.Result()
}

// writeCoda writes a consonant that has no vowel of its own.
func writeCoda(out *textbuf.Buffer, glyph rune, trailingNg bool, opts options.Transliteration) {
	switch opts.Orthography {
	case options.Traditional:
		return
	case options.Reformed:
		if trailingNg && !opts.MarkTrailingNg {
			return
		}
	}
	out.Rune(glyph)
	out.Rune(viramaGlyph(opts.Virama))
}
