package normalize

import (
	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/phonetics"
	"github.com/jusunglee/baybayin/internal/textbuf"
)

// vowelRule rewrites the vowel at in[i] and returns how many input bytes it
// consumed. A rule may write nothing to drop the vowel.
type vowelRule func(out *textbuf.Buffer, in string, i int) int

// Spanish vowels are close enough to the native ones to pass through, and
// Alpabetong keeps English spellings as written.
var vowelRules = map[ruleKey]map[byte]vowelRule{
	{options.English, options.Abakada}: {
		'a': englishA,
		'e': englishE,
		'o': englishO,
	},
}

// normalizeVowels runs on consonant-normalized text, so every consonant
// substitution is final before vowel context is read.
func normalizeVowels(in string, lang options.Language, alpha options.Alphabet) string {
	rules, ok := vowelRules[ruleKey{lang, alpha}]
	if !ok {
		return in
	}
	out := textbuf.New(len(in) + len(in)/4)
	for i := 0; i < len(in); {
		if rule, ok := rules[in[i]]; ok {
			i += rule(out, in, i)
			continue
		}
		out.Byte(in[i])
		i++
	}
	return out.Result()
}

func englishA(out *textbuf.Buffer, in string, i int) int {
	switch next := phonetics.ByteAt(in, i+1); next {
	case 'i', 'y':
		out.String("ey")
		return 2
	case 'u', 'w', 'e':
		out.Byte('o')
		return 2
	}
	if silentE(in, i+1) {
		out.String("ey")
		return 1
	}
	out.Byte('a')
	return 1
}

// silentE reports whether in[i] is a single consonant followed by a
// word-final e, optionally inflected with s or d (make, makes, baked).
func silentE(in string, i int) bool {
	if !phonetics.ConsonantAt(in, i) || phonetics.ByteAt(in, i+1) != 'e' {
		return false
	}
	if phonetics.BoundaryAt(in, i+2) {
		return true
	}
	switch phonetics.ByteAt(in, i+2) {
	case 's', 'd':
		return phonetics.BoundaryAt(in, i+3)
	}
	return false
}

func englishE(out *textbuf.Buffer, in string, i int) int {
	if phonetics.ByteAt(in, i+1) == 'e' {
		out.Byte('i')
		return 2
	}
	if phonetics.BoundaryAt(in, i+1) && vowelBefore(in, i) {
		return 1
	}
	out.Byte('e')
	return 1
}

func englishO(out *textbuf.Buffer, in string, i int) int {
	out.Byte('o')
	if phonetics.ByteAt(in, i+1) == 'a' {
		return 2
	}
	return 1
}

// vowelBefore reports whether the word containing in[i] has a vowel before i.
// Words like "the" keep their only vowel.
func vowelBefore(in string, i int) bool {
	for j := i - 1; !phonetics.BoundaryAt(in, j); j-- {
		if phonetics.IsVowel(in[j]) {
			return true
		}
	}
	return false
}
