// Package normalize rewrites Latin-script Spanish and English text into
// Filipino spelling so that it can be transliterated syllable by syllable.
//
// Every function in this package is pure and safe for concurrent use.
// Normalize never fails: bytes that no rule recognizes are copied through.
package normalize

import (
	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/phonetics"
)

// Normalize runs the full normalization pipeline on a single line:
// consonants, then vowels, then diphthongs, then (for the reformed cluster
// mode) word-initial clusters. Whitespace in the result is collapsed to
// single spaces and trimmed.
func Normalize(s string, opts options.Normalization) string {
	s = phonetics.LowerASCII(s)
	s = normalizeConsonants(s, opts.Language, opts.Alphabet)
	s = normalizeVowels(s, opts.Language, opts.Alphabet)
	s = handleDiphthongs(s, opts.Diphthong)
	if opts.Cluster == options.ClusterReformed {
		s = smoothClusters(s)
	}
	return s
}
