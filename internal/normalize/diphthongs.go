package normalize

import (
	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/phonetics"
	"github.com/jusunglee/baybayin/internal/textbuf"
)

// handleDiphthongs rewrites pairs of adjacent, different vowels. Reformed
// inserts a glide after i (y) or after o and u (w); Traditional drops the
// second vowel. A doubled vowel (saan, kabuuan) marks a glottal stop rather
// than a diphthong and is left alone.
func handleDiphthongs(in string, mode options.DiphthongMode) string {
	out := textbuf.New(len(in) + len(in)/4)
	for i := 0; i < len(in); i++ {
		c := in[i]
		out.Byte(c)
		if !phonetics.IsVowel(c) || !phonetics.VowelAt(in, i+1) || in[i+1] == c {
			continue
		}
		switch mode {
		case options.DiphthongReformed:
			switch c {
			case 'i':
				out.Byte('y')
			case 'o', 'u':
				out.Byte('w')
			}
		case options.DiphthongTraditional:
			i++
		}
	}
	return out.Result()
}
