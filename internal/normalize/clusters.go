package normalize

import (
	"github.com/jusunglee/baybayin/internal/phonetics"
	"github.com/jusunglee/baybayin/internal/textbuf"
)

// onsetDigraphs are consonant pairs that spell a single onset: native ones,
// and the Latin h digraphs that the consonant stage leaves in place.
var onsetDigraphs = map[string]bool{
	"ng": true,
	"kw": true,
	"ts": true,
	"dy": true,
	"ny": true,
	"ks": true,
	"ch": true,
	"ph": true,
	"sh": true,
	"th": true,
}

// smoothClusters breaks up a word-initial consonant cluster with the first
// vowel found later in the same word, or i when the word has none
// (krus -> kurus, plano -> palano). Only the onset of each word is examined.
func smoothClusters(in string) string {
	out := textbuf.New(len(in) + len(in)/8)
	for i := 0; i < len(in); {
		if phonetics.BoundaryAt(in, i-1) &&
			phonetics.ConsonantAt(in, i) &&
			phonetics.ConsonantAt(in, i+1) &&
			!onsetDigraphs[in[i:i+2]] {
			out.Byte(in[i])
			out.Byte(epentheticVowel(in, i+2))
			out.Byte(in[i+1])
			i += 2
			continue
		}
		out.Byte(in[i])
		i++
	}
	return out.Result()
}

func epentheticVowel(in string, from int) byte {
	for j := from; !phonetics.BoundaryAt(in, j); j++ {
		if phonetics.IsVowel(in[j]) {
			return in[j]
		}
	}
	return 'i'
}
