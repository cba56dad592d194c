package normalize

import (
	"strings"

	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/phonetics"
	"github.com/jusunglee/baybayin/internal/textbuf"
)

// consonantRule rewrites the letter at in[i] and returns how many input
// bytes it consumed. It is only called with i < len(in).
type consonantRule func(out *textbuf.Buffer, in string, i int) int

type ruleKey struct {
	lang  options.Language
	alpha options.Alphabet
}

// Letters missing from a table are copied unchanged.
var consonantRules = map[ruleKey]map[byte]consonantRule{
	{options.Spanish, options.Abakada}: {
		'f':  emit("p"),
		'v':  emit("b"),
		'z':  emit("s"),
		'x':  spanishX,
		'c':  abakadaC(options.Spanish),
		'j':  spanishJ,
		'q':  quTo("k"),
		'l':  llTo("y"),
		'p':  phTo("p"),
		0xC3: enyeTo("ny"),
	},
	{options.English, options.Abakada}: {
		'f':  emit("p"),
		'v':  emit("b"),
		'z':  emit("s"),
		'x':  englishX,
		'c':  abakadaC(options.English),
		'j':  emit("dy"),
		'q':  quTo("kw"),
		'l':  llTo("l"),
		'p':  phTo("p"),
		0xC3: enyeTo("ny"),
	},
	{options.Spanish, options.Alpabetong}: {
		'c':  spanishAlpabetongC,
		'l':  llTo("l"),
		0xC3: enyeTo("ñ"),
	},
	{options.English, options.Alpabetong}: {
		'l':  llTo("l"),
		'p':  phTo("f"),
		0xC3: enyeTo("ñ"),
	},
}

// normalizeConsonants substitutes foreign consonants, expands the
// standalone particles ng and mga, and collapses whitespace. in must
// already be lowercase.
func normalizeConsonants(in string, lang options.Language, alpha options.Alphabet) string {
	rules := consonantRules[ruleKey{lang, alpha}]
	out := textbuf.New(len(in) + len(in)/4)

	for i := 0; i < len(in); {
		c := in[i]
		if phonetics.IsSpace(c) {
			out.Space()
			i++
			continue
		}
		if n := expandParticle(out, in, i); n > 0 {
			i += n
			continue
		}
		if rule, ok := rules[c]; ok {
			i += rule(out, in, i)
			continue
		}
		out.Byte(c)
		i++
	}
	return out.Result()
}

// expandParticle writes the long form of a standalone "ng" or "mga".
func expandParticle(out *textbuf.Buffer, in string, i int) int {
	if !phonetics.BoundaryAt(in, i-1) {
		return 0
	}
	rest := in[i:]
	switch {
	case strings.HasPrefix(rest, "mga") && phonetics.BoundaryAt(in, i+3):
		out.String("manga")
		return 3
	case strings.HasPrefix(rest, "ng") && phonetics.BoundaryAt(in, i+2):
		out.String("nang")
		return 2
	}
	return 0
}

func emit(s string) consonantRule {
	return func(out *textbuf.Buffer, _ string, _ int) int {
		out.String(s)
		return 1
	}
}

// englishX is s at the start of a word or before a consonant, ks elsewhere.
func englishX(out *textbuf.Buffer, in string, i int) int {
	if phonetics.BoundaryAt(in, i-1) || phonetics.ConsonantAt(in, i+1) {
		out.Byte('s')
	} else {
		out.String("ks")
	}
	return 1
}

// spanishX is s at the start of a word, ks elsewhere (taksi, eksperto).
func spanishX(out *textbuf.Buffer, in string, i int) int {
	if phonetics.BoundaryAt(in, i-1) {
		out.Byte('s')
	} else {
		out.String("ks")
	}
	return 1
}

func abakadaC(lang options.Language) consonantRule {
	return func(out *textbuf.Buffer, in string, i int) int {
		switch next := phonetics.ByteAt(in, i+1); {
		case next == 'h':
			if phonetics.ConsonantAt(in, i+2) {
				out.Byte('k')
			} else {
				out.String("ts")
			}
			return 2
		case next == 'k' && lang == options.English:
			out.Byte('k')
			return 2
		case next == 'e' || next == 'i':
			out.Byte('s')
		default:
			out.Byte('k')
		}
		return 1
	}
}

func spanishAlpabetongC(out *textbuf.Buffer, in string, i int) int {
	if phonetics.ByteAt(in, i+1) == 'h' {
		out.String("ts")
		return 2
	}
	out.Byte('c')
	return 1
}

// spanishJ is h. Before ua, ue or ui the u becomes a glide (juez -> huwes).
func spanishJ(out *textbuf.Buffer, in string, i int) int {
	if phonetics.ByteAt(in, i+1) == 'u' {
		switch phonetics.ByteAt(in, i+2) {
		case 'a', 'e', 'i':
			out.String("huw")
			return 2
		}
	}
	out.Byte('h')
	return 1
}

func quTo(s string) consonantRule {
	return func(out *textbuf.Buffer, in string, i int) int {
		if phonetics.ByteAt(in, i+1) == 'u' {
			out.String(s)
			return 2
		}
		out.Byte('k')
		return 1
	}
}

func llTo(s string) consonantRule {
	return func(out *textbuf.Buffer, in string, i int) int {
		if phonetics.ByteAt(in, i+1) == 'l' {
			out.String(s)
			return 2
		}
		out.Byte('l')
		return 1
	}
}

func phTo(s string) consonantRule {
	return func(out *textbuf.Buffer, in string, i int) int {
		if phonetics.ByteAt(in, i+1) == 'h' {
			out.String(s)
			return 2
		}
		out.Byte('p')
		return 1
	}
}

// enyeTo rewrites the two-byte UTF-8 ñ or Ñ. Any other sequence starting
// with 0xC3 is copied one byte at a time.
func enyeTo(s string) consonantRule {
	return func(out *textbuf.Buffer, in string, i int) int {
		switch phonetics.ByteAt(in, i+1) {
		case 0xB1, 0x91:
			out.String(s)
			return 2
		}
		out.Byte(in[i])
		return 1
	}
}
