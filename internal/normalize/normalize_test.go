package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jusunglee/baybayin/internal/options"
)

func spanishAbakada() options.Normalization {
	return options.DefaultNormalization()
}

func englishAbakada() options.Normalization {
	n := options.DefaultNormalization()
	n.Language = options.English
	return n
}

func TestNormalizeSpanishAbakada(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"fiesta", "piyesta"},
		{"calle", "kaye"},
		{"queso", "keso"},
		{"jugo", "hugo"},
		{"juez", "huwes"},
		{"niño", "ninyo"},
		{"NIÑO", "ninyo"},
		{"taxi", "taksi"},
		{"experto", "eksperto"},
		{"xenon", "senon"},
		{"cine", "sine"},
		{"café", "kapé"},
		{"vaca", "baka"},
		{"zapato", "sapato"},
		{"plano", "palano"},
		{"krus", "kurus"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, spanishAbakada()))
		})
	}
}

func TestNormalizeEnglishAbakada(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"christ", "kirist"},
		{"Christ", "kirist"},
		{"make", "meyk"},
		{"see", "si"},
		{"boat", "bot"},
		{"rain", "reyn"},
		{"saw", "so"},
		{"phone", "pon"},
		{"box", "boks"},
		{"chess", "tsess"},
		{"jet", "dyet"},
		{"queen", "kwin"},
		{"back", "bak"},
		{"bone", "bon"},
		{"he", "he"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, englishAbakada()))
		})
	}
}

func TestNormalizeAlpabetongKeepsForeignLetters(t *testing.T) {
	spanish := spanishAbakada()
	spanish.Alphabet = options.Alpabetong
	english := englishAbakada()
	english.Alphabet = options.Alpabetong

	assert.Equal(t, "fiyesta", Normalize("fiesta", spanish))
	assert.Equal(t, "tsico", Normalize("chico", spanish))
	assert.Equal(t, "niño", Normalize("niño", spanish))
	assert.Equal(t, "fone", Normalize("phone", english))
	assert.Equal(t, "zero", Normalize("zero", english))
}

func TestClusterSmoothingKeepsHDigraphs(t *testing.T) {
	spanish := spanishAbakada()
	spanish.Alphabet = options.Alpabetong
	english := englishAbakada()
	english.Alphabet = options.Alpabetong

	tests := []struct {
		name string
		opts options.Normalization
		in   string
		want string
	}{
		{"english alpabetong ch", english, "chico", "chico"},
		{"spanish alpabetong ph", spanish, "philip", "philip"},
		{"english alpabetong sh", english, "shoe", "showe"},
		{"english abakada th", englishAbakada(), "thank", "thank"},
		{"english abakada th single vowel", englishAbakada(), "the", "the"},
		{"other clusters still split", english, "plan", "palan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.opts))
		})
	}
}

func TestNormalizeExpandsParticles(t *testing.T) {
	n := spanishAbakada()
	assert.Equal(t, "nang bahay", Normalize("ng bahay", n))
	assert.Equal(t, "manga tao", Normalize("mga tao", n))
	assert.Equal(t, "nang, manga.", Normalize("ng, mga.", n))
	assert.Equal(t, "ngayon", Normalize("ngayon", n), "ng inside a word is a digraph")
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "nang manga", Normalize("  ng \t  mga  ", spanishAbakada()))
	assert.Equal(t, "", Normalize(" \t ", spanishAbakada()))
	assert.Equal(t, "", Normalize("", spanishAbakada()))
}

func TestDiphthongModes(t *testing.T) {
	n := spanishAbakada()
	assert.Equal(t, "buwaya", Normalize("buaya", n))
	assert.Equal(t, "piyano", Normalize("piano", n))
	assert.Equal(t, "saan", Normalize("saan", n), "doubled vowel is a glottal stop")

	n.Diphthong = options.DiphthongTraditional
	assert.Equal(t, "buya", Normalize("buaya", n))
	assert.Equal(t, "ta", Normalize("tao", n))
	assert.Equal(t, "saan", Normalize("saan", n))
}

func TestClusterModes(t *testing.T) {
	n := spanishAbakada()
	assert.Equal(t, "palano", Normalize("plano", n))
	assert.Equal(t, "tsinelas", Normalize("tsinelas", n), "ts is a native onset")
	assert.Equal(t, "kwento", Normalize("kwento", n))
	assert.Equal(t, "sirt", Normalize("srt", n), "falls back to i")
	assert.Equal(t, "aplaya", Normalize("aplaya", n), "only word-initial clusters")

	n.Cluster = options.ClusterTraditional
	assert.Equal(t, "plano", Normalize("plano", n))
}

func TestNativeTextPassesThrough(t *testing.T) {
	for _, s := range []string{
		"bahay kubo",
		"magandang umaga",
		"salamat po",
		"ngipin",
		"1, 2, 3!",
	} {
		once := Normalize(s, spanishAbakada())
		assert.Equal(t, s, once)
		assert.Equal(t, once, Normalize(once, spanishAbakada()))
	}
}
