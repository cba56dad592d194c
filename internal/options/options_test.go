package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTripsNames(t *testing.T) {
	for _, name := range LanguageValues {
		v, err := ParseLanguage(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}
	for _, name := range AlphabetValues {
		v, err := ParseAlphabet(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}
	for _, name := range OrthographyValues {
		v, err := ParseOrthography(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}
	for _, name := range ViramaValues {
		v, err := ParseVirama(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	v, err := ParseLanguage("  English ")
	require.NoError(t, err)
	assert.Equal(t, English, v)
}

func TestParseUnknownValue(t *testing.T) {
	_, err := ParseVirama("slash")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownValue)
	assert.Contains(t, err.Error(), "krus, pamudpod")
}

func TestStringOfUnknownValue(t *testing.T) {
	assert.Equal(t, "options.Orthography(9)", Orthography(9).String())
}

func TestDefaultsMatchFirstSelectorValue(t *testing.T) {
	n := DefaultNormalization()
	assert.Equal(t, LanguageValues[0], n.Language.String())
	assert.Equal(t, AlphabetValues[0], n.Alphabet.String())
	assert.Equal(t, DiphthongValues[0], n.Diphthong.String())
	assert.Equal(t, ClusterValues[0], n.Cluster.String())

	tr := DefaultTransliteration()
	assert.Equal(t, OrthographyValues[0], tr.Orthography.String())
	assert.Equal(t, ViramaValues[0], tr.Virama.String())
	assert.True(t, tr.MarkTrailingNg)
}

func TestNormalizationFlagsParse(t *testing.T) {
	n, err := NormalizationFlags{Language: "english", Cluster: "traditional"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, Normalization{
		Language:  English,
		Alphabet:  Abakada,
		Diphthong: DiphthongReformed,
		Cluster:   ClusterTraditional,
	}, n)
}

func TestNormalizationFlagsReportsEveryError(t *testing.T) {
	_, err := NormalizationFlags{Language: "tagalog", Orthography: "cyrillic"}.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tagalog")
	assert.Contains(t, err.Error(), "cyrillic")
}

func TestTransliterationFlagsParse(t *testing.T) {
	off := false
	tr, err := TransliterationFlags{Script: "traditional", Virama: "pamudpod", MarkTrailingNg: &off}.Parse()
	require.NoError(t, err)
	assert.Equal(t, Transliteration{Orthography: Traditional, Virama: Pamudpod}, tr)

	tr, err = TransliterationFlags{}.Parse()
	require.NoError(t, err)
	assert.Equal(t, DefaultTransliteration(), tr)
}
