package transliteration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jusunglee/baybayin/internal/options"
)

func traditional() options.Transliteration {
	t := options.DefaultTransliteration()
	t.Orthography = options.Traditional
	return t
}

func reformed() options.Transliteration {
	return options.DefaultTransliteration()
}

func modern() options.Transliteration {
	t := options.DefaultTransliteration()
	t.Orthography = options.Modern
	return t
}

type testCase struct {
	latin, baybayin string
}

// Open syllables and lone vowels read the same in every orthography.
var syllables = []testCase{
	{"ba", "ᜊ"}, {"be", "ᜊᜒ"}, {"bi", "ᜊᜒ"}, {"bo", "ᜊᜓ"}, {"bu", "ᜊᜓ"},
	{"ka", "ᜃ"}, {"ke", "ᜃᜒ"}, {"ki", "ᜃᜒ"}, {"ko", "ᜃᜓ"}, {"ku", "ᜃᜓ"},
	{"ga", "ᜄ"}, {"ge", "ᜄᜒ"}, {"gi", "ᜄᜒ"}, {"go", "ᜄᜓ"}, {"gu", "ᜄᜓ"},
	{"ra", "ᜇ"}, {"re", "ᜇᜒ"}, {"ri", "ᜇᜒ"}, {"ro", "ᜇᜓ"}, {"ru", "ᜇᜓ"},
	{"da", "ᜇ"}, {"de", "ᜇᜒ"}, {"di", "ᜇᜒ"}, {"do", "ᜇᜓ"}, {"du", "ᜇᜓ"},
	{"ha", "ᜑ"}, {"he", "ᜑᜒ"}, {"hi", "ᜑᜒ"}, {"ho", "ᜑᜓ"}, {"hu", "ᜑᜓ"},
	{"la", "ᜎ"}, {"le", "ᜎᜒ"}, {"li", "ᜎᜒ"}, {"lo", "ᜎᜓ"}, {"lu", "ᜎᜓ"},
	{"ma", "ᜋ"}, {"me", "ᜋᜒ"}, {"mi", "ᜋᜒ"}, {"mo", "ᜋᜓ"}, {"mu", "ᜋᜓ"},
	{"na", "ᜈ"}, {"ne", "ᜈᜒ"}, {"ni", "ᜈᜒ"}, {"no", "ᜈᜓ"}, {"nu", "ᜈᜓ"},
	{"nga", "ᜅ"}, {"nge", "ᜅᜒ"}, {"ngi", "ᜅᜒ"}, {"ngo", "ᜅᜓ"}, {"ngu", "ᜅᜓ"},
	{"pa", "ᜉ"}, {"pe", "ᜉᜒ"}, {"pi", "ᜉᜒ"}, {"po", "ᜉᜓ"}, {"pu", "ᜉᜓ"},
	{"sa", "ᜐ"}, {"se", "ᜐᜒ"}, {"si", "ᜐᜒ"}, {"so", "ᜐᜓ"}, {"su", "ᜐᜓ"},
	{"ta", "ᜆ"}, {"te", "ᜆᜒ"}, {"ti", "ᜆᜒ"}, {"to", "ᜆᜓ"}, {"tu", "ᜆᜓ"},
	{"wa", "ᜏ"}, {"we", "ᜏᜒ"}, {"wi", "ᜏᜒ"}, {"wo", "ᜏᜓ"}, {"wu", "ᜏᜓ"},
	{"ya", "ᜌ"}, {"ye", "ᜌᜒ"}, {"yi", "ᜌᜒ"}, {"yo", "ᜌᜓ"}, {"yu", "ᜌᜓ"},
	{"a", "ᜀ"}, {"e", "ᜁ"}, {"i", "ᜁ"}, {"o", "ᜂ"}, {"u", "ᜂ"},
}

var bareConsonants = []testCase{
	{"b", "ᜊ᜔"}, {"k", "ᜃ᜔"}, {"g", "ᜄ᜔"}, {"d", "ᜇ᜔"}, {"h", "ᜑ᜔"},
	{"l", "ᜎ᜔"}, {"m", "ᜋ᜔"}, {"n", "ᜈ᜔"}, {"ng", "ᜅ᜔"}, {"p", "ᜉ᜔"},
	{"s", "ᜐ᜔"}, {"t", "ᜆ᜔"}, {"w", "ᜏ᜔"}, {"y", "ᜌ᜔"},
}

var vocabulary = []struct {
	latin, traditional, reformed string
}{
	{"baybayin", "ᜊᜊᜌᜒ", "ᜊᜌ᜔ᜊᜌᜒᜈ᜔"},
	{"basa", "ᜊᜐ", "ᜊᜐ"},
	{"basag", "ᜊᜐ", "ᜊᜐᜄ᜔"},
	{"bansa", "ᜊᜐ", "ᜊᜈ᜔ᜐ"},
	{"bagsak", "ᜊᜐ", "ᜊᜄ᜔ᜐᜃ᜔"},
	{"pagmamahal", "ᜉᜋᜋᜑ", "ᜉᜄ᜔ᜋᜋᜑᜎ᜔"},
	{"bahay", "ᜊᜑ", "ᜊᜑᜌ᜔"},
	{"kulog", "ᜃᜓᜎᜓ", "ᜃᜓᜎᜓᜄ᜔"},
	{"akin", "ᜀᜃᜒ", "ᜀᜃᜒᜈ᜔"},
	{"paano", "ᜉᜀᜈᜓ", "ᜉᜀᜈᜓ"},
	{"kabuuan", "ᜃᜊᜓᜂᜀ", "ᜃᜊᜓᜂᜀᜈ᜔"},
	{"naiwan", "ᜈᜁᜏ", "ᜈᜁᜏᜈ᜔"},
	{"opo", "ᜂᜉᜓ", "ᜂᜉᜓ"},
	{"nang", "ᜈ", "ᜈᜅ᜔"},
	{"manga", "ᜋᜅ", "ᜋᜅ"},
}

func TestSyllables(t *testing.T) {
	for _, opts := range []options.Transliteration{traditional(), reformed(), modern()} {
		for _, tt := range syllables {
			if opts.Orthography == options.Modern && tt.latin[0] == 'r' {
				continue
			}
			assert.Equal(t, tt.baybayin, Transliterate(tt.latin, opts), "%s %q", opts.Orthography, tt.latin)
		}
	}
}

func TestBareConsonants(t *testing.T) {
	for _, tt := range bareConsonants {
		assert.Equal(t, tt.baybayin, Transliterate(tt.latin, reformed()), tt.latin)
		assert.Empty(t, Transliterate(tt.latin, traditional()), tt.latin)
	}
}

func TestVocabulary(t *testing.T) {
	for _, tt := range vocabulary {
		t.Run(tt.latin, func(t *testing.T) {
			assert.Equal(t, tt.traditional, Transliterate(tt.latin, traditional()))
			assert.Equal(t, tt.reformed, Transliterate(tt.latin, reformed()))
		})
	}
}

func TestWords(t *testing.T) {
	tests := []testCase{
		{"bata", "ᜊᜆ"},
		{"bundok", "ᜊᜓᜈ᜔ᜇᜓᜃ᜔"},
		{"sakít", "ᜐᜃ᜔íᜆ᜔"},
		{"gandî", "ᜄᜈ᜔ᜇ᜔î"},
		{"ngipin", "ᜅᜒᜉᜒᜈ᜔"},
		{"ruro", "ᜇᜓᜇᜓ"},
		{"buwan", "ᜊᜓᜏᜈ᜔"},
		{"hiling", "ᜑᜒᜎᜒᜅ᜔"},
		{"langit", "ᜎᜅᜒᜆ᜔"},
		{"Bata", "ᜊᜆ"},
		{"kirist", "ᜃᜒᜇᜒᜐ᜔ᜆ᜔"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.baybayin, Transliterate(tt.latin, reformed()), tt.latin)
	}
}

func TestRAndDShareAGlyph(t *testing.T) {
	for _, opts := range []options.Transliteration{traditional(), reformed()} {
		assert.Equal(t, Transliterate("daro", opts), Transliterate("rado", opts))
	}
	assert.Equal(t, "ᜍᜓᜐ", Transliterate("rosa", modern()))
	assert.Equal(t, "ᜊᜍ᜔", Transliterate("bar", modern()))
}

func TestPamudpod(t *testing.T) {
	opts := reformed()
	opts.Virama = options.Pamudpod
	assert.Equal(t, "ᜊᜈ᜴ᜐ", Transliterate("bansa", opts))
	assert.Equal(t, "ᜈᜅ᜴", Transliterate("nang", opts))
}

func TestTrailingNg(t *testing.T) {
	opts := reformed()
	opts.MarkTrailingNg = false
	assert.Equal(t, "ᜈ", Transliterate("nang", opts))
	assert.Equal(t, "ᜊᜅ᜔ᜃ", Transliterate("bangka", opts), "only word-final ng is affected")
	assert.Equal(t, "ᜅ᜔", Transliterate("ng", opts), "a bare ng is kept")

	m := modern()
	m.MarkTrailingNg = false
	assert.Equal(t, "ᜈᜅ᜔", Transliterate("nang", m))

	assert.Equal(t, "ᜈ", Transliterate("nang", traditional()))
}

func TestNgIsNeverSplit(t *testing.T) {
	assert.Equal(t, "ᜅ", Transliterate("nga", reformed()))
	assert.NotContains(t, Transliterate("ngipin", reformed()), "ᜈ᜔ᜄ")
}

func TestPassthroughAndWhitespace(t *testing.T) {
	assert.Equal(t, "ᜊᜑᜌ᜔, ᜃᜓᜊᜓ!", Transliterate("  bahay,   kubo! ", reformed()))
	assert.Equal(t, "123 ᜐ᜔ᜈ", Transliterate("123\tsna", reformed()))
	assert.Equal(t, "f", Transliterate("f", modern()))
	assert.Equal(t, "", Transliterate("", reformed()))
	assert.Equal(t, "ᜀ ᜁ", Transliterate("A\nI", reformed()))
}
