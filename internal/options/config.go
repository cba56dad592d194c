package options

import "errors"

// Normalization configures the foreign-word normalizer.
type Normalization struct {
	Language  Language
	Alphabet  Alphabet
	Diphthong DiphthongMode
	Cluster   ClusterMode
}

// Transliteration configures the Latin to Baybayin transliterator.
type Transliteration struct {
	Orthography Orthography
	Virama      Virama
	// MarkTrailingNg writes a word-final ng with a virama under Reformed.
	// Modern always marks it; Traditional never writes codas.
	MarkTrailingNg bool
}

func DefaultNormalization() Normalization {
	return Normalization{
		Language:  Spanish,
		Alphabet:  Abakada,
		Diphthong: DiphthongReformed,
		Cluster:   ClusterReformed,
	}
}

func DefaultTransliteration() Transliteration {
	return Transliteration{
		Orthography:    Reformed,
		Virama:         Krus,
		MarkTrailingNg: true,
	}
}

// NormalizationFlags holds the raw selector strings of a Normalization.
// Empty fields keep their default.
type NormalizationFlags struct {
	Language    string `json:"language,omitempty"`
	Orthography string `json:"orthography,omitempty"`
	Diphthong   string `json:"diphthong,omitempty"`
	Cluster     string `json:"cluster,omitempty"`
}

// TransliterationFlags holds the raw selector strings of a Transliteration.
// A nil MarkTrailingNg keeps the default.
type TransliterationFlags struct {
	Script         string `json:"script,omitempty"`
	Virama         string `json:"virama,omitempty"`
	MarkTrailingNg *bool  `json:"mark_trailing_ng,omitempty"`
}

// Parse resolves the selectors, reporting every invalid one.
func (f NormalizationFlags) Parse() (Normalization, error) {
	n := DefaultNormalization()
	var errs []error
	if f.Language != "" {
		v, err := ParseLanguage(f.Language)
		errs = append(errs, err)
		n.Language = v
	}
	if f.Orthography != "" {
		v, err := ParseAlphabet(f.Orthography)
		errs = append(errs, err)
		n.Alphabet = v
	}
	if f.Diphthong != "" {
		v, err := ParseDiphthong(f.Diphthong)
		errs = append(errs, err)
		n.Diphthong = v
	}
	if f.Cluster != "" {
		v, err := ParseCluster(f.Cluster)
		errs = append(errs, err)
		n.Cluster = v
	}
	if err := errors.Join(errs...); err != nil {
		return DefaultNormalization(), err
	}
	return n, nil
}

// Parse resolves the selectors, reporting every invalid one.
func (f TransliterationFlags) Parse() (Transliteration, error) {
	t := DefaultTransliteration()
	var errs []error
	if f.Script != "" {
		v, err := ParseOrthography(f.Script)
		errs = append(errs, err)
		t.Orthography = v
	}
	if f.Virama != "" {
		v, err := ParseVirama(f.Virama)
		errs = append(errs, err)
		t.Virama = v
	}
	if f.MarkTrailingNg != nil {
		t.MarkTrailingNg = *f.MarkTrailingNg
	}
	if err := errors.Join(errs...); err != nil {
		return DefaultTransliteration(), err
	}
	return t, nil
}
