// Package options holds the configuration shared by the normalizer and the
// transliterator. Values are chosen once per invocation and never change
// while a line is being processed.
package options

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownValue is returned when a selector string names no known value.
var ErrUnknownValue = errors.New("unknown value")

// Language is the source language a loanword is borrowed from.
type Language int

const (
	Spanish Language = iota
	English
)

// Alphabet is the Latin orthography the normalizer writes into.
type Alphabet int

const (
	// Abakada is the 20-letter native alphabet (no standalone f, v, z, x, j, c, q).
	Abakada Alphabet = iota
	// Alpabetong is the 28-letter modern Filipino alphabet.
	Alpabetong
)

// DiphthongMode selects contraction or glide expansion of vowel pairs.
type DiphthongMode int

const (
	DiphthongTraditional DiphthongMode = iota
	DiphthongReformed
)

// ClusterMode selects whether word-initial consonant clusters are broken up.
type ClusterMode int

const (
	ClusterTraditional ClusterMode = iota
	ClusterReformed
)

// Orthography is the Baybayin writing convention used by the transliterator.
type Orthography int

const (
	// Traditional drops syllable-final consonants.
	Traditional Orthography = iota
	// Reformed writes syllable-final consonants with a virama.
	Reformed
	// Modern is Reformed plus the dedicated ra glyph and unconditional
	// marking of a trailing ng.
	Modern
)

// Virama is the mark that cancels a consonant's inherent vowel.
type Virama int

const (
	Krus Virama = iota
	Pamudpod
)

var (
	languageNames    = map[string]Language{"spanish": Spanish, "english": English}
	alphabetNames    = map[string]Alphabet{"abakada": Abakada, "alpabetong": Alpabetong}
	diphthongNames   = map[string]DiphthongMode{"traditional": DiphthongTraditional, "reformed": DiphthongReformed}
	clusterNames     = map[string]ClusterMode{"traditional": ClusterTraditional, "reformed": ClusterReformed}
	orthographyNames = map[string]Orthography{"traditional": Traditional, "reformed": Reformed, "modern": Modern}
	viramaNames      = map[string]Virama{"krus": Krus, "pamudpod": Pamudpod}
)

func (l Language) String() string      { return nameOf(languageNames, l) }
func (a Alphabet) String() string      { return nameOf(alphabetNames, a) }
func (d DiphthongMode) String() string { return nameOf(diphthongNames, d) }
func (c ClusterMode) String() string   { return nameOf(clusterNames, c) }
func (o Orthography) String() string   { return nameOf(orthographyNames, o) }
func (v Virama) String() string        { return nameOf(viramaNames, v) }

func ParseLanguage(s string) (Language, error) { return parse(languageNames, "language", s) }
func ParseAlphabet(s string) (Alphabet, error) { return parse(alphabetNames, "orthography", s) }
func ParseDiphthong(s string) (DiphthongMode, error) {
	return parse(diphthongNames, "diphthong mode", s)
}
func ParseCluster(s string) (ClusterMode, error) {
	return parse(clusterNames, "initial cluster mode", s)
}
func ParseOrthography(s string) (Orthography, error) {
	return parse(orthographyNames, "script orthography", s)
}
func ParseVirama(s string) (Virama, error) { return parse(viramaNames, "virama style", s) }

// Selector values in display order, for flag help and TUI cycling.
var (
	LanguageValues    = []string{"spanish", "english"}
	AlphabetValues    = []string{"abakada", "alpabetong"}
	DiphthongValues   = []string{"reformed", "traditional"}
	ClusterValues     = []string{"reformed", "traditional"}
	OrthographyValues = []string{"reformed", "traditional", "modern"}
	ViramaValues      = []string{"krus", "pamudpod"}
)

func parse[T comparable](names map[string]T, what, s string) (T, error) {
	if v, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	var zero T
	valid := lo.Keys(names)
	slices.Sort(valid)
	return zero, fmt.Errorf("%w for %s: %q (want one of %s)", ErrUnknownValue, what, s, strings.Join(valid, ", "))
}

func nameOf[T comparable](names map[string]T, v T) string {
	if name, ok := lo.FindKey(names, v); ok {
		return name
	}
	return fmt.Sprintf("%T(%d)", v, v)
}
