// Package phonetics classifies single bytes of Latin text.
//
// Every predicate works on raw bytes. Bytes outside ASCII are never vowels,
// consonants, spaces or punctuation, so the lead and continuation bytes of a
// multi-byte UTF-8 sequence are always treated as part of a word.
package phonetics

// Lower lowercases an ASCII letter and returns every other byte unchanged.
func Lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}
	return c
}

// LowerASCII lowercases the ASCII letters of s in one pass.
// Multi-byte sequences are copied untouched.
func LowerASCII(s string) string {
	i := 0
	for i < len(s) && !(s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		b[i] = Lower(b[i])
	}
	return string(b)
}

// IsVowel reports whether c is a lowercase a, e, i, o or u.
func IsVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// IsConsonant reports whether c is a lowercase ASCII letter other than a vowel.
func IsConsonant(c byte) bool {
	return c >= 'a' && c <= 'z' && !IsVowel(c)
}

// IsLetter reports whether c is an ASCII letter of either case.
func IsLetter(c byte) bool {
	c = Lower(c)
	return c >= 'a' && c <= 'z'
}

// IsSpace reports whether c is ASCII whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsPunct reports whether c is ASCII punctuation or a symbol.
func IsPunct(c byte) bool {
	return (c >= '!' && c <= '/') ||
		(c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') ||
		(c >= '{' && c <= '~')
}

// IsWordBoundary reports whether c separates words.
func IsWordBoundary(c byte) bool {
	return IsSpace(c) || IsPunct(c)
}

// BoundaryAt reports whether position i of s lies outside a word: before the
// start, past the end, or on a boundary byte.
func BoundaryAt(s string, i int) bool {
	return i < 0 || i >= len(s) || IsWordBoundary(s[i])
}

// VowelAt reports whether s has a vowel at position i.
func VowelAt(s string, i int) bool {
	return i >= 0 && i < len(s) && IsVowel(s[i])
}

// ConsonantAt reports whether s has a consonant at position i.
func ConsonantAt(s string, i int) bool {
	return i >= 0 && i < len(s) && IsConsonant(s[i])
}

// ByteAt returns s[i], or 0 when i is out of range.
func ByteAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
