// Package naming derives the symbol and path forms of a user-supplied
// artifact name.
package naming

import (
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirstLetter returns s with its first character upper-cased,
// e.g. "sampleName" → "SampleName". The remainder of s is left untouched.
func CapitalizeFirstLetter(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

// LowercaseFirstLetter returns s with its first character lower-cased,
// e.g. "DemoName" → "demoName".
func LowercaseFirstLetter(s string) string {
	return mapFirst(s, unicode.ToLower)
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(fn(r)) + s[size:]
}
