// Package wordlist provides word list filtering helpers.
package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a filter for the given language. Race words are ASCII
// only, so every language rejects bytes outside the printable ASCII range;
// "en" further restricts words to lowercase letters.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en", "":
		return filterEnglishASCII
	default:
		return filterPrintableASCII
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

func filterPrintableASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch <= ' ' || ch > '~' {
			return false
		}
	}
	return true
}
