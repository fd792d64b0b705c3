package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Normalize lowercases words and keeps those passing filter.
func Normalize(words []string, filter FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if filter(w) {
			out = append(out, w)
		}
	}
	return out
}

// ASCIILetters keeps non-empty words made only of a-z.
func ASCIILetters(word string) bool {
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
