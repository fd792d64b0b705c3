package wordlist

import (
	"fmt"

	"github.com/verte-zerg/typefast/internal/generator"
)

// Source samples passages from a fixed corpus.
type Source struct {
	words []string
	gen   *generator.Generator
}

// NewSource normalizes words and returns a Source over them.
func NewSource(words []string, gen *generator.Generator) (*Source, error) {
	cleaned := Normalize(words, ASCIILetters)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("word list has no usable words")
	}
	return &Source{words: cleaned, gen: gen}, nil
}

// Len returns the corpus size.
func (s *Source) Len() int {
	return len(s.words)
}

// Sample returns count distinct corpus words, or the whole corpus shuffled
// when count is larger.
func (s *Source) Sample(count int) []string {
	return s.gen.Sample(s.words, count)
}
