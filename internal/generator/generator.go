// Package generator builds typing text sequences.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws randomized word sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Sample picks count words without replacement. When count exceeds the
// corpus, every word is returned once in shuffled order.
func (g *Generator) Sample(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return nil
	}
	if count > len(words) {
		count = len(words)
	}
	pool := make([]string, len(words))
	copy(pool, words)
	// Partial Fisher-Yates: the first count slots end up uniformly sampled.
	for i := 0; i < count; i++ {
		j := i + g.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}
