// Package generator supplies random race words.
package generator

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator draws words uniformly from a fixed dictionary.
type Generator struct {
	rnd   *rand.Rand
	words []string
}

// New returns a Generator over words seeded with the current time.
func New(words []string) (*Generator, error) {
	return NewSeeded(words, time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(words []string, seed int64) (*Generator, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary is empty")
	}
	dict := make([]string, len(words))
	copy(dict, words)
	return &Generator{rnd: rand.New(rand.NewSource(seed)), words: dict}, nil
}

// NextWords returns n words chosen uniformly with replacement.
func (g *Generator) NextWords(n int) []string {
	if n <= 0 {
		return nil
	}
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, g.words[g.rnd.Intn(len(g.words))])
	}
	return result
}
