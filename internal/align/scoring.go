// Package align scores and aligns pairs of sequences with a local,
// start-anchored variant of Smith-Waterman.
package align

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned when a sequence holds a character
// that is missing from a Scoring's alphabet.
var ErrInvalidSymbol = errors.New("invalid symbol")

// Scoring is a symmetric substitution table over an alphabet and a
// single gap penalty used for insertions and deletions alike.
type Scoring struct {
	// Name of the scoring model, for logging
	Name string

	// Gap is the penalty added for each gapped position. Negative.
	Gap int

	alphabet string

	// index of each byte in the alphabet, -1 if absent
	index [256]int

	matrix [][]int
}

// NewScoring creates a Scoring over alphabet. score is called once per
// unordered pair of symbols (a <= b) to fill the table.
func NewScoring(name, alphabet string, gap int, score func(a, b byte) int) (*Scoring, error) {
	if alphabet == "" {
		return nil, fmt.Errorf("scoring model %q has an empty alphabet", name)
	}

	s := &Scoring{Name: name, Gap: gap, alphabet: alphabet}
	for i := range s.index {
		s.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		if s.index[alphabet[i]] != -1 {
			return nil, fmt.Errorf("scoring model %q has a duplicate symbol %q", name, alphabet[i])
		}
		s.index[alphabet[i]] = i
	}

	s.matrix = make([][]int, len(alphabet))
	for i := range s.matrix {
		s.matrix[i] = make([]int, len(alphabet))
	}
	for i := 0; i < len(alphabet); i++ {
		for j := i; j < len(alphabet); j++ {
			a, b := alphabet[i], alphabet[j]
			if a > b {
				a, b = b, a
			}
			v := score(a, b)
			s.matrix[i][j] = v
			s.matrix[j][i] = v
		}
	}

	return s, nil
}

// Nucleotide returns a DNA scoring model that gives match to identical
// bases and mismatch to every other pair.
func Nucleotide(match, mismatch, gap int) *Scoring {
	s, _ := NewScoring("nucleotide", "ACGT", gap, func(a, b byte) int {
		if a == b {
			return match
		}
		return mismatch
	})
	return s
}

// DefaultNucleotide is the DNA model used for assembly: +1 for a match,
// -4 for a mismatch and -4 for a gap.
func DefaultNucleotide() *Scoring {
	return Nucleotide(1, -4, -4)
}

// Alphabet returns the symbols the model can score.
func (s *Scoring) Alphabet() string {
	return s.alphabet
}

// Score returns the substitution score of a against b.
func (s *Scoring) Score(a, b byte) (int, error) {
	i, j := s.index[a], s.index[b]
	if i < 0 {
		return 0, fmt.Errorf("%w %q for %s scoring", ErrInvalidSymbol, a, s.Name)
	}
	if j < 0 {
		return 0, fmt.Errorf("%w %q for %s scoring", ErrInvalidSymbol, b, s.Name)
	}
	return s.matrix[i][j], nil
}

// Check returns an error for the first character of seq the model can't score.
func (s *Scoring) Check(seq string) error {
	for i := 0; i < len(seq); i++ {
		if s.index[seq[i]] < 0 {
			return fmt.Errorf("%w %q at position %d for %s scoring", ErrInvalidSymbol, seq[i], i, s.Name)
		}
	}
	return nil
}

// score is Score without the lookup checks, for sequences that passed Check.
func (s *Scoring) score(a, b byte) int {
	return s.matrix[s.index[a]][s.index[b]]
}
