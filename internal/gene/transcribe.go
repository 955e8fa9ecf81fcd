// Package gene finds open reading frames in DNA and translates them to proteins.
package gene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bebop/poly/transform"
)

var (
	// ErrInvalidThreshold is returned for a minimum protein length below 1.
	ErrInvalidThreshold = errors.New("minimum protein length must be at least 1")

	// ErrInvalidBase is returned for DNA with a character that isn't an
	// IUPAC nucleotide code.
	ErrInvalidBase = errors.New("invalid base")
)

const startCodon = "AUG"

var stopCodons = map[string]bool{
	"UAA": true,
	"UAG": true,
	"UGA": true,
}

// Transcript is the mRNA of both strands of a DNA sequence and the
// ORFs found on them.
type Transcript struct {
	// Forward is the mRNA of the forward strand
	Forward string

	// Reverse is the mRNA of the reverse complement. Empty when the
	// reverse strand wasn't scanned
	Reverse string

	// ORFs on the forward strand followed by those on the reverse
	ORFs []ORF
}

// Strand returns the ORFs on one strand.
func (t Transcript) Strand(s Strand) []ORF {
	var orfs []ORF
	for _, o := range t.ORFs {
		if o.Strand == s {
			orfs = append(orfs, o)
		}
	}
	return orfs
}

// Complement returns the reverse complement of dna, read 5' to 3'.
func Complement(dna string) string {
	return transform.ReverseComplement(strings.ToUpper(dna))
}

// checkBases returns ErrInvalidBase for the first character of dna
// without a complement.
func checkBases(dna string) error {
	for i := 0; i < len(dna); i++ {
		if transform.ComplementBase(rune(dna[i])) == ' ' {
			return fmt.Errorf("%w: %q at %d", ErrInvalidBase, dna[i], i)
		}
	}
	return nil
}

// MRNA transcribes a DNA strand by replacing T with U.
func MRNA(dna string) string {
	return strings.ReplaceAll(strings.ToUpper(dna), "T", "U")
}

// Transcribe finds the ORFs of dna that are long enough to encode
// minProteinLength amino acids, not counting the start and stop codons.
// The reverse strand is only scanned when includeReverse is set.
func Transcribe(dna string, includeReverse bool, minProteinLength int) (Transcript, error) {
	if minProteinLength < 1 {
		return Transcript{}, fmt.Errorf("%w: got %d", ErrInvalidThreshold, minProteinLength)
	}
	if err := checkBases(dna); err != nil {
		return Transcript{}, err
	}

	minLength := (minProteinLength + 2) * 3
	t := Transcript{Forward: MRNA(dna)}
	t.ORFs = append(t.ORFs, filter(FindORFs(t.Forward, Forward), minLength)...)

	if includeReverse {
		t.Reverse = MRNA(Complement(dna))
		t.ORFs = append(t.ORFs, filter(FindORFs(t.Reverse, Reverse), minLength)...)
	}

	return t, nil
}

// FindORFs scans the three reading frames of mrna for a start codon
// followed by an in-frame stop codon. Of the ORFs that end at the same
// stop codon, only the longest is kept. ORFs are sorted by position.
func FindORFs(mrna string, strand Strand) []ORF {
	type span struct{ start, end int }
	seen := make(map[span]bool)

	var orfs []ORF
	for frame := 0; frame < 3; frame++ {
		open := -1
		for i := frame; i+3 <= len(mrna); i += 3 {
			codon := mrna[i : i+3]
			if codon == startCodon && open < 0 {
				open = i
			}
			if stopCodons[codon] && open >= 0 {
				s := span{open, i + 3}
				if !seen[s] {
					seen[s] = true
					orfs = append(orfs, ORF{
						Strand: strand,
						Start:  s.start,
						End:    s.end,
						MRNA:   mrna[s.start:s.end],
					})
				}
				open = -1
			}
		}
	}

	sort.Slice(orfs, func(i, j int) bool {
		if orfs[i].Start != orfs[j].Start {
			return orfs[i].Start < orfs[j].Start
		}
		return orfs[i].End < orfs[j].End
	})
	return orfs
}

// filter removes ORFs shorter than minLength bases.
func filter(orfs []ORF, minLength int) []ORF {
	kept := orfs[:0]
	for _, o := range orfs {
		if o.End-o.Start >= minLength {
			kept = append(kept, o)
		}
	}
	return kept
}
