package gene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bebop/poly/synthesis/codon"
)

// ErrInvalidCodon is returned when translation reaches a triplet that
// isn't in the codon table.
var ErrInvalidCodon = errors.New("invalid codon")

// stop is the codon table's symbol for a stop codon
const stop = '*'

// codons maps mRNA triplets to amino acids by the standard genetic code
var codons = mrnaCodons(codon.NewTranslationTable(1).TranslationMap)

// mrnaCodons re-keys a DNA codon table by mRNA triplet.
func mrnaCodons(table map[string]string) map[string]byte {
	m := make(map[string]byte, len(table))
	for triplet, aa := range table {
		if aa == "" {
			continue
		}
		m[strings.ReplaceAll(triplet, "T", "U")] = aa[0]
	}
	return m
}

// Translate mrna to amino acids, three bases at a time from the first.
// AUG is skipped wherever it appears and the first stop codon ends the
// protein.
func Translate(mrna string) (string, error) {
	mrna = strings.ToUpper(mrna)

	var protein strings.Builder
	for i := 0; i < len(mrna); i += 3 {
		codon := mrna[i:min(i+3, len(mrna))]
		if codon == startCodon {
			continue
		}

		aa, ok := codons[codon]
		if !ok {
			return "", fmt.Errorf("%w %q at %d", ErrInvalidCodon, codon, i)
		}
		if aa == stop {
			break
		}
		protein.WriteByte(aa)
	}

	return protein.String(), nil
}

// TranslateORFs translates each ORF into a Protein.
func TranslateORFs(orfs []ORF) ([]Protein, error) {
	proteins := make([]Protein, 0, len(orfs))
	for _, o := range orfs {
		seq, err := Translate(o.MRNA)
		if err != nil {
			return nil, fmt.Errorf("failed to translate %s ORF %s: %w", o.Strand, o.Position(), err)
		}

		proteins = append(proteins, Protein{
			Strand:   o.Strand,
			Start:    o.Start,
			End:      o.End,
			Sequence: seq,
		})
	}
	return proteins, nil
}

// Join pairs each protein with its matches, looked up by amino acid sequence.
func Join(proteins []Protein, matches map[string][]string) []Prediction {
	predictions := make([]Prediction, 0, len(proteins))
	for _, p := range proteins {
		predictions = append(predictions, Prediction{
			Protein: p,
			Matches: matches[p.Sequence],
		})
	}
	return predictions
}
