package gene

import (
	"fmt"
	"strings"
)

// Strand is the DNA strand an ORF was found on.
type Strand int

const (
	// Forward is the assembled sequence itself
	Forward Strand = iota

	// Reverse is the reverse complement of the assembled sequence
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "reverse"
	}
	return "forward"
}

// ORF is an open reading frame on one strand's mRNA. Start and End are
// offsets into that mRNA, End exclusive.
type ORF struct {
	Strand Strand
	Start  int
	End    int
	MRNA   string
}

// Position is the ORF's range as "start-end".
func (o ORF) Position() string {
	return fmt.Sprintf("%d-%d", o.Start, o.End)
}

// Row is the ORF as a table row: strand, position and mRNA.
func (o ORF) Row() []string {
	return []string{o.Strand.String(), o.Position(), o.MRNA}
}

// Protein is the translation of an ORF.
type Protein struct {
	Strand   Strand
	Start    int
	End      int
	Sequence string
}

// Position is the range of the protein's ORF as "start-end".
func (p Protein) Position() string {
	return fmt.Sprintf("%d-%d", p.Start, p.End)
}

// Row is the protein as a table row: strand, position and amino acids.
func (p Protein) Row() []string {
	return []string{p.Strand.String(), p.Position(), p.Sequence}
}

// Prediction is a protein and the names of similar, known proteins.
type Prediction struct {
	Protein
	Matches []string
}

// Row is the prediction as a table row: the protein's row and its
// matches separated by ';'.
func (p Prediction) Row() []string {
	return append(p.Protein.Row(), strings.Join(p.Matches, ";"))
}
