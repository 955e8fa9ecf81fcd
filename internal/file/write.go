package file

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bebop/poly/seqhash"
)

// fastaWidth is the number of bases per line of a written FASTA file
const fastaWidth = 80

// delimiters of table files by extension
var delimiters = map[string]rune{
	".csv": ',',
	".tsv": '\t',
	".txt": ' ',
}

// WriteSequence writes seq to path, as a bare line for .txt or as a FASTA
// record named by the sequence's seqhash for .fa/.fasta/.fna.
func WriteSequence(path, seq string) error {
	var out string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		out = seq + "\n"
	case ".fa", ".fasta", ".fna":
		name, err := seqhash.Hash(seq, "DNA", false, true)
		if err != nil {
			return fmt.Errorf("failed to hash sequence: %v", err)
		}
		out = FASTA(name, seq)
	default:
		return fmt.Errorf("failed to write %s: %w (supported formats: txt, fasta)", path, ErrUnsupportedFormat)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	return nil
}

// FASTA formats a single record with lines of at most 80 bases.
func FASTA(name, seq string) string {
	var b strings.Builder
	b.WriteString(">" + name + "\n")
	for i := 0; i < len(seq); i += fastaWidth {
		b.WriteString(seq[i:min(i+fastaWidth, len(seq))] + "\n")
	}
	return b.String()
}

// Row is a record that can be written as one line of a table.
type Row interface {
	Row() []string
}

// WriteTable writes rows to path without a header. Fields are separated
// by ',' for .csv, a tab for .tsv and a space for .txt.
func WriteTable[T Row](path string, rows []T) error {
	delim, ok := delimiters[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("failed to write %s: %w (supported formats: csv, tsv, txt)", path, ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delim
	for _, r := range rows {
		if err := w.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write %s: %v", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	return f.Close()
}
