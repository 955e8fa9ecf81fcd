// Package file reads sequences from and writes results to the local filesystem.
package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// ErrUnsupportedFormat is returned for a file extension that can't be read or written.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// reader parses the sequences out of one file format.
type reader func(r io.Reader) ([]string, error)

// readers by lower-cased file extension
var readers = map[string]reader{
	".txt":   readLines,
	".fa":    readFASTA,
	".fasta": readFASTA,
	".fna":   readFASTA,
	".fq":    readFASTQ,
	".fastq": readFASTQ,
}

// Load the sequences in a file, in order. The format is picked by the
// file's extension: .txt has one sequence per line, .fa/.fasta/.fna
// are FASTA and .fq/.fastq are FASTQ. Sequences are upper-cased and
// blank ones dropped.
func Load(path string) ([]string, error) {
	read, ok := readers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: %w (supported formats: txt, fasta, fastq)", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	seqs, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return seqs, nil
}

// LoadDNA loads the sequences of a file and joins them into one.
func LoadDNA(path string) (string, error) {
	seqs, err := Load(path)
	if err != nil {
		return "", err
	}
	if len(seqs) == 0 {
		return "", fmt.Errorf("failed to find a sequence in %s", path)
	}
	return strings.Join(seqs, ""), nil
}

// readLines reads one sequence per line.
func readLines(r io.Reader) ([]string, error) {
	var seqs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		seqs = appendSeq(seqs, sc.Text())
	}
	return seqs, sc.Err()
}

func readFASTA(r io.Reader) ([]string, error) {
	var seqs []string
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected FASTA record type %T", sc.Seq())
		}

		b := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			b[i] = byte(l)
		}
		seqs = appendSeq(seqs, string(b))
	}
	return seqs, sc.Error()
}

func readFASTQ(r io.Reader) ([]string, error) {
	var seqs []string
	sc := seqio.NewScanner(fastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.QSeq)
		if !ok {
			return nil, fmt.Errorf("unexpected FASTQ record type %T", sc.Seq())
		}

		b := make([]byte, len(s.Seq))
		for i, ql := range s.Seq {
			b[i] = byte(ql.L)
		}
		seqs = appendSeq(seqs, string(b))
	}
	return seqs, sc.Error()
}

// appendSeq adds the cleaned seq unless it is blank.
func appendSeq(seqs []string, seq string) []string {
	seq = strings.ToUpper(strings.TrimSpace(seq))
	if seq == "" {
		return seqs
	}
	return append(seqs, seq)
}
