package assemble

import (
	"errors"
	"testing"

	"github.com/jjtimmons/contig/internal/align"
)

func TestAssemble(t *testing.T) {
	seq := "ATGGCGTACGTTAGCCTAGGATCCGATTACAGGCTTAACGGTACCATGCAGT"

	type args struct {
		fragments []string
		opts      Options
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"two overlapping fragments",
			args{
				[]string{"CTGGTAGCAGTAGCG", "AGTAGCGTTTAAAGC"},
				Options{},
			},
			"CTGGTAGCAGTAGCGTTTAAAGC",
		},
		{
			"three windows",
			args{
				[]string{seq[0:20], seq[12:34], seq[26:]},
				Options{Workers: 2},
			},
			seq,
		},
		{
			"three windows reversed",
			args{
				[]string{seq[26:], seq[12:34], seq[0:20]},
				Options{Workers: 1},
			},
			seq,
		},
		{
			"three windows shuffled",
			args{
				[]string{seq[12:34], seq[26:], seq[0:20]},
				Options{Workers: 8},
			},
			seq,
		},
		{
			"lower case and duplicate reads",
			args{
				[]string{"ctggtagcagtagcg", "AGTAGCGTTTAAAGC", "AGTAGCGTTTAAAGC\n"},
				Options{Scoring: align.DefaultNucleotide()},
			},
			"CTGGTAGCAGTAGCGTTTAAAGC",
		},
		{
			"repeated overlap",
			args{
				[]string{"TTGCAGTTGCAG", "GCAGAAAAC"},
				Options{},
			},
			"TTGCAGTTGCAGAAAAC",
		},
		{
			"single fragment",
			args{
				[]string{"GATTACA"},
				Options{},
			},
			"GATTACA",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assemble(tt.args.fragments, tt.args.opts)
			if err != nil {
				t.Fatalf("Assemble() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Assemble() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssemble_errors(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      error
	}{
		{"empty", nil, ErrEmptyPool},
		{"blank lines", []string{"", "  "}, ErrEmptyPool},
		{"no overlap", []string{"AAAAAAAA", "CCCCCCCC"}, ErrNoOverlap},
		{"contained fragment", []string{"ACGTACGTTT", "CGTACG"}, ErrNoOverlap},
		{"invalid symbol", []string{"ACGTN", "ACGTT"}, align.ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Assemble(tt.fragments, Options{}); !errors.Is(err, tt.want) {
				t.Errorf("Assemble() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func Test_endOverlap(t *testing.T) {
	type args struct {
		a    string
		b    string
		frag string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"a ends, b starts", args{"CTGGTAGCAGTAGCG", "AGTAGCGTTTAAAGC", "AGTAGCG"}, true},
		{"b ends, a starts", args{"AGTAGCGTTTAAAGC", "CTGGTAGCAGTAGCG", "AGTAGCG"}, true},
		{"internal", args{"ACGTACGTTT", "CGTACG", "CGTACG"}, false},
		{"empty fragment", args{"ACGT", "ACGT", ""}, false},
		{"gapped fragment", args{"ACGT", "ACGT", "AC-T"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := endOverlap(tt.args.a, tt.args.b, tt.args.frag); got != tt.want {
				t.Errorf("endOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_merge(t *testing.T) {
	type args struct {
		a    string
		b    string
		frag string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"a first", args{"CTGGTAGCAGTAGCG", "AGTAGCGTTTAAAGC", "AGTAGCG"}, "CTGGTAGCAGTAGCGTTTAAAGC"},
		{"b first", args{"AGTAGCGTTTAAAGC", "CTGGTAGCAGTAGCG", "AGTAGCG"}, "CTGGTAGCAGTAGCGTTTAAAGC"},
		{"same index keeps the longer", args{"ACG", "ACGTT", "ACG"}, "ACGTT"},
		{"repeat in a", args{"TTGCAGTTGCAG", "GCAGAAAAC", "GCAG"}, "TTGCAGTTGCAGAAAAC"},
		{"repeat in b", args{"GCAGAAAAC", "TTGCAGTTGCAG", "GCAG"}, "TTGCAGTTGCAGAAAAC"},
		{"contained", args{"CGTACG", "ACGTACGTTT", "CGTACG"}, "ACGTACGTTT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := merge(tt.args.a, tt.args.b, tt.args.frag); got != tt.want {
				t.Errorf("merge() = %v, want %v", got, tt.want)
			}
		})
	}
}
