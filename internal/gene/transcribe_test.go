package gene

import (
	"errors"
	"reflect"
	"testing"
)

func TestComplement(t *testing.T) {
	tests := []struct {
		name string
		dna  string
		want string
	}{
		{"mixed", "AACCGGTTA", "TAACCGGTT"},
		{"lower case", "aacg", "CGTT"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Complement(tt.dna); got != tt.want {
				t.Errorf("Complement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMRNA(t *testing.T) {
	if got := MRNA("atgTTTtga"); got != "AUGUUUUGA" {
		t.Errorf("MRNA() = %v, want %v", got, "AUGUUUUGA")
	}
}

func TestFindORFs(t *testing.T) {
	tests := []struct {
		name string
		mrna string
		want []ORF
	}{
		{
			"nested starts collapse to the longest",
			"AUGAUGAAAUAGCCAUGUUUUGA",
			[]ORF{
				{Forward, 0, 12, "AUGAUGAAAUAG"},
				{Forward, 14, 23, "AUGUUUUGA"},
			},
		},
		{
			"offset frame",
			"CCAUGGCUGCUAAAUGGUAGCAUUAG",
			[]ORF{
				{Forward, 2, 20, "AUGGCUGCUAAAUGGUAG"},
			},
		},
		{
			"no stop",
			"AUGAAACCC",
			nil,
		},
		{
			"stop without start",
			"UAAUAGUGA",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindORFs(tt.mrna, Forward); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindORFs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranscribe(t *testing.T) {
	six := "ATG" + "GCTGCTGCTGCTGCTGCT" + "TAA"

	type args struct {
		dna              string
		includeReverse   bool
		minProteinLength int
	}
	tests := []struct {
		name string
		args args
		want []ORF
	}{
		{
			"six residue ORF kept",
			args{"CC" + six + "GG", false, 6},
			[]ORF{{Forward, 2, 26, "AUGGCUGCUGCUGCUGCUGCUUAA"}},
		},
		{
			"six residue ORF below seven",
			args{"CC" + six + "GG", false, 7},
			nil,
		},
		{
			"six residue ORF below twenty five",
			args{"CC" + six + "GG", true, 25},
			nil,
		},
		{
			"reverse strand",
			args{"GTTAAGCAGCAGCAGCAGCAGCCATCC", true, 1},
			[]ORF{{Reverse, 2, 26, "AUGGCUGCUGCUGCUGCUGCUUAA"}},
		},
		{
			"reverse strand skipped",
			args{"GTTAAGCAGCAGCAGCAGCAGCCATCC", false, 1},
			nil,
		},
		{
			"both strands",
			args{"ATGAAACCCGGGTTTAAACCCGGGTAAGGATGCATGCCCTGACCC", true, 1},
			[]ORF{
				{Forward, 0, 27, "AUGAAACCCGGGUUUAAACCCGGGUAA"},
				{Forward, 33, 42, "AUGCCCUGA"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transcribe(tt.args.dna, tt.args.includeReverse, tt.args.minProteinLength)
			if err != nil {
				t.Fatalf("Transcribe() error = %v", err)
			}
			if !reflect.DeepEqual(got.ORFs, tt.want) {
				t.Errorf("Transcribe() = %v, want %v", got.ORFs, tt.want)
			}
			if tt.args.includeReverse != (got.Reverse != "") {
				t.Errorf("Transcribe() reverse mRNA = %q with includeReverse %v", got.Reverse, tt.args.includeReverse)
			}
		})
	}
}

func TestTranscribe_threshold(t *testing.T) {
	for _, n := range []int{0, -1, -20} {
		if _, err := Transcribe("ATGTAA", true, n); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("Transcribe(%d) error = %v, want %v", n, err, ErrInvalidThreshold)
		}
	}

	if _, err := Transcribe("ATGTAA", true, 1); err != nil {
		t.Errorf("Transcribe(1) error = %v", err)
	}
}

func TestTranscribe_bases(t *testing.T) {
	tests := []struct {
		name    string
		dna     string
		wantErr error
	}{
		{"acgt", "ATGGCTTAA", nil},
		{"lower case", "atggcttaa", nil},
		{"ambiguity codes", "ATGNNRYTAA", nil},
		{"empty", "", nil},
		{"digit", "ATG1CTTAA", ErrInvalidBase},
		{"whitespace", "ATG CTTAA", ErrInvalidBase},
		{"rna", "AUGGCUUAA", ErrInvalidBase},
		{"multibyte", "ATGéTAA", ErrInvalidBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transcribe(tt.dna, false, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Transcribe() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTranscript_Strand(t *testing.T) {
	tr := Transcript{ORFs: []ORF{
		{Forward, 0, 9, "AUGUUUUGA"},
		{Reverse, 3, 12, "AUGAAAUAA"},
	}}

	if got := tr.Strand(Reverse); !reflect.DeepEqual(got, tr.ORFs[1:]) {
		t.Errorf("Transcript.Strand() = %v, want %v", got, tr.ORFs[1:])
	}
}
