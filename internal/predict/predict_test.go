package predict

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jjtimmons/contig/internal/assemble"
	"github.com/jjtimmons/contig/internal/gene"
)

type fakeSearcher struct {
	queries []string
	matches map[string][]string
	err     error
}

func (f *fakeSearcher) SearchAll(ctx context.Context, queries []string) (map[string][]string, error) {
	f.queries = queries
	return f.matches, f.err
}

// reads cut from CCATGCTGAGCATTCGTAACGCCTGGTAGTC
var reads = []string{
	"CCATGCTGAGCATT",
	"AGCATTCGTAACGC",
	"TAACGCCTGGTAGTC",
}

func TestRun(t *testing.T) {
	searcher := &fakeSearcher{matches: map[string][]string{"LSIRNAW": {"1ABC_A"}}}

	got, err := Run(context.Background(), reads, Options{
		Assembly:         assemble.Options{Workers: 2},
		IncludeReverse:   true,
		MinProteinLength: 1,
		Searcher:         searcher,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got.Contig != "CCATGCTGAGCATTCGTAACGCCTGGTAGTC" {
		t.Errorf("Run().Contig = %v", got.Contig)
	}

	wantProteins := []gene.Protein{{Strand: gene.Forward, Start: 2, End: 29, Sequence: "LSIRNAW"}}
	if !reflect.DeepEqual(got.Proteins, wantProteins) {
		t.Errorf("Run().Proteins = %v, want %v", got.Proteins, wantProteins)
	}

	wantPredictions := []gene.Prediction{{Protein: wantProteins[0], Matches: []string{"1ABC_A"}}}
	if !reflect.DeepEqual(got.Predictions, wantPredictions) {
		t.Errorf("Run().Predictions = %v, want %v", got.Predictions, wantPredictions)
	}
	if !reflect.DeepEqual(searcher.queries, []string{"LSIRNAW"}) {
		t.Errorf("Run() searched %v", searcher.queries)
	}
}

func TestRun_noSearcher(t *testing.T) {
	got, err := Run(context.Background(), reads, Options{MinProteinLength: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Proteins) != 1 || got.Predictions != nil {
		t.Errorf("Run() = %+v, want one protein and no predictions", got)
	}
}

func TestRun_errors(t *testing.T) {
	searchErr := errors.New("offline")

	tests := []struct {
		name  string
		reads []string
		opts  Options
		want  error
	}{
		{"no overlap", []string{"AAAAAAAA", "CCCCCCCC"}, Options{MinProteinLength: 1}, assemble.ErrNoOverlap},
		{"threshold", reads, Options{MinProteinLength: 0}, gene.ErrInvalidThreshold},
		{"search", reads, Options{MinProteinLength: 1, Searcher: &fakeSearcher{err: searchErr}}, searchErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(context.Background(), tt.reads, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}
