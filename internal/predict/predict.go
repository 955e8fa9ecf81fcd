// Package predict runs reads through assembly, ORF finding, translation
// and an optional protein search.
package predict

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jjtimmons/contig/internal/assemble"
	"github.com/jjtimmons/contig/internal/gene"
)

// Searcher finds known proteins similar to each query.
type Searcher interface {
	SearchAll(ctx context.Context, queries []string) (map[string][]string, error)
}

// Options for a prediction run.
type Options struct {
	// Assembly settings
	Assembly assemble.Options

	// IncludeReverse scans the reverse strand for ORFs too
	IncludeReverse bool

	// MinProteinLength is the fewest amino acids an ORF has to encode
	MinProteinLength int

	// Searcher for similar proteins. Searching is skipped when nil
	Searcher Searcher

	// Logger for progress. Defaults to log.Default
	Logger *log.Logger
}

// Result of a prediction run.
type Result struct {
	// Contig assembled from the reads
	Contig string

	// Transcript of the contig
	Transcript gene.Transcript

	// Proteins translated from the transcript's ORFs
	Proteins []gene.Protein

	// Predictions are the proteins joined with search matches. Empty
	// when no Searcher was set
	Predictions []gene.Prediction
}

// Run assembles reads into a contig, finds the contig's ORFs, translates
// them and, with a Searcher, looks up similar proteins for each.
func Run(ctx context.Context, reads []string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Assembly.Logger == nil {
		opts.Assembly.Logger = logger
	}

	contig, err := assemble.Assemble(reads, opts.Assembly)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble %d reads: %w", len(reads), err)
	}
	logger.Info("assembled contig", "reads", len(reads), "length", len(contig))

	transcript, err := gene.Transcribe(contig, opts.IncludeReverse, opts.MinProteinLength)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe contig: %w", err)
	}
	logger.Info("found ORFs", "forward", len(transcript.Strand(gene.Forward)), "reverse", len(transcript.Strand(gene.Reverse)))

	proteins, err := gene.TranslateORFs(transcript.ORFs)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Contig:     contig,
		Transcript: transcript,
		Proteins:   proteins,
	}
	if opts.Searcher == nil || len(proteins) == 0 {
		return result, nil
	}

	queries := make([]string, len(proteins))
	for i, p := range proteins {
		queries[i] = p.Sequence
	}
	matches, err := opts.Searcher.SearchAll(ctx, queries)
	if err != nil {
		return nil, fmt.Errorf("failed to search proteins: %w", err)
	}
	result.Predictions = gene.Join(proteins, matches)

	return result, nil
}
