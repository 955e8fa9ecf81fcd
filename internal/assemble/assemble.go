// Package assemble merges overlapping sequence fragments into a contig.
package assemble

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jjtimmons/contig/internal/align"
)

var (
	// ErrEmptyPool is returned when there are no fragments to assemble.
	ErrEmptyPool = errors.New("no fragments to assemble")

	// ErrNoOverlap is returned when no two fragments of the pool overlap
	// at their ends, so the pool can't shrink.
	ErrNoOverlap = errors.New("no end overlap between fragments")
)

// Options are the settings for one assembly.
type Options struct {
	// Scoring for the pairwise alignments. Defaults to align.DefaultNucleotide
	Scoring *align.Scoring

	// Workers is the number of concurrent alignments. Defaults to the CPU count
	Workers int

	// Logger for round by round progress. Defaults to log.Default
	Logger *log.Logger
}

// Assemble the fragments into a single contig
//
// Each round, every pair of fragments in the pool is aligned. The
// alignments are ranked by identity, score and fragment and the first
// one whose fragment sits at the start of one sequence and the end of
// the other is used to merge that pair. The pair is replaced in the pool
// by their merge and the next round starts.
//
// This stops when one fragment is left. A round without any end
// overlap fails with ErrNoOverlap.
func Assemble(fragments []string, opts Options) (string, error) {
	if opts.Scoring == nil {
		opts.Scoring = align.DefaultNucleotide()
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	p := newPool(fragments)
	if p.len() == 0 {
		return "", ErrEmptyPool
	}

	for round := 1; p.len() > 1; round++ {
		alignments, err := alignPairs(p.pairs(), opts.Scoring, opts.Workers)
		if err != nil {
			return "", fmt.Errorf("failed to align fragments: %w", err)
		}
		rank(alignments)

		merged := false
		for _, a := range alignments {
			if !endOverlap(a.a, a.b, a.Fragment()) {
				continue
			}

			contig := merge(a.a, a.b, a.Fragment())
			logger.Debug("merged fragments", "round", round, "pool", p.len(), "overlap", len(a.Fragment()), "identity", a.Identity, "length", len(contig))
			p.replace(a.a, a.b, contig)
			merged = true
			break
		}

		if !merged {
			return "", fmt.Errorf("failed in round %d with %d fragments: %w", round, p.len(), ErrNoOverlap)
		}
	}

	return p.seqs[0], nil
}

// endOverlap returns whether frag starts one sequence and ends the other.
func endOverlap(a, b, frag string) bool {
	if frag == "" {
		return false
	}

	return (strings.HasPrefix(a, frag) && strings.HasSuffix(b, frag)) ||
		(strings.HasPrefix(b, frag) && strings.HasSuffix(a, frag))
}

// merge splices a and b at frag so it appears once. frag is matched at
// the end of one sequence and the start of the other, so repeats of it
// elsewhere are kept. Without such a junction the longer sequence is kept.
func merge(a, b, frag string) string {
	switch {
	case strings.HasSuffix(a, frag) && strings.HasPrefix(b, frag):
		return a + b[len(frag):]
	case strings.HasSuffix(b, frag) && strings.HasPrefix(a, frag):
		return b + a[len(frag):]
	case len(a) >= len(b):
		return a
	default:
		return b
	}
}
