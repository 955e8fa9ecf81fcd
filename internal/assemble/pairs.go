package assemble

import (
	"sort"
	"sync"

	"github.com/jjtimmons/contig/internal/align"
)

// scored is a pair of fragments and their alignment.
type scored struct {
	pair
	align.Result
}

// alignPairs aligns every pair with a fixed number of workers. Results
// keep the order of pairs. The first failed alignment's error is returned.
func alignPairs(pairs []pair, scoring *align.Scoring, workers int) ([]scored, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	results := make([]scored, len(pairs))
	errs := make([]error, len(pairs))
	tasks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				p := pairs[i]
				r, err := align.Align(p.a, p.b, scoring)
				results[i] = scored{pair: p, Result: r}
				errs[i] = err
			}
		}()
	}

	for i := range pairs {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// rank sorts alignments best first: by identity, then score, then the
// aligned fragment, all descending. Remaining ties go to the
// lexicographically smaller pair of fragments.
func rank(alignments []scored) {
	sort.SliceStable(alignments, func(i, j int) bool {
		a, b := alignments[i], alignments[j]
		if a.Identity != b.Identity {
			return a.Identity > b.Identity
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Fragment() != b.Fragment() {
			return a.Fragment() > b.Fragment()
		}
		if a.a != b.a {
			return a.a < b.a
		}
		return a.b < b.b
	})
}
