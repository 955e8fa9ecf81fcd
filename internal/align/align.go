package align

import (
	"fmt"
	"math"
	"strings"
)

// Result is a local alignment between a query and a target sequence.
type Result struct {
	// Score is the highest cell of the alignment matrix, plus one when
	// the alignment was extended by a leading matching character
	Score int

	// Identity is the percentage of aligned positions that are identical
	Identity float64

	// Similarity is the percentage of aligned positions that differ
	// but have a non-negative substitution score
	Similarity float64

	// Query is the aligned stretch of the query, with '-' for gaps
	Query string

	// Target is the aligned stretch of the target, with '-' for gaps
	Target string
}

// Fragment is the aligned stretch of the query.
func (r Result) Fragment() string {
	return r.Query
}

// Align finds the best local alignment of query against target.
//
// The first row and column of the matrix are filled with index*gap
// rather than 0, which favors alignments that start near the beginning
// of both sequences. Both sequences are upper-cased before alignment.
func Align(query, target string, s *Scoring) (Result, error) {
	query, target = strings.ToUpper(query), strings.ToUpper(target)
	if err := s.Check(query); err != nil {
		return Result{}, fmt.Errorf("failed to align query: %w", err)
	}
	if err := s.Check(target); err != nil {
		return Result{}, fmt.Errorf("failed to align target: %w", err)
	}

	n, m := len(query), len(target)
	mat := make([][]int, n+1)
	for i := range mat {
		mat[i] = make([]int, m+1)
		mat[i][0] = i * s.Gap
	}
	for j := range mat[0] {
		mat[0][j] = j * s.Gap
	}

	// the first max in row-major order wins
	best, bestI, bestJ := mat[0][0], 0, 0
	for j := 1; j <= m; j++ {
		if mat[0][j] > best {
			best, bestJ = mat[0][j], j
		}
	}
	for i := 1; i <= n; i++ {
		if mat[i][0] > best {
			best, bestI, bestJ = mat[i][0], i, 0
		}
		for j := 1; j <= m; j++ {
			v := max(
				mat[i-1][j-1]+s.score(query[i-1], target[j-1]),
				mat[i-1][j]+s.Gap,
				mat[i][j-1]+s.Gap,
				0,
			)
			mat[i][j] = v
			if v > best {
				best, bestI, bestJ = v, i, j
			}
		}
	}

	// walk back from the max until a 0 cell or the matrix edge
	var q, t []byte
	i, j := bestI, bestJ
	for i > 0 && j > 0 && mat[i][j] != 0 {
		switch cur := mat[i][j]; {
		case cur == mat[i-1][j-1]+s.score(query[i-1], target[j-1]):
			q = append(q, query[i-1])
			t = append(t, target[j-1])
			i--
			j--
		case cur == mat[i-1][j]+s.Gap:
			q = append(q, query[i-1])
			t = append(t, '-')
			i--
		default:
			q = append(q, '-')
			t = append(t, target[j-1])
			j--
		}
	}
	reverse(q)
	reverse(t)

	// a matching character right before the alignment in both sequences
	// is lost when its cell was floored to 0
	score := best
	if len(q) > 0 && i > 0 && j > 0 && query[i-1] == target[j-1] {
		q = append([]byte{query[i-1]}, q...)
		t = append([]byte{target[j-1]}, t...)
		score++
	}

	identity, similarity := stats(q, t, s)
	return Result{
		Score:      score,
		Identity:   identity,
		Similarity: similarity,
		Query:      string(q),
		Target:     string(t),
	}, nil
}

// stats returns the percent identity and similarity of an aligned pair.
func stats(q, t []byte, s *Scoring) (identity, similarity float64) {
	if len(q) == 0 {
		return 0, 0
	}

	var identical, similar int
	for k := range q {
		if q[k] == '-' || t[k] == '-' {
			continue
		}
		if q[k] == t[k] {
			identical++
		} else if s.score(q[k], t[k]) >= 0 {
			similar++
		}
	}

	return percent(identical, len(q)), percent(similar, len(q))
}

// percent of count over total, rounded to two decimal places
func percent(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*100*100) / 100
}

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

// Format renders the alignment in blocks of width columns: the query,
// a match line ('|' identical, ':' similar) and the target.
func (r Result) Format(s *Scoring, width int) string {
	if width < 1 {
		width = 80
	}

	var match strings.Builder
	for k := 0; k < len(r.Query); k++ {
		a, b := r.Query[k], r.Target[k]
		switch {
		case a == '-' || b == '-':
			match.WriteByte(' ')
		case a == b:
			match.WriteByte('|')
		case s.score(a, b) >= 0:
			match.WriteByte(':')
		default:
			match.WriteByte(' ')
		}
	}
	line := match.String()

	var b strings.Builder
	fmt.Fprintf(&b, "score: %d\nidentity: %.2f%%\nsimilarity: %.2f%%\n", r.Score, r.Identity, r.Similarity)
	for start := 0; start < len(r.Query); start += width {
		end := min(start+width, len(r.Query))
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n", r.Query[start:end], line[start:end], r.Target[start:end])
	}
	return b.String()
}
