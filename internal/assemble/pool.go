package assemble

import "strings"

// pool is the set of fragments that have yet to be merged into one
// another. Fragments are upper-cased and unique, kept in the order
// they were first added.
type pool struct {
	seqs []string
}

// newPool creates a pool from raw reads, dropping blanks and duplicates.
func newPool(fragments []string) *pool {
	p := &pool{}
	for _, f := range fragments {
		p.add(strings.ToUpper(strings.TrimSpace(f)))
	}
	return p
}

func (p *pool) len() int {
	return len(p.seqs)
}

// add appends seq if it is not empty and not already in the pool.
func (p *pool) add(seq string) {
	if seq == "" || p.contains(seq) {
		return
	}
	p.seqs = append(p.seqs, seq)
}

func (p *pool) contains(seq string) bool {
	for _, s := range p.seqs {
		if s == seq {
			return true
		}
	}
	return false
}

// replace removes a and b from the pool and adds their merge.
func (p *pool) replace(a, b, merged string) {
	kept := p.seqs[:0]
	for _, s := range p.seqs {
		if s != a && s != b {
			kept = append(kept, s)
		}
	}
	p.seqs = kept
	p.add(merged)
}

// pair is two fragments of the pool, first added first.
type pair struct {
	a, b string
}

// pairs returns every unordered pair of fragments in the pool.
func (p *pool) pairs() []pair {
	var ps []pair
	for i := range p.seqs {
		for j := i + 1; j < len(p.seqs); j++ {
			ps = append(ps, pair{p.seqs[i], p.seqs[j]})
		}
	}
	return ps
}
