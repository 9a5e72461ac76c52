package solver

import "math"

const (
	// entropyPoolCap caps the evaluated guess pool once the candidate
	// set is too big to score the whole allowed list every turn.
	entropyPoolCap = 400

	// includeTopCandidates keeps the strongest candidates in the pool
	// so an obvious late-game answer is never pruned away.
	includeTopCandidates = 100
)

// Entropy picks the guess whose feedback partition of the current
// candidates has maximum Shannon entropy (expected information gain).
// Ties go to the smaller worst-case bucket, then the seeded rng.
type Entropy struct {
	base
}

func (s *Entropy) ID() string { return "entropy" }

// entropyOfGuess partitions candidates by pattern and returns the
// entropy in bits plus the largest bucket size.
func entropyOfGuess(guess string, candidates []string) (float64, int) {
	n := len(candidates)
	if n <= 1 {
		return 0, 0
	}

	h := 0.0
	worst := 0
	for _, c := range patternBuckets(guess, candidates) {
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
		if c > worst {
			worst = c
		}
	}
	return h, worst
}

// selectPool chooses which words get the full entropy evaluation.
// Small candidate sets are scored directly; otherwise the allowed list
// is pre-ranked by distinct-letter coverage and capped, with the top
// candidates merged in.
func (s *Entropy) selectPool(candidates, allowed []string) []string {
	if len(candidates) <= candPoolLimit {
		return candidates
	}

	source := candidates
	if len(source) == 0 {
		source = allowed
	}
	counts := occurrenceCounts(source)
	key := func(w string) int { return distinctScore(w, counts) }

	topAllowed := topKBy(allowed, entropyPoolCap, key)
	topCands := topKBy(candidates, includeTopCandidates, key)
	return stableUnion(topCands, topAllowed)
}

func (s *Entropy) NextGuess(st *State) string {
	pool := s.selectPool(st.Candidates, st.Allowed)

	bestH := math.Inf(-1)
	bestWorst := 0
	var best []string
	for _, g := range pool {
		h, worst := entropyOfGuess(g, st.Candidates)
		switch {
		case len(best) == 0 || h > bestH || (h == bestH && worst < bestWorst):
			bestH, bestWorst, best = h, worst, []string{g}
		case h == bestH && worst == bestWorst:
			best = append(best, g)
		}
	}

	if len(best) == 0 {
		best = pool
		if len(best) == 0 {
			best = st.Allowed
		}
		if len(best) == 0 {
			best = st.Candidates
		}
	}

	return s.pick(best)
}
