package solver

// MaxPatterns maximizes the number of distinct feedback patterns the
// guess can produce against the current candidates. No logs, no
// probabilities; a cheaper cousin of the entropy objective.
type MaxPatterns struct {
	base
}

func (s *MaxPatterns) ID() string { return "max_patterns" }

// patternStats returns the distinct-pattern count and worst bucket.
func patternStats(guess string, candidates []string) (int, int) {
	buckets := patternBuckets(guess, candidates)
	worst := 0
	for _, c := range buckets {
		if c > worst {
			worst = c
		}
	}
	return len(buckets), worst
}

func (s *MaxPatterns) selectPool(candidates, allowed []string) []string {
	if len(candidates) <= candPoolLimit {
		return candidates
	}
	counts := coverageCounts(candidates)
	return topKBy(allowed, entropyPoolCap, func(w string) int {
		return distinctScore(w, counts)
	})
}

func (s *MaxPatterns) NextGuess(st *State) string {
	pool := s.selectPool(st.Candidates, st.Allowed)
	if len(pool) == 0 {
		return s.placeholder()
	}

	bestM, bestWorst := -1, 0
	var best []string
	for _, g := range pool {
		m, worst := patternStats(g, st.Candidates)
		switch {
		case len(best) == 0 || m > bestM || (m == bestM && worst < bestWorst):
			bestM, bestWorst, best = m, worst, []string{g}
		case m == bestM && worst == bestWorst:
			best = append(best, g)
		}
	}
	return s.pick(best)
}
