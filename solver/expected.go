package solver

// ExpectedLeft minimizes the expected candidate count remaining after
// feedback. For bucket sizes {c_i} over n candidates that expectation
// is (1/n)·Σc_i², so minimizing Σc_i² is enough. Tracks the entropy
// objective closely but is cheaper to compare.
type ExpectedLeft struct {
	base
}

func (s *ExpectedLeft) ID() string { return "expected_left" }

// sumSquaresAndWorst returns Σc_i² and the largest bucket for guess.
func sumSquaresAndWorst(guess string, candidates []string) (int, int) {
	sum, worst := 0, 0
	for _, c := range patternBuckets(guess, candidates) {
		sum += c * c
		if c > worst {
			worst = c
		}
	}
	return sum, worst
}

func (s *ExpectedLeft) selectPool(candidates, allowed []string) []string {
	if len(candidates) <= candPoolLimit {
		return candidates
	}
	counts := coverageCounts(candidates)
	return topKBy(allowed, entropyPoolCap, func(w string) int {
		return distinctScore(w, counts)
	})
}

func (s *ExpectedLeft) NextGuess(st *State) string {
	pool := s.selectPool(st.Candidates, st.Allowed)
	if len(pool) == 0 {
		return s.placeholder()
	}

	bestSum, bestWorst := 0, 0
	var best []string
	for _, g := range pool {
		sum, worst := sumSquaresAndWorst(g, st.Candidates)
		switch {
		case len(best) == 0 || sum < bestSum || (sum == bestSum && worst < bestWorst):
			bestSum, bestWorst, best = sum, worst, []string{g}
		case sum == bestSum && worst == bestWorst:
			best = append(best, g)
		}
	}
	return s.pick(best)
}
