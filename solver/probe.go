package solver

// probeLargeThreshold: if this many candidates survive turn 1, a
// second probe is worth more than a precision guess.
const probeLargeThreshold = 1200

// TwoStageProbe opens with a high-coverage probe chosen dynamically
// from the allowed pool. If the space is still large after turn 1 it
// plays a second probe biased toward letters the first guess did not
// touch, then switches to positional frequency for precision.
type TwoStageProbe struct {
	base
}

func (s *TwoStageProbe) ID() string { return "two_stage_probe" }

// coverageScore sums coverage counts over the distinct, non-banned
// letters of w.
func coverageScore(w string, counts [26]int, banned Letterset) int {
	sc := 0
	var seen Letterset
	for i := 0; i < len(w); i++ {
		c := w[i] - 'a'
		if banned.Has(c) || seen.Has(c) {
			continue
		}
		seen = seen.Add(c)
		sc += counts[c]
	}
	return sc
}

func (s *TwoStageProbe) pickProbe(pool []string, counts [26]int, banned Letterset) string {
	bestScore := -1
	var best []string
	for _, w := range pool {
		sc := coverageScore(w, counts, banned)
		switch {
		case sc > bestScore:
			bestScore, best = sc, []string{w}
		case sc == bestScore:
			best = append(best, w)
		}
	}
	return s.pick(best)
}

func (s *TwoStageProbe) NextGuess(st *State) string {
	source := st.Candidates
	if len(source) == 0 {
		source = st.Allowed
	}

	if st.Turn == 1 {
		return s.pickProbe(st.Allowed, coverageCounts(source), 0)
	}

	if st.Turn == 2 && len(st.Candidates) > probeLargeThreshold && len(st.History) > 0 {
		// second probe prefers a letter set disjoint from guess 1
		banned := Letters(st.History[0].Guess)
		return s.pickProbe(st.Allowed, coverageCounts(source), banned)
	}

	pool := st.Candidates
	if len(st.Candidates) > candPoolLimit {
		pool = st.Allowed
	}
	if len(pool) == 0 {
		return s.placeholder()
	}
	return plfPick(s.rng, pool, source, s.n)
}
