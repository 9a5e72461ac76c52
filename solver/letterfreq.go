package solver

// candPoolLimit: above this many candidates, policies evaluate guesses
// from the allowed pool instead, since cheap probing words split a big
// space better than candidates do.
const candPoolLimit = 200

// LetterFreq scores each word as the sum of its distinct letters'
// frequencies over the current candidate set. Early turns this favors
// broad coverage; late turns the histogram already reflects the
// constraints.
type LetterFreq struct {
	base
}

func (s *LetterFreq) ID() string { return "letter_freq" }

func (s *LetterFreq) NextGuess(st *State) string {
	pool := st.Candidates
	if len(st.Candidates) > candPoolLimit {
		pool = st.Allowed
	}

	source := st.Candidates
	if len(source) == 0 {
		source = st.Allowed
	}
	counts := occurrenceCounts(source)

	bestScore := -1
	var best []string
	for _, w := range pool {
		sc := distinctScore(w, counts)
		switch {
		case sc > bestScore:
			bestScore, best = sc, []string{w}
		case sc == bestScore:
			best = append(best, w)
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
