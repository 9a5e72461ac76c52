package solver

import "math/rand"

// duplicatePenalty is subtracted per repeated letter instance beyond
// the first, to keep early guesses covering more of the alphabet.
const duplicatePenalty = 0.25

// PositionalFreq scores each word by how many current candidates share
// its exact letter in each exact slot, minus a small penalty for
// repeated letters.
type PositionalFreq struct {
	base
}

func (s *PositionalFreq) ID() string { return "positional_freq" }

func (s *PositionalFreq) NextGuess(st *State) string {
	pool := st.Candidates
	if len(st.Candidates) > candPoolLimit {
		pool = st.Allowed
	}
	if len(pool) == 0 {
		return s.placeholder()
	}

	source := st.Candidates
	if len(source) == 0 {
		source = st.Allowed
	}
	return plfPick(s.rng, pool, source, s.n)
}

// positionCounts builds per-slot letter histograms over words.
func positionCounts(words []string, n int) [][26]int {
	counts := make([][26]int, n)
	for _, w := range words {
		for i := 0; i < len(w) && i < n; i++ {
			counts[i][w[i]-'a']++
		}
	}
	return counts
}

// plfScore is the positional-frequency objective for one word.
func plfScore(w string, counts [][26]int) float64 {
	s := 0.0
	var seen Letterset
	for i := 0; i < len(w); i++ {
		c := w[i] - 'a'
		s += float64(counts[i][c])
		if seen.Has(c) {
			s -= duplicatePenalty
		} else {
			seen = seen.Add(c)
		}
	}
	return s
}

// plfPick runs the positional-frequency selection over pool, with the
// histograms built from source. Shared by PositionalFreq and the
// policies that fall back to it on later turns.
func plfPick(rng *rand.Rand, pool, source []string, n int) string {
	counts := positionCounts(source, n)

	bestScore := 0.0
	var best []string
	for _, w := range pool {
		sc := plfScore(w, counts)
		switch {
		case len(best) == 0 || sc > bestScore:
			bestScore, best = sc, []string{w}
		case sc == bestScore:
			best = append(best, w)
		}
	}
	if len(best) == 0 {
		return placeholderWord(n)
	}
	return best[rng.Intn(len(best))]
}

func placeholderWord(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
