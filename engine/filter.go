package engine

// Feedback is one (guess, pattern) pair from an episode's history.
type Feedback struct {
	Guess   string
	Pattern string
}

// Filter keeps the words in pool that are consistent with every
// feedback pair in history: scoring the old guess against the word
// must reproduce the recorded pattern exactly. Relative order of pool
// is preserved. Words that are not clean n-letter alpha tokens are
// dropped.
func Filter(pool []string, history []Feedback, n int) []string {
	out := make([]string, 0, len(pool))

	for _, w := range pool {
		if len(w) != n || !isLowerAlpha(w) {
			continue
		}

		consistent := true
		for _, fb := range history {
			if Score(fb.Guess, w) != fb.Pattern {
				consistent = false
				break
			}
		}
		if consistent {
			out = append(out, w)
		}
	}

	return out
}

func isLowerAlpha(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return len(w) > 0
}
