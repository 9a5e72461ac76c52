package solver

import (
	"github.com/solverlab/wordleai/engine"
)

const (
	// firstPoolCap bounds how many first guesses the turn-1 search
	// evaluates.
	firstPoolCap = 40

	// twoPlySampleSize bounds how many hidden answers are sampled per
	// first guess.
	twoPlySampleSize = 32

	// secondPlyCap bounds the candidates-only pool the cheap second
	// guess is picked from.
	secondPlyCap = 400
)

// TwoPlyMC estimates, for each candidate first guess, the expected
// candidate count left after a cheap second guess, over a sample of
// hidden answers. Turn 1 plays the minimizer; later turns delegate to
// positional frequency on the live candidates — a throughput trade,
// not a correctness requirement.
type TwoPlyMC struct {
	base
}

func (s *TwoPlyMC) ID() string { return "two_ply_mc" }

// plfOnCandidates is the second-ply picker: candidates only, top-K by
// distinct coverage, no allowed-list scans.
func (s *TwoPlyMC) plfOnCandidates(cands []string) string {
	if len(cands) == 0 {
		return s.placeholder()
	}
	counts := coverageCounts(cands)
	pool := topKBy(cands, secondPlyCap, func(w string) int {
		return distinctScore(w, counts)
	})
	return plfPick(s.rng, pool, cands, s.n)
}

// selectFirstPool merges the top allowed probes with the strongest
// candidates, ranked by distinct coverage of the current space.
func (s *TwoPlyMC) selectFirstPool(candidates, allowed []string) []string {
	source := candidates
	if len(source) == 0 {
		source = allowed
	}
	counts := coverageCounts(source)
	key := func(w string) int { return distinctScore(w, counts) }

	topCands := topKBy(candidates, firstPoolCap/2, key)
	topAllowed := topKBy(allowed, firstPoolCap, key)
	return stableUnion(topCands, topAllowed)
}

// sampleAnswers draws up to twoPlySampleSize candidates without
// replacement, or all of them when the pool is small.
func (s *TwoPlyMC) sampleAnswers(candidates []string) []string {
	if len(candidates) <= twoPlySampleSize {
		return candidates
	}
	sample := make([]string, 0, twoPlySampleSize)
	for _, i := range s.rng.Perm(len(candidates))[:twoPlySampleSize] {
		sample = append(sample, candidates[i])
	}
	return sample
}

func (s *TwoPlyMC) NextGuess(st *State) string {
	if st.Turn > 1 {
		return s.plfOnCandidates(st.Candidates)
	}

	pool := s.selectFirstPool(st.Candidates, st.Allowed)
	if len(pool) == 0 {
		return s.placeholder()
	}

	sample := s.sampleAnswers(st.Candidates)

	bestAvg := 0.0
	bestWorst := 0
	var best []string

	for _, g := range pool {
		// group the sampled answers by first-turn pattern, keeping
		// first-seen order so the search stays deterministic
		groups := map[string][]string{}
		var order []string
		for _, a := range sample {
			patt := engine.Score(g, a)
			if _, ok := groups[patt]; !ok {
				order = append(order, patt)
			}
			groups[patt] = append(groups[patt], a)
		}

		totals, worst, processed := 0, 0, 0

		for _, patt1 := range order {
			c1 := engine.Filter(st.Candidates, []engine.Feedback{{Guess: g, Pattern: patt1}}, s.n)
			if len(c1) == 0 {
				continue
			}

			g2 := s.plfOnCandidates(c1)
			buckets2 := patternBuckets(g2, c1)

			for _, a := range groups[patt1] {
				c2 := buckets2[engine.Score(g2, a)]
				totals += c2
				if c2 > worst {
					worst = c2
				}
				processed++
			}

			// Early pruning assumes the unprocessed partitions could
			// average zero. That bound is not admissible, so a true
			// optimum can be pruned in rare cases; accepted heuristic.
			if len(best) > 0 && processed > 0 {
				if float64(totals)/float64(processed) >= bestAvg {
					break
				}
			}
		}

		avg := float64(totals) / float64(max(1, processed))

		switch {
		case len(best) == 0 || avg < bestAvg || (avg == bestAvg && worst < bestWorst):
			bestAvg, bestWorst, best = avg, worst, []string{g}
		case avg == bestAvg && worst == bestWorst:
			best = append(best, g)
		}
	}

	return s.pick(best)
}
