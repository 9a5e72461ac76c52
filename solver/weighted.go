package solver

import (
	"math"

	"github.com/solverlab/wordleai/engine"
)

// WeightedEntropy is the entropy objective with a prior weight per
// answer instead of a uniform count, as a hedge against an incomplete
// answer pool. The prior is built once per episode from global letter
// frequencies over the allowed list.
type WeightedEntropy struct {
	base
	prior map[string]float64
}

func (s *WeightedEntropy) ID() string { return "entropy_weighted" }

func (s *WeightedEntropy) Reset(allowed, answers []string, n int, seed int64) {
	s.base.Reset(allowed, answers, n, seed)

	counts := occurrenceCounts(s.allowed)
	s.prior = make(map[string]float64, len(s.allowed))
	for _, w := range s.allowed {
		// weights stay positive; normalization happens per bucket sum
		s.prior[w] = math.Max(1, float64(distinctScore(w, counts)))
	}
}

func (s *WeightedEntropy) weight(w string) float64 {
	if p, ok := s.prior[w]; ok {
		return p
	}
	return 1
}

// weightedEntropy returns the weight-normalized entropy and the worst
// bucket size (by count, so the tie-break matches the other policies).
func (s *WeightedEntropy) weightedEntropy(guess string, candidates []string) (float64, int) {
	bucketW := map[string]float64{}
	bucketC := map[string]int{}

	totalW := 0.0
	for _, ans := range candidates {
		patt := engine.Score(guess, ans)
		w := s.weight(ans)
		bucketW[patt] += w
		bucketC[patt]++
		totalW += w
	}
	if totalW <= 0 {
		return 0, 0
	}

	h := 0.0
	worst := 0
	for patt, w := range bucketW {
		p := w / totalW
		h -= p * math.Log2(p)
		if bucketC[patt] > worst {
			worst = bucketC[patt]
		}
	}
	return h, worst
}

func (s *WeightedEntropy) selectPool(candidates, allowed []string) []string {
	if len(candidates) <= candPoolLimit {
		return candidates
	}
	// prior weight doubles as a cheap coverage proxy
	return topKBy(allowed, entropyPoolCap, s.weight)
}

func (s *WeightedEntropy) NextGuess(st *State) string {
	pool := s.selectPool(st.Candidates, st.Allowed)
	if len(pool) == 0 {
		return s.placeholder()
	}

	bestH := math.Inf(-1)
	bestWorst := 0
	var best []string
	for _, g := range pool {
		h, worst := s.weightedEntropy(g, st.Candidates)
		switch {
		case len(best) == 0 || h > bestH || (h == bestH && worst < bestWorst):
			bestH, bestWorst, best = h, worst, []string{g}
		case h == bestH && worst == bestWorst:
			best = append(best, g)
		}
	}
	return s.pick(best)
}
