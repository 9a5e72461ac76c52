// Package agent holds the contextual bandit that learns which policy
// to invoke each turn, plus the episode environment it trains in.
package agent

import (
	"fmt"
	"math"

	"github.com/solverlab/wordleai/solver"
)

// PatternClasses is the qualitative classification of a feedback
// pattern, one-hot encoded at the tail of the feature vector.
var PatternClasses = [...]string{"all_gray", "some_green", "some_yellow", "mix_GY", "other"}

// PatternClass buckets a pattern by which symbols it contains. The
// empty pattern (first turn, or an invalid guess) classifies as other.
func PatternClass(p string) string {
	if p == "" {
		return "other"
	}
	greens, yellows := 0, 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case 'G':
			greens++
		case 'Y':
			yellows++
		}
	}
	switch {
	case greens == 0 && yellows == 0:
		return "all_gray"
	case greens > 0 && yellows == 0:
		return "some_green"
	case yellows > 0 && greens == 0:
		return "some_yellow"
	default:
		return "mix_GY"
	}
}

// perSlotEntropy measures, per position, the entropy of the letter
// distribution across candidates. Nats; the scale does not matter to
// the bandit.
func perSlotEntropy(candidates []string, n int) []float64 {
	h := make([]float64, n)
	if len(candidates) == 0 {
		return h
	}

	counts := make([][26]int, n)
	for _, w := range candidates {
		for i := 0; i < len(w) && i < n; i++ {
			counts[i][w[i]-'a']++
		}
	}

	total := float64(len(candidates))
	for i := 0; i < n; i++ {
		for _, c := range counts[i] {
			if c == 0 {
				continue
			}
			p := float64(c) / total
			h[i] -= p * math.Log(p+1e-12)
		}
	}
	return h
}

// dupRatio is the fraction of candidates containing a repeated letter.
func dupRatio(candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}
	dup := 0
	for _, w := range candidates {
		if solver.Letters(w).Count() < len(w) {
			dup++
		}
	}
	return float64(dup) / float64(len(candidates))
}

// FeatureDim is the feature vector length for word length n.
func FeatureDim(n int) int {
	return 5 + n + len(PatternClasses)
}

// Features builds the bandit feature vector for the current turn.
// prevLen is the candidate count before the last filter (0 on the
// first turn); lastPattern is empty on the first turn. Deterministic
// in its inputs.
func Features(turn, n int, candidates []string, prevLen int, lastPattern string) ([]float64, []string) {
	cLen := len(candidates)
	logC := math.Log2(math.Max(float64(cLen), 1))

	shrink := 0.0
	if prevLen > 0 {
		shrink = float64(prevLen-cLen) / float64(prevLen)
	}

	feats := []float64{float64(turn), float64(n), logC, shrink, dupRatio(candidates)}
	names := []string{"turn", "N", "log2_c", "shrink", "dup_ratio"}

	for i, h := range perSlotEntropy(candidates, n) {
		feats = append(feats, h)
		names = append(names, fmt.Sprintf("H%d", i))
	}

	class := PatternClass(lastPattern)
	for _, k := range PatternClasses {
		v := 0.0
		if class == k {
			v = 1
		}
		feats = append(feats, v)
		names = append(names, "pt_"+k)
	}

	return feats, names
}
