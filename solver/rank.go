package solver

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/solverlab/wordleai/engine"
)

// occurrenceCounts counts every letter instance across words.
func occurrenceCounts(words []string) (counts [26]int) {
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			counts[w[i]-'a']++
		}
	}
	return
}

// coverageCounts counts, per letter, how many words contain it at
// least once.
func coverageCounts(words []string) (counts [26]int) {
	for _, w := range words {
		for _, c := range Letters(w).Each() {
			counts[c]++
		}
	}
	return
}

// distinctScore sums counts for the distinct letters of w. Duplicates
// within w count once, so 'slate' beats 'sleet' on equal histograms.
func distinctScore(w string, counts [26]int) int {
	s := 0
	var seen Letterset
	for i := 0; i < len(w); i++ {
		c := w[i] - 'a'
		if !seen.Has(c) {
			seen = seen.Add(c)
			s += counts[c]
		}
	}
	return s
}

// topKBy returns the k highest-keyed words, stable within equal keys.
func topKBy[K constraints.Ordered](words []string, k int, key func(string) K) []string {
	ranked := make([]string, len(words))
	copy(ranked, words)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// stableUnion concatenates the slices, dropping later duplicates.
func stableUnion(lists ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range lists {
		for _, w := range list {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}

// patternBuckets partitions candidates by the pattern each would
// produce against guess.
func patternBuckets(guess string, candidates []string) map[string]int {
	buckets := make(map[string]int)
	for _, ans := range candidates {
		buckets[engine.Score(guess, ans)]++
	}
	return buckets
}
