// Package dataset loads and validates the word lists every experiment
// starts from.
package dataset

import (
	"fmt"
	"os"
	"strings"
)

// ReadWords loads a newline-separated word list: lowercased, blanks
// dropped, order preserved. Order matters for the answer pool because
// sampling determinism depends on it.
func ReadWords(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}

	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// FilterLength keeps only words of length n, order preserved.
func FilterLength(words []string, n int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) == n {
			out = append(out, w)
		}
	}
	return out
}

// WordSet builds a membership set for O(1) allowed-pool lookups.
func WordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
