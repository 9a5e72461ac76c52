// Package engine implements the feedback scorer and the candidate
// filter that every solver is built on.
package engine

import "fmt"

// Pattern characters. A pattern is a string of length N over these.
const (
	Green  = 'G'
	Yellow = 'Y'
	Gray   = '-'
)

// Score computes the feedback pattern for guess against answer.
// Both must be lowercase a-z words of the same length.
//
// Two passes: the first marks greens and counts the unmatched answer
// letters, the second hands out yellows while that count lasts. This
// caps yellows by the true letter multiplicity in the answer, so extra
// repeats in the guess come back gray.
//
//	Score("belle", "level") == "-GYYY"
//	Score("lemon", "level") == "GG---"
func Score(guess, answer string) string {
	if len(guess) != len(answer) {
		panic(fmt.Sprintf("engine: length mismatch scoring %q against %q", guess, answer))
	}

	n := len(guess)
	pattern := make([]byte, n)

	var remaining [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			pattern[i] = Green
		} else {
			pattern[i] = Gray
			remaining[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if pattern[i] == Green {
			continue
		}
		c := guess[i] - 'a'
		if remaining[c] > 0 {
			pattern[i] = Yellow
			remaining[c]--
		}
	}

	return string(pattern)
}

// AllGreen reports whether pattern is a win.
func AllGreen(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != Green {
			return false
		}
	}
	return len(pattern) > 0
}
