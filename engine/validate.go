package engine

// MaxTurns is the episode turn budget. Every runner derives its budget
// from this one constant so nothing accidentally runs a 7-turn
// experiment.
const MaxTurns = 6

// ValidGuess reports whether word is acceptable right now: a clean
// lowercase n-letter alpha token that is a member of the allowed set.
func ValidGuess(word string, allowed map[string]bool, n int) bool {
	if len(word) != n || !isLowerAlpha(word) {
		return false
	}
	return allowed[word]
}
