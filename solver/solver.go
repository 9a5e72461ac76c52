// Package solver contains the guess-selection policies and the
// registry the CLI and the bandit agent pick them from.
package solver

import (
	"math/rand"

	"github.com/solverlab/wordleai/engine"
)

// State is the per-turn view of an episode handed to a policy.
// Candidates is the consistent answer set, Allowed the fixed guess
// universe (already length-filtered). Neither may be mutated.
type State struct {
	Turn       int
	N          int
	Candidates []string
	Allowed    []string
	History    []engine.Feedback
}

// Solver decides the next guess for the current game state.
//
// Reset is called once per episode and hands the solver its word
// lists, the word length and a seed for tie-break randomness. Solvers
// may precompute per-episode statistics in Reset; instances must not
// be shared across concurrently running episodes.
type Solver interface {
	ID() string
	Reset(allowed, answers []string, n int, seed int64)
	NextGuess(st *State) string
}

// base carries the per-episode fields shared by every solver.
type base struct {
	allowed []string
	answers []string
	n       int
	rng     *rand.Rand
}

func (b *base) Reset(allowed, answers []string, n int, seed int64) {
	b.allowed = allowed
	b.answers = answers
	b.n = n
	b.rng = rand.New(rand.NewSource(seed))
}

// placeholder is the degenerate guess returned when every pool is
// empty, so an exhausted search signals Lost instead of crashing.
func (b *base) placeholder() string {
	return placeholderWord(b.n)
}

// pick breaks a tie uniformly with the solver's seeded rng.
func (b *base) pick(best []string) string {
	if len(best) == 0 {
		return b.placeholder()
	}
	return best[b.rng.Intn(len(best))]
}
