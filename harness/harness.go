// Package harness runs fixed-policy episodes and batches and writes
// the reports external tooling consumes.
package harness

import (
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/solverlab/wordleai/engine"
	"github.com/solverlab/wordleai/solver"
)

// MaxTurns re-exports the shared turn budget for callers that only
// import the harness.
const MaxTurns = engine.MaxTurns

// Result records one finished episode for reporting.
type Result struct {
	SolverID string
	Answer   string
	Success  bool
	Guesses  int
	TimeMs   float64
	History  []engine.Feedback
	// Policies holds the id of whichever policy produced each guess.
	// Fixed-policy runs repeat one id; bandit runs vary per turn.
	Policies []string
}

// RunCase plays one episode of s against a hidden answer. Solver calls
// are timed individually; TimeMs is the summed policy compute time.
func RunCase(s solver.Solver, answer string, allowed, answers []string, n int, seed int64) Result {
	s.Reset(allowed, answers, n, seed)

	var history []engine.Feedback
	var policies []string
	candidates := filterLen(answers, n)
	allowedN := filterLen(allowed, n)
	totalMs := 0.0

	for turn := 1; turn <= MaxTurns; turn++ {
		st := &solver.State{
			Turn:       turn,
			N:          n,
			Candidates: candidates,
			Allowed:    allowedN,
			History:    history,
		}

		t0 := time.Now()
		guess := s.NextGuess(st)
		totalMs += float64(time.Since(t0)) / float64(time.Millisecond)

		patt := engine.Score(guess, answer)
		history = append(history, engine.Feedback{Guess: guess, Pattern: patt})
		policies = append(policies, s.ID())

		if guess == answer {
			return Result{
				SolverID: s.ID(), Answer: answer, Success: true,
				Guesses: turn, TimeMs: totalMs,
				History: history, Policies: policies,
			}
		}

		candidates = engine.Filter(candidates, []engine.Feedback{{Guess: guess, Pattern: patt}}, n)
	}

	return Result{
		SolverID: s.ID(), Answer: answer, Success: false,
		Guesses: MaxTurns, TimeMs: totalMs,
		History: history, Policies: policies,
	}
}

// BatchOptions configures RunBatch.
type BatchOptions struct {
	Seed int64
	// Sample limits the batch to the first K length-matching answers;
	// 0 means all of them.
	Sample int
	// Progress draws a progress bar on stderr.
	Progress bool
}

// RunBatch plays one episode per answer, back to back. Per-case seeds
// derive from the base seed plus the case index, so batches reproduce
// without every case sharing one rng stream.
func RunBatch(s solver.Solver, answers, allowed []string, n int, opts BatchOptions) []Result {
	pool := filterLen(answers, n)
	if opts.Sample > 0 && opts.Sample < len(pool) {
		pool = pool[:opts.Sample]
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(pool)), s.ID())
	}

	out := make([]Result, 0, len(pool))
	for idx, ans := range pool {
		out = append(out, RunCase(s, ans, allowed, answers, n, opts.Seed+int64(idx)+1))
		if bar != nil {
			bar.Add(1)
		}
	}
	return out
}

func filterLen(words []string, n int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) == n {
			out = append(out, w)
		}
	}
	return out
}
