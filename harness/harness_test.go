package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/wordleai/solver"
)

var (
	batchAnswers = []string{"crane", "raise", "stare"}
	batchAllowed = []string{"crane", "raise", "stare", "trace", "cared"}
)

func TestRunCaseRandomConsistentSolvesSmallPool(t *testing.T) {
	s := &solver.RandomConsistent{}
	res := RunCase(s, "crane", batchAllowed, batchAnswers, 5, 42)

	assert.Equal(t, "random_consistent", res.SolverID)
	assert.Equal(t, "crane", res.Answer)
	// three consistent candidates, six turns: consistency filtering
	// removes each wrong guess, so the pool runs dry before the budget
	assert.True(t, res.Success)
	assert.LessOrEqual(t, res.Guesses, 3)
	assert.Len(t, res.History, res.Guesses)
	assert.Len(t, res.Policies, res.Guesses)
	for _, p := range res.Policies {
		assert.Equal(t, "random_consistent", p)
	}
	assert.Equal(t, "GGGGG", res.History[len(res.History)-1].Pattern)
}

func TestRunCaseReproducibleUnderSeed(t *testing.T) {
	a := RunCase(&solver.RandomConsistent{}, "stare", batchAllowed, batchAnswers, 5, 7)
	b := RunCase(&solver.RandomConsistent{}, "stare", batchAllowed, batchAnswers, 5, 7)
	assert.Equal(t, a.History, b.History)
	assert.Equal(t, a.Guesses, b.Guesses)
}

func TestRunCaseHitsTurnBudget(t *testing.T) {
	// answer outside the candidate pool: the solver can never converge
	res := RunCase(&solver.RandomConsistent{}, "scoop", batchAllowed, batchAnswers, 5, 3)
	assert.False(t, res.Success)
	assert.Equal(t, MaxTurns, res.Guesses)
	assert.Len(t, res.History, MaxTurns)
}

func TestRunBatchOneEpisodePerAnswer(t *testing.T) {
	results := RunBatch(&solver.PositionalFreq{}, batchAnswers, batchAllowed, 5, BatchOptions{Seed: 42})
	require.Len(t, results, len(batchAnswers))
	for i, r := range results {
		assert.Equal(t, batchAnswers[i], r.Answer)
		assert.True(t, r.Success, "answer %q should be found in a 3-word pool", r.Answer)
	}
}

func TestRunBatchSample(t *testing.T) {
	results := RunBatch(&solver.PositionalFreq{}, batchAnswers, batchAllowed, 5, BatchOptions{Seed: 1, Sample: 2})
	require.Len(t, results, 2)
	assert.Equal(t, "crane", results[0].Answer)
	assert.Equal(t, "raise", results[1].Answer)
}

func TestRunBatchSkipsWrongLength(t *testing.T) {
	answers := []string{"crane", "toolong", "raise"}
	results := RunBatch(&solver.PositionalFreq{}, answers, batchAllowed, 5, BatchOptions{Seed: 1})
	require.Len(t, results, 2)
	assert.Equal(t, "crane", results[0].Answer)
	assert.Equal(t, "raise", results[1].Answer)
}
