package agent

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/solverlab/wordleai/engine"
	"github.com/solverlab/wordleai/solver"
)

// Status is the episode state machine.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// MaxTurns is the shared per-episode turn budget.
const MaxTurns = engine.MaxTurns

// DefaultAlphaTime weights policy compute time in the per-turn reward.
const DefaultAlphaTime = 0.2

// DefaultActions is the fast-ish action set used when none is given.
var DefaultActions = []string{"positional_freq", "expected_left", "max_patterns", "letter_freq"}

// Env runs one episode at a time: the agent picks a policy id per
// turn, the policy proposes a guess, the env scores it, narrows the
// candidates and pays reward = -1 - alphaTime·(time_ms/100). Invalid
// guesses cost -2 base and yield a neutral all-gray pattern instead of
// real feedback, so training never stalls on a bad action.
type Env struct {
	n          int
	answers    []string
	allowed    []string
	allowedSet map[string]bool
	actions    []string
	solvers    map[string]solver.Solver
	alphaTime  float64
	rng        *rand.Rand

	answer     string
	turn       int
	history    []engine.Feedback
	candidates []string
	prevLen    int
	status     Status
}

// Observation is what the agent sees before picking an action.
type Observation struct {
	Turn         int
	N            int
	Candidates   []string
	History      []engine.Feedback
	Features     []float64
	FeatureNames []string
}

// StepInfo reports what one step actually did.
type StepInfo struct {
	Guess        string
	Pattern      string
	TimeMs       float64
	ChosenSolver string
	// Answer is revealed only on the terminal step.
	Answer string
}

// NewEnv builds an environment over the given pools. answers and
// allowed must already be lowercase length-n lists; actions may be nil
// for the default set. Policy instances come from reg and are reset at
// every episode start.
func NewEnv(answers, allowed []string, n int, seed int64, actions []string, alphaTime float64, reg *solver.Registry) (*Env, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("agent: empty answer pool")
	}
	if len(actions) == 0 {
		actions = DefaultActions
	}

	solvers := make(map[string]solver.Solver, len(actions))
	for _, id := range actions {
		s, err := reg.New(id)
		if err != nil {
			return nil, err
		}
		solvers[id] = s
	}

	return &Env{
		n:          n,
		answers:    answers,
		allowed:    allowed,
		allowedSet: wordSet(allowed),
		actions:    append([]string(nil), actions...),
		solvers:    solvers,
		alphaTime:  alphaTime,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Actions returns the env's action ids in selection order.
func (e *Env) Actions() []string { return append([]string(nil), e.actions...) }

// Status returns the current episode status.
func (e *Env) Status() Status { return e.status }

// Answers exposes the read-only answer pool, for eval sampling.
func (e *Env) Answers() []string { return e.answers }

// Reset starts a new episode. An empty answer means draw one from the
// answer pool; a fixed answer supports evaluation runs.
func (e *Env) Reset(answer string) *Observation {
	if answer == "" {
		answer = e.answers[e.rng.Intn(len(e.answers))]
	}
	e.answer = strings.ToLower(answer)
	e.turn = 0
	e.history = nil
	e.candidates = append([]string(nil), e.answers...)
	e.prevLen = 0
	e.status = StatusInProgress

	// seed solvers in action order; ranging over the map would let its
	// randomized iteration decide which rng draw each solver receives
	for _, id := range e.actions {
		e.solvers[id].Reset(e.allowed, e.answers, e.n, e.rng.Int63())
	}

	return e.observe("")
}

func (e *Env) observe(lastPattern string) *Observation {
	feats, names := Features(e.turn+1, e.n, e.candidates, e.prevLen, lastPattern)
	return &Observation{
		Turn:         e.turn + 1,
		N:            e.n,
		Candidates:   append([]string(nil), e.candidates...),
		History:      append([]engine.Feedback(nil), e.history...),
		Features:     feats,
		FeatureNames: names,
	}
}

// Step asks the chosen policy for a guess and applies it. Returns the
// next observation, the reward, whether the episode ended, and the
// step details. Terminal episodes accept no further steps.
func (e *Env) Step(actionID string) (*Observation, float64, bool, *StepInfo, error) {
	if e.status != StatusInProgress {
		return nil, 0, true, nil, fmt.Errorf("agent: episode already %s", e.status)
	}
	sv, ok := e.solvers[actionID]
	if !ok {
		return nil, 0, false, nil, fmt.Errorf("agent: unknown action %q (known: %s)", actionID, strings.Join(e.actions, ", "))
	}

	st := &solver.State{
		Turn:       e.turn + 1,
		N:          e.n,
		Candidates: e.candidates,
		Allowed:    e.allowed,
		History:    e.history,
	}

	t0 := time.Now()
	guess := strings.ToLower(sv.NextGuess(st))
	stepMs := float64(time.Since(t0)) / float64(time.Millisecond)

	var patt string
	var reward float64
	if engine.ValidGuess(guess, e.allowedSet, e.n) {
		patt = engine.Score(guess, e.answer)
		reward = -1 - e.alphaTime*(stepMs/100)
	} else {
		// heavy penalty, no information
		patt = strings.Repeat(string(engine.Gray), e.n)
		reward = -2 - e.alphaTime*(stepMs/100)
	}

	e.history = append(e.history, engine.Feedback{Guess: guess, Pattern: patt})
	e.prevLen = len(e.candidates)
	e.candidates = engine.Filter(e.candidates, []engine.Feedback{{Guess: guess, Pattern: patt}}, e.n)
	e.turn++

	done := false
	if engine.AllGreen(patt) {
		e.status = StatusWon
		done = true
	} else if e.turn >= MaxTurns {
		e.status = StatusLost
		done = true
	}

	info := &StepInfo{
		Guess:        guess,
		Pattern:      patt,
		TimeMs:       stepMs,
		ChosenSolver: actionID,
	}
	if done {
		info.Answer = e.answer
	}

	return e.observe(patt), reward, done, info, nil
}
