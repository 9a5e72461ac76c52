package solver

// RandomConsistent picks uniformly from the current candidate set.
// A baseline to sanity-check the pipeline, not a serious strategy.
type RandomConsistent struct {
	base
}

func (s *RandomConsistent) ID() string { return "random_consistent" }

func (s *RandomConsistent) NextGuess(st *State) string {
	pool := st.Candidates
	if len(pool) == 0 {
		pool = st.Allowed
	}
	if len(pool) == 0 {
		return s.placeholder()
	}
	return pool[s.rng.Intn(len(pool))]
}
