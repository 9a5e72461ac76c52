package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps solver ids to constructors. It is built explicitly at
// startup; there is no import-order magic and duplicate ids are a hard
// configuration error.
type Registry struct {
	ctors map[string]func() Solver
}

func NewRegistry() *Registry {
	return &Registry{ctors: map[string]func() Solver{}}
}

// Register adds a constructor under id. Registering the same id twice
// is a startup bug, not something to paper over at runtime.
func (r *Registry) Register(id string, ctor func() Solver) error {
	if id == "" {
		return fmt.Errorf("solver: empty id")
	}
	if _, dup := r.ctors[id]; dup {
		return fmt.Errorf("solver: duplicate registration of %q", id)
	}
	r.ctors[id] = ctor
	return nil
}

// New instantiates a fresh solver by id.
func (r *Registry) New(id string) (Solver, error) {
	ctor, ok := r.ctors[id]
	if !ok {
		return nil, fmt.Errorf("solver: unknown id %q (known: %s)", id, strings.Join(r.IDs(), ", "))
	}
	return ctor(), nil
}

// IDs returns the registered ids, sorted for stable help text.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.ctors))
	for id := range r.ctors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Builtin returns a registry with every policy in this package.
func Builtin() *Registry {
	r := NewRegistry()
	ctors := []func() Solver{
		func() Solver { return &RandomConsistent{} },
		func() Solver { return &LetterFreq{} },
		func() Solver { return &PositionalFreq{} },
		func() Solver { return &Entropy{} },
		func() Solver { return &WeightedEntropy{} },
		func() Solver { return &ExpectedLeft{} },
		func() Solver { return &MaxPatterns{} },
		func() Solver { return &TwoStageProbe{} },
		func() Solver { return &TwoPlyMC{} },
	}
	for _, ctor := range ctors {
		if err := r.Register(ctor().ID(), ctor); err != nil {
			panic(err)
		}
	}
	return r
}
