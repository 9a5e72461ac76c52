package agent

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// LinUCB is a per-action linear UCB bandit. Each action keeps an
// accumulator pair (A, b); selection scores are
//
//	xᵀθ_a + alpha·sqrt(xᵀA_a⁻¹x),  θ_a = A_a⁻¹ b_a
//
// and the chosen action's matrices get the rank-1 update A += xxᵀ,
// b += r·x. The inverse is maintained incrementally by the
// Sherman–Morrison formula instead of a fresh inversion per call.
//
// Not safe for concurrent use: training is order-sensitive, each
// update must land before the next selection reads the same matrices.
type LinUCB struct {
	actions []string
	d       int
	alpha   float64
	arms    map[string]*arm
}

type arm struct {
	a    *mat.Dense
	aInv *mat.Dense
	b    *mat.VecDense
}

func newArm(d int, l2 float64) *arm {
	a := mat.NewDense(d, d, nil)
	aInv := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		a.Set(i, i, l2)
		aInv.Set(i, i, 1/l2)
	}
	return &arm{a: a, aInv: aInv, b: mat.NewVecDense(d, nil)}
}

// NewLinUCB builds a fresh model. l2 is the ridge constant on each
// action's initial A matrix; it must be positive so A starts
// invertible.
func NewLinUCB(actions []string, d int, alpha, l2 float64) (*LinUCB, error) {
	if d <= 0 {
		return nil, fmt.Errorf("agent: feature dimension must be positive, got %d", d)
	}
	if l2 <= 0 {
		return nil, fmt.Errorf("agent: ridge constant must be positive, got %g", l2)
	}
	m := &LinUCB{
		actions: append([]string(nil), actions...),
		d:       d,
		alpha:   alpha,
		arms:    make(map[string]*arm, len(actions)),
	}
	for _, a := range m.actions {
		if _, dup := m.arms[a]; dup {
			return nil, fmt.Errorf("agent: duplicate action %q", a)
		}
		m.arms[a] = newArm(d, l2)
	}
	return m, nil
}

func (m *LinUCB) Actions() []string { return append([]string(nil), m.actions...) }
func (m *LinUCB) Dim() int          { return m.d }
func (m *LinUCB) Alpha() float64    { return m.alpha }

func (m *LinUCB) vec(x []float64) (*mat.VecDense, error) {
	if len(x) != m.d {
		return nil, fmt.Errorf("agent: feature vector has %d dims, model wants %d", len(x), m.d)
	}
	return mat.NewVecDense(m.d, append([]float64(nil), x...)), nil
}

// ActionScore is the UCB score of one action for a feature vector.
type ActionScore struct {
	Action string
	Mean   float64
	Bonus  float64
}

func (s ActionScore) Total() float64 { return s.Mean + s.Bonus }

// Scores returns every action's mean and exploration bonus for x, in
// action order.
func (m *LinUCB) Scores(x []float64) ([]ActionScore, error) {
	xv, err := m.vec(x)
	if err != nil {
		return nil, err
	}

	out := make([]ActionScore, 0, len(m.actions))
	for _, a := range m.actions {
		ar := m.arms[a]

		var theta mat.VecDense
		theta.MulVec(ar.aInv, ar.b)
		mean := mat.Dot(xv, &theta)

		var ax mat.VecDense
		ax.MulVec(ar.aInv, xv)
		quad := mat.Dot(xv, &ax)

		out = append(out, ActionScore{
			Action: a,
			Mean:   mean,
			Bonus:  m.alpha * math.Sqrt(math.Max(quad, 0)),
		})
	}
	return out, nil
}

// Select returns the action with the highest UCB score. Ties resolve
// to the first maximum in action order, so selection is deterministic
// for a fixed action list.
func (m *LinUCB) Select(x []float64) (string, error) {
	scores, err := m.Scores(x)
	if err != nil {
		return "", err
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Total() > best.Total() {
			best = s
		}
	}
	return best.Action, nil
}

// Update applies the rank-1 update for action after observing reward.
func (m *LinUCB) Update(action string, x []float64, reward float64) error {
	ar, ok := m.arms[action]
	if !ok {
		return fmt.Errorf("agent: unknown action %q (known: %s)", action, strings.Join(m.actions, ", "))
	}
	xv, err := m.vec(x)
	if err != nil {
		return err
	}

	// A += x xᵀ
	var outer mat.Dense
	outer.Outer(1, xv, xv)
	ar.a.Add(ar.a, &outer)

	// Sherman–Morrison: A⁻¹ -= (A⁻¹x)(A⁻¹x)ᵀ / (1 + xᵀA⁻¹x).
	// A⁻¹ is symmetric, so A⁻¹x serves for both factors.
	var u mat.VecDense
	u.MulVec(ar.aInv, xv)
	denom := 1 + mat.Dot(xv, &u)

	var corr mat.Dense
	corr.Outer(1/denom, &u, &u)
	ar.aInv.Sub(ar.aInv, &corr)

	// b += r·x
	ar.b.AddScaledVec(ar.b, reward, xv)
	return nil
}

// snapshot is the serialized model: the action list, dimensions, the
// exploration strength, and per-action A (row-major) and b.
type snapshot struct {
	Actions []string               `json:"actions"`
	D       int                    `json:"d"`
	Alpha   float64                `json:"alpha"`
	A       map[string][][]float64 `json:"A"`
	B       map[string][]float64   `json:"b"`
}

// MarshalJSON serializes the model so that a round trip reproduces
// identical selection behavior.
func (m *LinUCB) MarshalJSON() ([]byte, error) {
	s := snapshot{
		Actions: m.actions,
		D:       m.d,
		Alpha:   m.alpha,
		A:       make(map[string][][]float64, len(m.actions)),
		B:       make(map[string][]float64, len(m.actions)),
	}
	for _, a := range m.actions {
		ar := m.arms[a]
		rows := make([][]float64, m.d)
		for i := 0; i < m.d; i++ {
			rows[i] = append([]float64(nil), ar.a.RawRowView(i)...)
		}
		s.A[a] = rows
		s.B[a] = append([]float64(nil), ar.b.RawVector().Data...)
	}
	return json.Marshal(s)
}

// UnmarshalLinUCB restores a model from its JSON snapshot. The stored
// A matrices are exact, so the inverse is rebuilt by one solve per
// action and maintained incrementally from there.
func UnmarshalLinUCB(data []byte) (*LinUCB, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("agent: decoding bandit snapshot: %w", err)
	}

	m, err := NewLinUCB(s.Actions, s.D, s.Alpha, 1)
	if err != nil {
		return nil, err
	}

	for _, a := range m.actions {
		rows, ok := s.A[a]
		if !ok || len(rows) != s.D {
			return nil, fmt.Errorf("agent: snapshot A matrix for %q is malformed", a)
		}
		ar := m.arms[a]
		for i, row := range rows {
			if len(row) != s.D {
				return nil, fmt.Errorf("agent: snapshot A matrix for %q is malformed", a)
			}
			for j, v := range row {
				ar.a.Set(i, j, v)
			}
		}

		bv, ok := s.B[a]
		if !ok || len(bv) != s.D {
			return nil, fmt.Errorf("agent: snapshot b vector for %q is malformed", a)
		}
		for i, v := range bv {
			ar.b.SetVec(i, v)
		}

		if err := ar.aInv.Inverse(ar.a); err != nil {
			return nil, fmt.Errorf("agent: snapshot A matrix for %q is singular: %w", a, err)
		}
	}
	return m, nil
}
