package solver

import "math/bits"

// Letterset is a 26-bit set of letters, indexed 0 for 'a' through 25
// for 'z'. Probe selection uses it for coverage and for banning the
// letters an earlier guess already spent.
type Letterset uint32

// Letters returns the set of distinct letters in w.
func Letters(w string) Letterset {
	var s Letterset
	for i := 0; i < len(w); i++ {
		s = s.Add(w[i] - 'a')
	}
	return s
}

func (s Letterset) Add(c byte) Letterset { return s | 1<<c }

func (s Letterset) Has(c byte) bool { return s&(1<<c) != 0 }

func (s Letterset) Count() int { return bits.OnesCount32(uint32(s)) }

// Each returns the member letter indices in ascending order.
func (s Letterset) Each() []byte {
	out := make([]byte, 0, s.Count())
	for c := byte(0); c < 26; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
