package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreGolden(t *testing.T) {
	cases := []struct {
		guess, answer, want string
	}{
		// N=5, duplicates and placements
		{"belle", "level", "-GYYY"},
		{"level", "level", "GGGGG"},
		{"lemon", "level", "GG---"},
		{"cools", "scoop", "YYG-Y"},
		{"scoop", "scoop", "GGGGG"},
		{"crane", "crane", "GGGGG"},
		{"raise", "crane", "YY--G"},
		{"stare", "crane", "--GYG"},
		// N=6
		{"settle", "letter", "-GGGYY"},
		{"little", "letter", "G-GG-Y"},
		{"planet", "palate", "GYY-YY"},
		{"kitten", "tinket", "YGYYGY"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Score(c.guess, c.answer), "Score(%q, %q)", c.guess, c.answer)
	}
}

func TestScoreSelfIsAllGreen(t *testing.T) {
	for _, w := range []string{"crane", "belle", "scoop", "letter", "aaaaa"} {
		patt := Score(w, w)
		assert.True(t, AllGreen(patt), "Score(%q, %q) = %q", w, w, patt)
	}
}

func TestScoreDeterministic(t *testing.T) {
	first := Score("raise", "crane")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Score("raise", "crane"))
	}
}

func TestScoreLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Score("crane", "letter") })
}

func TestAllGreen(t *testing.T) {
	assert.True(t, AllGreen("GGGGG"))
	assert.False(t, AllGreen("GGGGY"))
	assert.False(t, AllGreen(""))
}
