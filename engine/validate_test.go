package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidGuess(t *testing.T) {
	allowed := map[string]bool{"crane": true, "raise": true, "stare": true}

	assert.True(t, ValidGuess("crane", allowed, 5))
	assert.False(t, ValidGuess("cranes", allowed, 5), "wrong length")
	assert.False(t, ValidGuess("cr4ne", allowed, 5), "non-alpha")
	assert.False(t, ValidGuess("zzzzz", allowed, 5), "not in allowed set")
	assert.False(t, ValidGuess("", allowed, 5))
}
