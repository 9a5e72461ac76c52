package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadWords(t *testing.T) {
	path := writeList(t, "words.txt", "CRANE\n raise \n\nstare\n\n")
	words, err := ReadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "raise", "stare"}, words, "lowercased, trimmed, blanks dropped, order kept")
}

func TestReadWordsMissingFile(t *testing.T) {
	_, err := ReadWords(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFilterLength(t *testing.T) {
	words := []string{"crane", "toolong", "cat", "raise"}
	assert.Equal(t, []string{"crane", "raise"}, FilterLength(words, 5))
	assert.Empty(t, FilterLength(words, 4))
}

func TestWordSet(t *testing.T) {
	set := WordSet([]string{"crane", "raise"})
	assert.True(t, set["crane"])
	assert.False(t, set["stare"])
}
