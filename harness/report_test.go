package harness

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverlab/wordleai/engine"
)

func TestExcelSafePattern(t *testing.T) {
	assert.Equal(t, "'-GYY-", excelSafePattern("-GYY-"))
	assert.Equal(t, "'GGGGG", excelSafePattern("GGGGG"))
	assert.Empty(t, excelSafePattern(""))
}

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{
			SolverID: "meta_linucb", Answer: "crane", Success: true,
			Guesses: 2, TimeMs: 1.234,
			History: []engine.Feedback{
				{Guess: "raise", Pattern: "YY--Y"},
				{Guess: "crane", Pattern: "GGGGG"},
			},
			Policies: []string{"entropy", "positional_freq"},
		},
		{
			SolverID: "positional_freq", Answer: "scoop", Success: false,
			Guesses: 6, TimeMs: 3.5,
			History: make([]engine.Feedback, 6),
		},
	}

	path := filepath.Join(t.TempDir(), "out", "results.csv")
	require.NoError(t, WriteCSV(results, path, 6, 5))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"solver", "N", "answer", "success", "guesses", "time_ms",
		"guess_1", "patt_1", "policy_1", "guess_2", "patt_2", "policy_2",
		"guess_3", "patt_3", "policy_3", "guess_4", "patt_4", "policy_4",
		"guess_5", "patt_5", "policy_5", "guess_6", "patt_6", "policy_6",
	}, rows[0])

	first := rows[1]
	assert.Equal(t, "meta_linucb", first[0])
	assert.Equal(t, "5", first[1])
	assert.Equal(t, "crane", first[2])
	assert.Equal(t, "true", first[3])
	assert.Equal(t, "2", first[4])
	assert.Equal(t, "1.234", first[5])
	assert.Equal(t, "raise", first[6])
	assert.Equal(t, "'YY--Y", first[7], "pattern cells are spreadsheet-safe")
	assert.Equal(t, "entropy", first[8], "turn 1's chosen policy survives into the report")
	assert.Equal(t, "crane", first[9])
	assert.Equal(t, "'GGGGG", first[10])
	assert.Equal(t, "positional_freq", first[11], "per-turn policies vary on bandit rows")
	// unused turns are padded with empty cells
	assert.Empty(t, first[12])
	assert.Empty(t, first[23])
}

func TestWriteManifest(t *testing.T) {
	m := &Manifest{
		RunID:       NewRunID(),
		GeneratedAt: TimestampID(),
		Config:      map[string]any{"solver": "entropy", "n": 5, "seed": 42},
		NumCases:    12,
	}

	path := filepath.Join(t.TempDir(), "run", "manifest.json")
	require.NoError(t, WriteManifest(m, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m.RunID, got.RunID)
	assert.Equal(t, m.GeneratedAt, got.GeneratedAt)
	assert.Equal(t, "entropy", got.Config["solver"])
	assert.Equal(t, 12, got.NumCases)
	assert.Nil(t, got.Wordlists)
}

func TestTimestampID(t *testing.T) {
	id := TimestampID()
	assert.Len(t, id, 16)
	assert.Equal(t, byte('Z'), id[len(id)-1])
}
