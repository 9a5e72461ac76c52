package harness

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/solverlab/wordleai/dataset"
)

// excelSafePattern prefixes a pattern with an apostrophe so
// spreadsheet apps treat strings like "-GYY-" as text, not a formula.
func excelSafePattern(patt string) string {
	if patt == "" {
		return patt
	}
	return "'" + patt
}

// WriteCSV flattens results into one row per episode: identity and
// outcome columns, then guess_i/patt_i/policy_i triples padded to
// maxTurns. policy_i is which policy produced guess i; fixed-policy
// runs repeat one id, bandit runs vary per turn.
func WriteCSV(results []Result, path string, maxTurns, n int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"solver", "N", "answer", "success", "guesses", "time_ms"}
	for i := 1; i <= maxTurns; i++ {
		header = append(header,
			fmt.Sprintf("guess_%d", i), fmt.Sprintf("patt_%d", i), fmt.Sprintf("policy_%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.SolverID,
			strconv.Itoa(n),
			r.Answer,
			strconv.FormatBool(r.Success),
			strconv.Itoa(r.Guesses),
			strconv.FormatFloat(r.TimeMs, 'f', 3, 64),
		}
		for i := 0; i < maxTurns; i++ {
			guess, patt, policy := "", "", ""
			if i < len(r.History) {
				guess, patt = r.History[i].Guess, excelSafePattern(r.History[i].Pattern)
			}
			if i < len(r.Policies) {
				policy = r.Policies[i]
			}
			row = append(row, guess, patt, policy)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// Manifest is the JSON sidecar describing one run: identity, config
// echo, word-list validation and the case count.
type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt string          `json:"generated_at"`
	Config      map[string]any  `json:"config"`
	Wordlists   *dataset.Report `json:"wordlists,omitempty"`
	NumCases    int             `json:"num_cases"`
}

// WriteManifest writes the manifest JSON, indented for humans.
func WriteManifest(m *Manifest, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// TimestampID returns a compact UTC stamp for filenames, e.g.
// 20250820T024121Z.
func TimestampID() string {
	return time.Now().UTC().Format("20060102T150405Z")
}
