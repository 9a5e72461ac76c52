package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// FileReport carries per-file diagnostics for one word list.
type FileReport struct {
	Path         string `json:"path"`
	Exists       bool   `json:"exists"`
	Count        int    `json:"count"`
	SHA256       string `json:"sha256"`
	UniqueCount  int    `json:"unique_count"`
	InvalidLines int    `json:"invalid_lines"`
}

// Report is the validation result for an (answers, allowed) pair.
type Report struct {
	N                    int        `json:"N"`
	Answers              FileReport `json:"answers"`
	Allowed              FileReport `json:"allowed"`
	AnswersSubsetAllowed bool       `json:"answers_subset_allowed"`
	Passed               bool       `json:"passed"`
	Issues               []string   `json:"issues"`
}

func isCleanWord(w string, n int) bool {
	if len(w) != n {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

func inspectFile(path string, n int) (FileReport, []string) {
	rep := FileReport{Path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		return rep, nil
	}
	rep.Exists = true

	sum := sha256.Sum256(raw)
	rep.SHA256 = hex.EncodeToString(sum[:])

	seen := map[string]bool{}
	var valid []string
	for _, line := range strings.Split(string(raw), "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		if !isCleanWord(w, n) {
			rep.InvalidLines++
			continue
		}
		valid = append(valid, w)
		seen[w] = true
	}
	rep.Count = len(valid)
	rep.UniqueCount = len(seen)
	return rep, valid
}

// Validate checks the answers/allowed pair: formatting rules, dupes,
// hashes, and that answers ⊆ allowed.
func Validate(n int, answersPath, allowedPath string) *Report {
	rep := &Report{N: n}

	var answers, allowed []string
	rep.Answers, answers = inspectFile(answersPath, n)
	rep.Allowed, allowed = inspectFile(allowedPath, n)

	if !rep.Answers.Exists {
		rep.Issues = append(rep.Issues, fmt.Sprintf("answers file missing: %s", answersPath))
	}
	if !rep.Allowed.Exists {
		rep.Issues = append(rep.Issues, fmt.Sprintf("allowed file missing: %s", allowedPath))
	}
	if rep.Answers.InvalidLines > 0 {
		rep.Issues = append(rep.Issues, fmt.Sprintf("answers has %d invalid lines", rep.Answers.InvalidLines))
	}
	if rep.Allowed.InvalidLines > 0 {
		rep.Issues = append(rep.Issues, fmt.Sprintf("allowed has %d invalid lines", rep.Allowed.InvalidLines))
	}
	if rep.Answers.Count != rep.Answers.UniqueCount {
		rep.Issues = append(rep.Issues, "answers contains duplicates")
	}
	if rep.Allowed.Count != rep.Allowed.UniqueCount {
		rep.Issues = append(rep.Issues, "allowed contains duplicates")
	}

	allowedSet := WordSet(allowed)
	rep.AnswersSubsetAllowed = true
	for _, w := range answers {
		if !allowedSet[w] {
			rep.AnswersSubsetAllowed = false
			rep.Issues = append(rep.Issues, fmt.Sprintf("answer %q not in allowed list", w))
			break
		}
	}

	rep.Passed = len(rep.Issues) == 0
	return rep
}

// Summary is a one-line human overview of the report.
func (r *Report) Summary() string {
	status := "OK"
	if !r.Passed {
		status = fmt.Sprintf("ISSUES(%d)", len(r.Issues))
	}
	return fmt.Sprintf("wordlists N=%d answers=%d allowed=%d subset=%t %s",
		r.N, r.Answers.Count, r.Allowed.Count, r.AnswersSubsetAllowed, status)
}
