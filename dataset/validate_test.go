package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanPair(t *testing.T) {
	answers := writeList(t, "answers.txt", "crane\nraise\n")
	allowed := writeList(t, "allowed.txt", "crane\nraise\nstare\n")

	rep := Validate(5, answers, allowed)
	assert.True(t, rep.Passed, "issues: %v", rep.Issues)
	assert.True(t, rep.AnswersSubsetAllowed)
	assert.Equal(t, 2, rep.Answers.Count)
	assert.Equal(t, 3, rep.Allowed.Count)
	assert.Empty(t, rep.Issues)

	sum := sha256.Sum256([]byte("crane\nraise\n"))
	assert.Equal(t, hex.EncodeToString(sum[:]), rep.Answers.SHA256)
}

func TestValidateAnswerOutsideAllowed(t *testing.T) {
	answers := writeList(t, "answers.txt", "crane\nscoop\n")
	allowed := writeList(t, "allowed.txt", "crane\nraise\n")

	rep := Validate(5, answers, allowed)
	assert.False(t, rep.Passed)
	assert.False(t, rep.AnswersSubsetAllowed)
	require.Len(t, rep.Issues, 1)
	assert.Contains(t, rep.Issues[0], "scoop")
}

func TestValidateFlagsInvalidLinesAndDupes(t *testing.T) {
	answers := writeList(t, "answers.txt", "crane\ncr4ne\ntoolong\ncrane\n")
	allowed := writeList(t, "allowed.txt", "crane\n")

	rep := Validate(5, answers, allowed)
	assert.False(t, rep.Passed)
	assert.Equal(t, 2, rep.Answers.InvalidLines)
	assert.Equal(t, 2, rep.Answers.Count)
	assert.Equal(t, 1, rep.Answers.UniqueCount)
	assert.Contains(t, rep.Issues, "answers has 2 invalid lines")
	assert.Contains(t, rep.Issues, "answers contains duplicates")
}

func TestValidateMissingFiles(t *testing.T) {
	rep := Validate(5, "/nonexistent/answers.txt", "/nonexistent/allowed.txt")
	assert.False(t, rep.Passed)
	assert.False(t, rep.Answers.Exists)
	assert.False(t, rep.Allowed.Exists)
	assert.Len(t, rep.Issues, 2)
}

func TestReportSummary(t *testing.T) {
	answers := writeList(t, "answers.txt", "crane\n")
	allowed := writeList(t, "allowed.txt", "crane\n")

	rep := Validate(5, answers, allowed)
	assert.Contains(t, rep.Summary(), "OK")
	assert.Contains(t, rep.Summary(), "N=5")

	bad := Validate(5, "/nonexistent/a.txt", allowed)
	assert.Contains(t, bad.Summary(), "ISSUES")
}
