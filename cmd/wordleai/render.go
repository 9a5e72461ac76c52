package main

import (
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/solverlab/wordleai/engine"
)

// coloredGuess renders a guess with its feedback pattern, one colored
// letter per slot.
func coloredGuess(fb engine.Feedback) string {
	var b strings.Builder
	for i := 0; i < len(fb.Guess) && i < len(fb.Pattern); i++ {
		letter := string(fb.Guess[i])
		switch fb.Pattern[i] {
		case engine.Green:
			b.WriteString(colorstring.Color("[green]" + letter))
		case engine.Yellow:
			b.WriteString(colorstring.Color("[yellow]" + letter))
		default:
			b.WriteString(colorstring.Color("[dark_gray]" + letter))
		}
	}
	return b.String()
}

// coloredHistory joins a whole episode into one line.
func coloredHistory(history []engine.Feedback) string {
	parts := make([]string, 0, len(history))
	for _, fb := range history {
		parts = append(parts, coloredGuess(fb))
	}
	return strings.Join(parts, " ")
}
