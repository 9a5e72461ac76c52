package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordleai",
		Short:         "Research engine for Wordle-style solving experiments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(),
		newMultiCmd(),
		newTrainCmd(),
		newEvalCmd(),
	)
	return root
}
