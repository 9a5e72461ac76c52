package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solverlab/wordleai/dataset"
	"github.com/solverlab/wordleai/harness"
	"github.com/solverlab/wordleai/solver"
)

type runFlags struct {
	solverID string
	n        int
	answers  string
	allowed  string
	sample   int
	seed     int64
	outdir   string
	show     bool
}

func newRunCmd() *cobra.Command {
	var f runFlags
	reg := solver.Builtin()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one solver over the answer pool and write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOne(&f, reg)
		},
	}

	cmd.Flags().StringVar(&f.solverID, "solver", "random_consistent",
		fmt.Sprintf("solver id (one of: %s)", strings.Join(reg.IDs(), ", ")))
	cmd.Flags().IntVar(&f.n, "n", 5, "word length")
	cmd.Flags().StringVar(&f.answers, "answers", "data/answers_5.txt", "path to the answer pool")
	cmd.Flags().StringVar(&f.allowed, "allowed", "data/allowed_5.txt", "path to the allowed guess list")
	cmd.Flags().IntVar(&f.sample, "sample", 0, "run only the first K answers (0 = all)")
	cmd.Flags().Int64Var(&f.seed, "seed", 123, "base rng seed")
	cmd.Flags().StringVar(&f.outdir, "outdir", "reports", "output directory")
	cmd.Flags().BoolVar(&f.show, "show", false, "print each episode's colored history")
	return cmd
}

func runOne(f *runFlags, reg *solver.Registry) error {
	log := newLogger()

	rep := dataset.Validate(f.n, f.answers, f.allowed)
	log.Info("validated wordlists", "summary", rep.Summary())

	answers, err := dataset.ReadWords(f.answers)
	if err != nil {
		return err
	}
	allowed, err := dataset.ReadWords(f.allowed)
	if err != nil {
		return err
	}

	s, err := reg.New(f.solverID)
	if err != nil {
		return err
	}

	results := harness.RunBatch(s, answers, allowed, f.n, harness.BatchOptions{
		Seed:     f.seed,
		Sample:   f.sample,
		Progress: !f.show,
	})

	if f.show {
		for _, r := range results {
			fmt.Printf("%-8s %s\n", r.Answer, coloredHistory(r.History))
		}
	}

	wins := 0
	for _, r := range results {
		if r.Success {
			wins++
		}
	}
	log.Info("batch finished",
		"solver", f.solverID,
		"cases", len(results),
		"win_rate", fmt.Sprintf("%.3f", float64(wins)/float64(max(len(results), 1))))

	stamp := harness.TimestampID()
	csvPath := filepath.Join(f.outdir, fmt.Sprintf("run_%s.csv", stamp))
	manifestPath := filepath.Join(f.outdir, fmt.Sprintf("run_%s_manifest.json", stamp))

	if err := harness.WriteCSV(results, csvPath, harness.MaxTurns, f.n); err != nil {
		return err
	}
	manifest := &harness.Manifest{
		RunID:       harness.NewRunID(),
		GeneratedAt: stamp,
		Config: map[string]any{
			"solver": f.solverID, "n": f.n,
			"answers": f.answers, "allowed": f.allowed,
			"sample": f.sample, "seed": f.seed,
		},
		Wordlists: rep,
		NumCases:  len(results),
	}
	if err := harness.WriteManifest(manifest, manifestPath); err != nil {
		return err
	}

	log.Info("wrote reports", "csv", csvPath, "manifest", manifestPath)
	return nil
}
