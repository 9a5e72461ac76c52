package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solverlab/wordleai/dataset"
	"github.com/solverlab/wordleai/harness"
	"github.com/solverlab/wordleai/solver"
)

func newMultiCmd() *cobra.Command {
	var (
		solverIDs []string
		n         int
		answers   string
		allowed   string
		sample    int
		seed      int64
		outdir    string
	)
	reg := solver.Builtin()

	cmd := &cobra.Command{
		Use:   "multi",
		Short: "Run several solvers over a shared case sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			rep := dataset.Validate(n, answers, allowed)
			log.Info("validated wordlists", "summary", rep.Summary())

			answerWords, err := dataset.ReadWords(answers)
			if err != nil {
				return err
			}
			allowedWords, err := dataset.ReadWords(allowed)
			if err != nil {
				return err
			}

			// fail fast before the first long batch starts
			solvers := make([]solver.Solver, 0, len(solverIDs))
			for _, id := range solverIDs {
				s, err := reg.New(id)
				if err != nil {
					return err
				}
				solvers = append(solvers, s)
			}

			stamp := harness.TimestampID()
			for _, s := range solvers {
				results := harness.RunBatch(s, answerWords, allowedWords, n, harness.BatchOptions{
					Seed:     seed,
					Sample:   sample,
					Progress: true,
				})

				dir := filepath.Join(outdir, s.ID())
				csvPath := filepath.Join(dir, fmt.Sprintf("run_%s.csv", stamp))
				manifestPath := filepath.Join(dir, fmt.Sprintf("run_%s_manifest.json", stamp))

				if err := harness.WriteCSV(results, csvPath, harness.MaxTurns, n); err != nil {
					return err
				}
				manifest := &harness.Manifest{
					RunID:       harness.NewRunID(),
					GeneratedAt: stamp,
					Config: map[string]any{
						"solver": s.ID(), "n": n,
						"answers": answers, "allowed": allowed,
						"sample": sample, "seed": seed,
					},
					Wordlists: rep,
					NumCases:  len(results),
				}
				if err := harness.WriteManifest(manifest, manifestPath); err != nil {
					return err
				}
				log.Info("solver finished", "solver", s.ID(), "csv", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&solverIDs, "solvers",
		[]string{"positional_freq", "entropy", "expected_left"},
		fmt.Sprintf("solver ids to run (from: %s)", reg.IDs()))
	cmd.Flags().IntVar(&n, "n", 5, "word length")
	cmd.Flags().StringVar(&answers, "answers", "data/answers_5.txt", "path to the answer pool")
	cmd.Flags().StringVar(&allowed, "allowed", "data/allowed_5.txt", "path to the allowed guess list")
	cmd.Flags().IntVar(&sample, "sample", 0, "run only the first K answers (0 = all)")
	cmd.Flags().Int64Var(&seed, "seed", 123, "base rng seed")
	cmd.Flags().StringVar(&outdir, "outdir", "reports/multi", "output directory")
	return cmd
}
