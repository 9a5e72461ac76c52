package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/solverlab/wordleai/agent"
	"github.com/solverlab/wordleai/dataset"
	"github.com/solverlab/wordleai/harness"
	"github.com/solverlab/wordleai/solver"
)

func newEvalCmd() *cobra.Command {
	var (
		modelPath string
		answers   string
		allowed   string
		n         int
		sample    int
		seed      int64
		alphaTime float64
		outdir    string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a trained bandit model over a fixed case sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			data, err := os.ReadFile(modelPath)
			if err != nil {
				return err
			}
			model, err := agent.UnmarshalLinUCB(data)
			if err != nil {
				return err
			}

			answerWords, err := dataset.ReadWords(answers)
			if err != nil {
				return err
			}
			allowedWords, err := dataset.ReadWords(allowed)
			if err != nil {
				return err
			}
			answerWords = dataset.FilterLength(answerWords, n)
			allowedWords = dataset.FilterLength(allowedWords, n)

			env, err := agent.NewEnv(answerWords, allowedWords, n, seed, model.Actions(), alphaTime, solver.Builtin())
			if err != nil {
				return err
			}

			// deterministic case sample: shuffle indices by seed, take K
			cases := answerWords
			if sample > 0 && sample < len(cases) {
				rng := rand.New(rand.NewSource(seed))
				picked := make([]string, 0, sample)
				for _, i := range rng.Perm(len(cases))[:sample] {
					picked = append(picked, cases[i])
				}
				cases = picked
			}

			bar := progressbar.Default(int64(len(cases)), "evaluating")
			results := make([]harness.Result, 0, len(cases))
			for _, ans := range cases {
				r, err := evalEpisode(env, model, ans)
				if err != nil {
					return err
				}
				results = append(results, r)
				bar.Add(1)
			}

			wins := 0
			for _, r := range results {
				if r.Success {
					wins++
				}
			}
			log.Info("eval finished",
				"cases", len(results),
				"win_rate", fmt.Sprintf("%.3f", float64(wins)/float64(max(len(results), 1))))

			csvPath := filepath.Join(outdir, "bandit_eval.csv")
			if err := harness.WriteCSV(results, csvPath, harness.MaxTurns, n); err != nil {
				return err
			}
			log.Info("wrote report", "csv", csvPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "path to a linucb_model.json snapshot")
	cmd.Flags().StringVar(&answers, "answers", "data/answers_5.txt", "path to the answer pool")
	cmd.Flags().StringVar(&allowed, "allowed", "data/allowed_5.txt", "path to the allowed guess list")
	cmd.Flags().IntVar(&n, "n", 5, "word length")
	cmd.Flags().IntVar(&sample, "sample", 200, "evaluate on K sampled answers (0 = all)")
	cmd.Flags().Int64Var(&seed, "seed", 123, "rng seed")
	cmd.Flags().Float64Var(&alphaTime, "alpha-time", agent.DefaultAlphaTime, "compute-time weight in the per-turn reward")
	cmd.Flags().StringVar(&outdir, "outdir", "reports/bandit_eval", "output directory")
	cmd.MarkFlagRequired("model")
	return cmd
}

// evalEpisode plays one fixed-answer episode with the frozen model (no
// updates) and flattens it into a report row.
func evalEpisode(env *agent.Env, model *agent.LinUCB, answer string) (harness.Result, error) {
	obs := env.Reset(answer)

	var policies []string
	totalMs := 0.0
	for {
		action, err := model.Select(obs.Features)
		if err != nil {
			return harness.Result{}, err
		}
		next, _, done, info, err := env.Step(action)
		if err != nil {
			return harness.Result{}, err
		}
		policies = append(policies, info.ChosenSolver)
		totalMs += info.TimeMs
		obs = next
		if done {
			break
		}
	}

	return harness.Result{
		SolverID: "meta_linucb",
		Answer:   answer,
		Success:  env.Status() == agent.StatusWon,
		Guesses:  len(obs.History),
		TimeMs:   totalMs,
		History:  obs.History,
		Policies: policies,
	}, nil
}
