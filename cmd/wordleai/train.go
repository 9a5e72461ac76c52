package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/solverlab/wordleai/agent"
	"github.com/solverlab/wordleai/dataset"
	"github.com/solverlab/wordleai/harness"
	"github.com/solverlab/wordleai/solver"
)

func newTrainCmd() *cobra.Command {
	var (
		answers   string
		allowed   string
		n         int
		episodes  int
		alphaTime float64
		ucbAlpha  float64
		ridge     float64
		seed      int64
		actions   []string
		outdir    string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the LinUCB bandit to pick a policy per turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

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

			env, err := agent.NewEnv(answerWords, allowedWords, n, seed, actions, alphaTime, solver.Builtin())
			if err != nil {
				return err
			}

			bandit, err := agent.NewLinUCB(env.Actions(), agent.FeatureDim(n), ucbAlpha, ridge)
			if err != nil {
				return err
			}

			var (
				totalReward float64
				steps       int
				wins        int
				timeMsTotal float64
			)

			bar := progressbar.Default(int64(episodes), "training")
			for ep := 1; ep <= episodes; ep++ {
				obs := env.Reset("")
				for {
					x := obs.Features
					action, err := bandit.Select(x)
					if err != nil {
						return err
					}
					next, reward, done, info, err := env.Step(action)
					if err != nil {
						return err
					}
					if err := bandit.Update(action, x, reward); err != nil {
						return err
					}

					totalReward += reward
					steps++
					timeMsTotal += info.TimeMs
					obs = next

					if done {
						if env.Status() == agent.StatusWon {
							wins++
						}
						break
					}
				}

				bar.Add(1)
				if ep%1000 == 0 {
					log.Info("training progress",
						"episode", ep,
						"avg_reward_per_step", fmt.Sprintf("%.4f", totalReward/float64(steps)),
						"win_rate", fmt.Sprintf("%.3f", float64(wins)/float64(ep)),
						"avg_time_ms_per_step", fmt.Sprintf("%.2f", timeMsTotal/float64(steps)))
				}
			}

			if err := os.MkdirAll(outdir, 0o755); err != nil {
				return err
			}

			modelPath := filepath.Join(outdir, "linucb_model.json")
			data, err := json.Marshal(bandit)
			if err != nil {
				return err
			}
			if err := os.WriteFile(modelPath, data, 0o644); err != nil {
				return err
			}

			manifest := &harness.Manifest{
				RunID:       harness.NewRunID(),
				GeneratedAt: harness.TimestampID(),
				Config: map[string]any{
					"episodes": episodes, "n": n,
					"actions": env.Actions(),
					"alpha_time": alphaTime, "ucb_alpha": ucbAlpha, "ridge": ridge,
					"answers": answers, "allowed": allowed, "seed": seed,
					"avg_reward_per_step": totalReward / float64(max(steps, 1)),
					"train_steps":         steps,
					"win_rate_estimate":   float64(wins) / float64(episodes),
					"model_path":          modelPath,
				},
				NumCases: episodes,
			}
			if err := harness.WriteManifest(manifest, filepath.Join(outdir, "train_manifest.json")); err != nil {
				return err
			}

			log.Info("saved model", "path", modelPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&answers, "answers", "data/answers_5.txt", "path to the answer pool")
	cmd.Flags().StringVar(&allowed, "allowed", "data/allowed_5.txt", "path to the allowed guess list")
	cmd.Flags().IntVar(&n, "n", 5, "word length")
	cmd.Flags().IntVar(&episodes, "episodes", 50000, "training episodes")
	cmd.Flags().Float64Var(&alphaTime, "alpha-time", agent.DefaultAlphaTime, "compute-time weight in the per-turn reward")
	cmd.Flags().Float64Var(&ucbAlpha, "ucb-alpha", 0.5, "LinUCB exploration strength")
	cmd.Flags().Float64Var(&ridge, "ridge", 1.0, "ridge constant on each action's initial A matrix")
	cmd.Flags().Int64Var(&seed, "seed", 123, "rng seed")
	cmd.Flags().StringSliceVar(&actions, "actions", nil, "policy ids the bandit chooses among (default: fast set)")
	cmd.Flags().StringVar(&outdir, "outdir", "reports/bandit_train", "output directory")
	return cmd
}
