// Command simulate plays headless autopilot sessions in parallel and summarizes them,
// or replays a recorded session.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/1siamBot/galactic-rebellion/engine/ai"
	"github.com/1siamBot/galactic-rebellion/engine/config"
	"github.com/1siamBot/galactic-rebellion/engine/replay"
	"github.com/1siamBot/galactic-rebellion/engine/sim"
)

const frameMs = 1000.0 / 60

// Summary is the YAML report of a batch
type Summary struct {
	Runs         int          `yaml:"runs"`
	Difficulty   string       `yaml:"difficulty"`
	MeanScore    float64      `yaml:"mean_score"`
	MeanSurvival float64      `yaml:"mean_survival_ms"`
	BestScore    int          `yaml:"best_score"`
	BestSeed     int64        `yaml:"best_seed"`
	Results      []sim.Result `yaml:"results,omitempty"`
}

// RunOne plays a single autopilot session for at most limitMs of simulated time
func RunOne(ctx context.Context, seed int64, diff ai.Difficulty, limitMs float64) (sim.Result, error) {
	s := sim.New(seed)
	pilot := ai.NewAutopilot(diff)
	for !s.Over() && s.World.Now < limitMs {
		if s.World.TickCount%600 == 0 {
			if err := ctx.Err(); err != nil {
				return sim.Result{}, err
			}
		}
		s.Step(pilot.Decide(s.World, frameMs))
	}
	return s.Result(), nil
}

// RunBatch plays runs sessions on consecutive seeds with at most workers in flight
func RunBatch(ctx context.Context, firstSeed int64, runs, workers int, diff ai.Difficulty, limitMs float64) (Summary, error) {
	results := make([]sim.Result, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range runs {
		seed := firstSeed + int64(i)
		g.Go(func() error {
			r, err := RunOne(ctx, seed, diff, limitMs)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = r
			slog.Debug("run finished", "seed", seed, "score", r.Score, "survived_ms", r.SurvivedMs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(results, diff), nil
}

// Summarize aggregates results; an empty batch yields a zero summary
func Summarize(results []sim.Result, diff ai.Difficulty) Summary {
	sum := Summary{Runs: len(results), Difficulty: diff.String(), Results: results}
	if len(results) == 0 {
		return sum
	}
	var score, survival float64
	sum.BestScore = -1
	for _, r := range results {
		score += float64(r.Score)
		survival += r.SurvivedMs
		if r.Score > sum.BestScore {
			sum.BestScore, sum.BestSeed = r.Score, r.Seed
		}
	}
	sum.MeanScore = score / float64(len(results))
	sum.MeanSurvival = survival / float64(len(results))
	return sum
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}

func main() {
	runs := flag.Int("runs", 16, "Number of sessions")
	seed := flag.Int64("seed", 1, "Seed of the first session")
	workers := flag.Int("workers", runtime.NumCPU(), "Sessions simulated in parallel")
	difficulty := flag.String("difficulty", "medium", "Autopilot skill: easy, medium or hard")
	limit := flag.Duration("limit", 0, "Cap on simulated time per session (0 = 10m)")
	verbose := flag.Bool("v", false, "Include per-run results")
	replayPath := flag.String("replay", "", "Replay a recorded session instead of simulating")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	logger, err := config.NewLogger(config.LogConfig{Level: *logLevel, Format: "text"}, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	if *replayPath != "" {
		rp, err := replay.Load(*replayPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := writeYAML(os.Stdout, replay.Run(rp)); err != nil {
			log.Fatal(err)
		}
		return
	}

	limitMs := 10 * 60 * 1000.0
	if *limit > 0 {
		limitMs = float64(limit.Milliseconds())
	}
	if *workers < 1 {
		*workers = 1
	}

	diff := ai.ParseDifficulty(*difficulty)
	slog.Info("simulating", "runs", *runs, "workers", *workers, "difficulty", diff, "limit_ms", limitMs)
	summary, err := RunBatch(context.Background(), *seed, *runs, *workers, diff, limitMs)
	if err != nil {
		log.Fatal(err)
	}
	if !*verbose {
		summary.Results = nil
	}
	if err := writeYAML(os.Stdout, summary); err != nil {
		log.Fatal(err)
	}
}
