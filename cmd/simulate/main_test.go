package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/1siamBot/galactic-rebellion/engine/ai"
	"github.com/1siamBot/galactic-rebellion/engine/sim"
)

func TestRunOneRespectsLimit(t *testing.T) {
	r, err := RunOne(context.Background(), 3, ai.DiffHard, 2000)
	require.NoError(t, err)
	assert.LessOrEqual(t, r.SurvivedMs, 2000+frameMs)
	assert.Equal(t, int64(3), r.Seed)
}

func TestRunOneCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunOne(ctx, 3, ai.DiffHard, 60000)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatchMatchesSequential(t *testing.T) {
	summary, err := RunBatch(context.Background(), 10, 4, 2, ai.DiffMedium, 5000)
	require.NoError(t, err)
	require.Len(t, summary.Results, 4)

	for i, r := range summary.Results {
		want, err := RunOne(context.Background(), 10+int64(i), ai.DiffMedium, 5000)
		require.NoError(t, err)
		assert.Equal(t, want, r)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]sim.Result{
		{Seed: 1, Score: 100, SurvivedMs: 1000},
		{Seed: 2, Score: 300, SurvivedMs: 3000},
	}, ai.DiffEasy)
	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, 200.0, s.MeanScore)
	assert.Equal(t, 2000.0, s.MeanSurvival)
	assert.Equal(t, 300, s.BestScore)
	assert.Equal(t, int64(2), s.BestSeed)
	assert.Equal(t, "easy", s.Difficulty)

	empty := Summarize(nil, ai.DiffMedium)
	assert.Zero(t, empty.Runs)
	assert.Zero(t, empty.BestScore)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, Summary{Runs: 1, BestScore: 50, Difficulty: "hard"}))

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, 1, back["runs"])
	assert.Equal(t, 50, back["best_score"])
	assert.NotContains(t, back, "results")
}
