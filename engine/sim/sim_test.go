package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/galactic-rebellion/engine/ai"
	"github.com/1siamBot/galactic-rebellion/engine/core"
)

func run(seed int64, frames int) Result {
	s := New(seed)
	pilot := ai.NewAutopilot(ai.DiffMedium)
	for range frames {
		if s.Over() {
			break
		}
		s.Step(pilot.Decide(s.World, 16))
	}
	return s.Result()
}

func TestNewSession(t *testing.T) {
	s := New(42)
	r := s.Result()
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, core.PlayerHealth, r.HP)
	assert.Zero(t, r.Score)
	assert.False(t, r.GameOver)
	assert.Equal(t, core.StatePlaying, s.Loop.State)

	hostiles := 0
	for range s.World.All(core.KindHostile) {
		hostiles++
	}
	assert.Equal(t, 1, hostiles, "a session opens with one hostile")
}

func TestDeterministic(t *testing.T) {
	a := run(7, 3000)
	b := run(7, 3000)
	assert.Equal(t, a, b)
}

func TestStepDispatchesEvents(t *testing.T) {
	s := New(3)
	var spawned []core.Kind
	s.Bus.On(core.EvtEntitySpawned, func(e core.Event) {
		spawned = append(spawned, e.Payload.(core.EntitySpawned).Kind)
	})
	huds := 0
	s.Bus.On(core.EvtHudUpdate, func(core.Event) { huds++ })

	s.Step(core.Input{ElapsedMs: 16})
	require.GreaterOrEqual(t, len(spawned), 2)
	assert.Equal(t, core.KindPlayer, spawned[0])
	assert.Equal(t, core.KindHostile, spawned[1])
	assert.Equal(t, 1, huds)
	assert.Zero(t, s.Bus.Pending())
}

func TestRestart(t *testing.T) {
	s := New(5)
	overs := 0
	s.Bus.On(core.EvtGameOver, func(core.Event) { overs++ })

	for i := 0; !s.Over() && i < 10000; i++ {
		s.Step(core.Input{ElapsedMs: core.MaxFrameMs})
	}
	require.Equal(t, 1, overs)
	assert.Zero(t, s.Result().HP)

	s.Restart()
	assert.Equal(t, int64(6), s.Seed)
	assert.False(t, s.Over())
	r := s.Result()
	assert.Equal(t, core.PlayerHealth, r.HP)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.Ticks)
	assert.Equal(t, core.PowerMax, s.World.Session.Power)

	for i := 0; !s.Over() && i < 10000; i++ {
		s.Step(core.Input{ElapsedMs: core.MaxFrameMs})
	}
	assert.Equal(t, 2, overs, "listeners survive a restart")
}

func TestPause(t *testing.T) {
	s := New(9)
	s.TogglePause()
	assert.True(t, s.Paused())
	s.Step(core.Input{ElapsedMs: 16})
	assert.Zero(t, s.World.TickCount)
	s.TogglePause()
	s.Step(core.Input{ElapsedMs: 16})
	assert.Equal(t, uint64(1), s.World.TickCount)
}
