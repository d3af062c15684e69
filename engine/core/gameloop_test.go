package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIgnoredUntilPlaying(t *testing.T) {
	gl := NewGameLoop(newTestWorld())
	gl.Step(Input{ElapsedMs: 16})
	assert.Equal(t, uint64(0), gl.CurrentTick())

	gl.Play()
	gl.Step(Input{ElapsedMs: 16})
	assert.Equal(t, uint64(1), gl.CurrentTick())

	gl.TogglePause()
	assert.Equal(t, StatePaused, gl.State)
	gl.Step(Input{ElapsedMs: 16})
	assert.Equal(t, uint64(1), gl.CurrentTick())
	gl.TogglePause()
	assert.Equal(t, StatePlaying, gl.State)
}

func TestStepCapsElapsed(t *testing.T) {
	gl := NewGameLoop(newTestWorld())
	gl.Play()
	gl.Step(Input{ElapsedMs: 5000})
	assert.Equal(t, MaxFrameMs, gl.World.Now)
	gl.Step(Input{ElapsedMs: -10})
	assert.Equal(t, MaxFrameMs, gl.World.Now)
}

func TestStepStoresInput(t *testing.T) {
	gl := NewGameLoop(newTestWorld())
	gl.Play()
	in := Input{MoveX: 1, AimX: 3, AimY: 4, Fire: true, ElapsedMs: 10}
	gl.Step(in)
	assert.Equal(t, in, gl.World.Input)
}

func TestGameOverEmittedOnce(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "kill", priority: 10, log: &log, onUpdate: func(w *World) {
		w.Session.Score = 120
		w.Session.Defeated = true
	}})
	gl := NewGameLoop(w)
	gl.Play()
	gl.Step(Input{ElapsedMs: 16})
	require.Equal(t, StateGameOver, gl.State)

	gl.Step(Input{ElapsedMs: 16})
	gl.Play()
	gl.Step(Input{ElapsedMs: 16})
	assert.Equal(t, StateGameOver, gl.State, "game over is terminal")

	var overs []GameOver
	for _, e := range w.Bus.Drain() {
		if e.Type == EvtGameOver {
			overs = append(overs, e.Payload.(GameOver))
		}
	}
	require.Len(t, overs, 1)
	assert.Equal(t, 120, overs[0].FinalScore)
	assert.Equal(t, uint64(1), gl.CurrentTick())
}

func TestSessionClamps(t *testing.T) {
	s := NewSession()
	s.AddPower(50)
	assert.Equal(t, PowerMax, s.Power)
	s.AddPower(-500)
	assert.Equal(t, 0.0, s.Power)

	s.AddScore(50)
	s.AddScore(-20)
	assert.Equal(t, 50, s.Score)

	assert.True(t, s.CanFire(0), "first shot is never blocked by the clock")
	assert.True(t, math.IsInf(s.LastPushAt, -1))
	assert.True(t, s.MeleeAvailable(0))
	assert.False(t, s.CanPush(0), "no power left")
}

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	bus.On(EvtHudUpdate, func(e Event) { got = append(got, e.Type) })
	all := 0
	bus.OnAll(func(Event) { all++ })

	bus.Emit(Event{Type: EvtHudUpdate})
	bus.Emit(Event{Type: EvtGameOver})
	assert.Equal(t, 2, bus.Pending())
	bus.Dispatch()

	assert.Equal(t, []EventType{EvtHudUpdate}, got)
	assert.Equal(t, 2, all)
	assert.Equal(t, 0, bus.Pending())
}
