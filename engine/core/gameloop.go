package core

// GameState represents the overall game state
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// GameLoop drives the world with a variable timestep: one Step per rendered frame,
// scaled by the frame's elapsed time.
type GameLoop struct {
	World *World
	State GameState
}

// NewGameLoop wraps a world; the loop starts in StateMenu
func NewGameLoop(w *World) *GameLoop {
	return &GameLoop{World: w}
}

// Step runs one simulation tick for the given input. It is a no-op unless playing.
// Elapsed time is capped at MaxFrameMs; negative deltas count as zero.
func (gl *GameLoop) Step(in Input) {
	if gl.State != StatePlaying {
		return
	}

	dt := in.ElapsedMs
	if dt > MaxFrameMs {
		dt = MaxFrameMs
	}
	if dt < 0 {
		dt = 0
	}

	w := gl.World
	w.Input = in
	w.Tick(dt)

	if w.Session.Defeated {
		gl.State = StateGameOver
		w.Emit(EvtHudUpdate, HudUpdate{HP: 0, Score: w.Session.Score, Power: w.Session.Power})
		w.Emit(EvtGameOver, GameOver{FinalScore: w.Session.Score})
	}
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	if gl.State == StateGameOver {
		return
	}
	gl.State = StatePlaying
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	if gl.State == StatePlaying {
		gl.State = StatePaused
	}
}

// TogglePause flips between playing and paused
func (gl *GameLoop) TogglePause() {
	switch gl.State {
	case StatePlaying:
		gl.State = StatePaused
	case StatePaused:
		gl.State = StatePlaying
	}
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.World.TickCount
}
