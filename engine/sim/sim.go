// Package sim assembles a complete combat session: world, system pipeline, player and
// the opening hostile. It is the single entry point used by the game, the replay
// runner and the batch simulator.
package sim

import (
	"github.com/1siamBot/galactic-rebellion/engine/ai"
	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/systems"
)

// Result summarizes a session
type Result struct {
	Seed       int64   `yaml:"seed" msgpack:"seed"`
	Score      int     `yaml:"score" msgpack:"score"`
	Ticks      uint64  `yaml:"ticks" msgpack:"ticks"`
	SurvivedMs float64 `yaml:"survived_ms" msgpack:"survived_ms"`
	HP         int     `yaml:"hp" msgpack:"hp"`
	GameOver   bool    `yaml:"game_over" msgpack:"game_over"`
}

// Simulation owns one session. Listeners registered on Bus survive Restart.
type Simulation struct {
	Seed  int64
	Bus   *core.EventBus
	World *core.World
	Loop  *core.GameLoop
}

// New builds a running session for the given seed
func New(seed int64) *Simulation {
	s := &Simulation{Bus: core.NewEventBus()}
	s.reset(seed)
	return s
}

func (s *Simulation) reset(seed int64) {
	w := core.NewWorld(core.ArenaWidth, core.ArenaHeight, seed)
	w.Bus = s.Bus

	w.AddSystem(&ai.AISystem{})
	systems.Install(w)

	systems.SpawnPlayer(w)
	systems.SpawnAtEdge(w, systems.Raider)

	s.Seed = seed
	s.World = w
	s.Loop = core.NewGameLoop(w)
	s.Loop.Play()
}

// Step advances the session by one frame and delivers the frame's events
func (s *Simulation) Step(in core.Input) {
	s.Loop.Step(in)
	s.Bus.Dispatch()
}

// Restart discards the current world and starts over with a fresh session on the
// next seed. Events still queued from the old world are dropped.
func (s *Simulation) Restart() {
	s.Bus.Drain()
	s.reset(s.Seed + 1)
	s.Bus.Dispatch()
}

// Over reports whether the player has been defeated
func (s *Simulation) Over() bool { return s.Loop.State == core.StateGameOver }

// Paused reports whether stepping is suspended by the player
func (s *Simulation) Paused() bool { return s.Loop.State == core.StatePaused }

// TogglePause pauses or resumes a running session
func (s *Simulation) TogglePause() { s.Loop.TogglePause() }

// Score returns the current score
func (s *Simulation) Score() int { return s.World.Session.Score }

// Result returns a snapshot of the session
func (s *Simulation) Result() Result {
	w := s.World
	hp := 0
	if id := w.Player(); id != 0 {
		hp = w.MustGet(id, core.CompHealth).(*core.Health).Current
	}
	return Result{
		Seed:       s.Seed,
		Score:      w.Session.Score,
		Ticks:      w.TickCount,
		SurvivedMs: w.Now,
		HP:         hp,
		GameOver:   s.Over(),
	}
}
