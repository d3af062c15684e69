package systems

import (
	"github.com/1siamBot/galactic-rebellion/engine/core"
)

// HostileDef defines a hostile type that the director can introduce
type HostileDef struct {
	Name     string
	SpeedMin int // units per second, inclusive
	SpeedMax int
	HP       int
}

// Raider is the only hostile type
var Raider = HostileDef{
	Name:     "raider",
	SpeedMin: core.HostileSpeedMin,
	SpeedMax: core.HostileSpeedMax,
	HP:       core.HostileHealth,
}

// Edge identifies an arena side
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// SpawnSystem introduces one hostile each time its accumulator passes the interval
type SpawnSystem struct {
	Interval float64 // ms; zero means core.SpawnIntervalMs
	Def      HostileDef

	accumulator float64
}

// NewSpawnSystem creates a director with the default timing and hostile type
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{Interval: core.SpawnIntervalMs, Def: Raider}
}

func (s *SpawnSystem) Priority() int { return 60 }

func (s *SpawnSystem) Update(w *core.World, dt float64) {
	interval := s.Interval
	if interval <= 0 {
		interval = core.SpawnIntervalMs
	}
	s.accumulator += dt
	if s.accumulator > interval {
		s.accumulator = 0
		SpawnAtEdge(w, s.Def)
	}
}

// Accumulated returns the time banked toward the next spawn
func (s *SpawnSystem) Accumulated() float64 { return s.accumulator }

// SpawnPlayer places the player at the arena centre and records it in the session
func SpawnPlayer(w *core.World) core.EntityID {
	id := w.SpawnAgent(core.KindPlayer, w.Width/2, w.Height/2, core.PlayerSpeed, core.PlayerHealth)
	w.Session.PlayerID = id
	return id
}

// SpawnHostile places a hostile of the given speed; it may fire on its next AI pass
func SpawnHostile(w *core.World, x, y, speed float64, hp int) core.EntityID {
	return w.SpawnAgent(core.KindHostile, x, y, speed, hp)
}

// SpawnAtEdge picks a random side and a random point along it, just outside the arena
func SpawnAtEdge(w *core.World, def HostileDef) core.EntityID {
	edge := Edge(w.Rng.Intn(4))
	x, y := EdgePoint(w, edge)
	if def.HP == 0 {
		def = Raider
	}
	speed := def.SpeedMin + w.Rng.Intn(def.SpeedMax-def.SpeedMin+1)
	return SpawnHostile(w, x, y, float64(speed), def.HP)
}

// EdgePoint returns a spawn point HostileSpawnMargin outside the given edge
func EdgePoint(w *core.World, edge Edge) (x, y float64) {
	m := core.HostileSpawnMargin
	switch edge {
	case EdgeLeft:
		return -m, float64(w.Rng.Intn(int(w.Height) + 1))
	case EdgeRight:
		return w.Width + m, float64(w.Rng.Intn(int(w.Height) + 1))
	case EdgeTop:
		return float64(w.Rng.Intn(int(w.Width) + 1)), -m
	default:
		return float64(w.Rng.Intn(int(w.Width) + 1)), w.Height + m
	}
}
