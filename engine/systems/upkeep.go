package systems

import (
	"github.com/1siamBot/galactic-rebellion/engine/core"
)

// UpkeepSystem regenerates power and publishes the HUD values at the end of a tick
type UpkeepSystem struct{}

func (s *UpkeepSystem) Priority() int { return 70 }

func (s *UpkeepSystem) Update(w *core.World, dt float64) {
	w.Session.AddPower(dt * core.PowerRegenPerMs)

	hp := 0
	if id := w.Player(); id != 0 {
		hp = w.MustGet(id, core.CompHealth).(*core.Health).Current
	}
	w.Emit(core.EvtHudUpdate, core.HudUpdate{
		HP:    hp,
		Score: w.Session.Score,
		Power: w.Session.Power,
	})
}

// Install registers the full combat pipeline on a world, except the hostile AI which
// lives in its own package
func Install(w *core.World) {
	w.AddSystem(&PlayerControlSystem{})
	w.AddSystem(&IntegrateSystem{})
	w.AddSystem(&ProjectileSystem{})
	w.AddSystem(&CollisionSystem{})
	w.AddSystem(&AbilitySystem{})
	w.AddSystem(NewSpawnSystem())
	w.AddSystem(&UpkeepSystem{})
}
