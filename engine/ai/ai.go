package ai

import (
	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/geom"
	"github.com/1siamBot/galactic-rebellion/engine/systems"
)

// AISystem drives every hostile: pure seek toward the player plus a randomized
// fire schedule
type AISystem struct{}

func (s *AISystem) Priority() int { return 15 }

func (s *AISystem) Update(w *core.World, _ float64) {
	player := w.Player()
	if player == 0 {
		return
	}
	ppos := w.MustGet(player, core.CompPosition).(*core.Position)

	for id := range w.All(core.KindHostile) {
		pos := w.MustGet(id, core.CompPosition).(*core.Position)
		angle := pos.AngleTo(ppos)
		pos.Facing = angle

		if !systems.Knocked(w, id) {
			mov := w.MustGet(id, core.CompMovable).(*core.Movable)
			vel := w.MustGet(id, core.CompVelocity).(*core.Velocity)
			v := geom.FromAngle(angle, mov.Speed)
			vel.X, vel.Y = v.X, v.Y
		}

		hs := w.MustGet(id, core.CompHostile).(*core.Hostile)
		if w.Now > hs.NextShotAt {
			hs.NextShotAt = w.Now + float64(NextShotDelay(w))
			systems.FireHostile(w, id)
		}
	}
}

// NextShotDelay draws the wait before a hostile's next shot, uniform over the
// inclusive range [HostileShotMinMs, HostileShotMaxMs]
func NextShotDelay(w *core.World) int {
	return core.HostileShotMinMs + w.Rng.Intn(core.HostileShotMaxMs-core.HostileShotMinMs+1)
}
