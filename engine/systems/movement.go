package systems

import (
	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/geom"
)

// PlayerControlSystem turns the input snapshot into player velocity and facing
type PlayerControlSystem struct{}

func (s *PlayerControlSystem) Priority() int { return 10 }

func (s *PlayerControlSystem) Update(w *core.World, _ float64) {
	id := w.Player()
	if id == 0 {
		return
	}
	pos := w.MustGet(id, core.CompPosition).(*core.Position)
	vel := w.MustGet(id, core.CompVelocity).(*core.Velocity)
	mov := w.MustGet(id, core.CompMovable).(*core.Movable)
	in := w.Input

	// The player faces the aim point regardless of movement direction
	pos.Facing = geom.AngleBetween(pos.X, pos.Y, in.AimX, in.AimY)

	if Knocked(w, id) {
		return
	}
	dir := geom.V2(in.MoveX, in.MoveY).Normalize().Scale(mov.Speed)
	vel.X, vel.Y = dir.X, dir.Y
}

// IntegrateSystem advances every moving entity by its velocity
type IntegrateSystem struct{}

func (s *IntegrateSystem) Priority() int { return 20 }

func (s *IntegrateSystem) Update(w *core.World, dt float64) {
	sec := dt / 1000
	for _, id := range w.Query(core.CompPosition, core.CompVelocity) {
		pos := w.MustGet(id, core.CompPosition).(*core.Position)
		vel := w.MustGet(id, core.CompVelocity).(*core.Velocity)

		pos.X += vel.X * sec
		pos.Y += vel.Y * sec

		if id == w.Session.PlayerID {
			r := w.MustGet(id, core.CompCollider).(*core.Collider).Radius
			pos.X = geom.Clamp(pos.X, r, w.Width-r)
			pos.Y = geom.Clamp(pos.Y, r, w.Height-r)
		}

		if kb, ok := w.Get(id, core.CompKnockback).(*core.Knockback); ok {
			kb.RemainingMs -= dt
			if kb.RemainingMs <= 0 {
				w.Detach(id, core.CompKnockback)
			}
		}

		w.Emit(core.EvtEntityMoved, core.EntityMoved{ID: id, X: pos.X, Y: pos.Y, Rotation: pos.Facing})
	}
}

// Impulse overwrites an entity's velocity and suspends its steering for KnockbackMs
func Impulse(w *core.World, id core.EntityID, v geom.Vec2) {
	if !w.Alive(id) {
		return
	}
	vel, ok := w.Get(id, core.CompVelocity).(*core.Velocity)
	if !ok {
		return
	}
	vel.X, vel.Y = v.X, v.Y
	w.Attach(id, &core.Knockback{RemainingMs: core.KnockbackMs})
}

// Knocked reports whether an imposed velocity is still playing out
func Knocked(w *core.World, id core.EntityID) bool {
	return w.Has(id, core.CompKnockback)
}
