package systems

import (
	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/geom"
)

const meleeFlashMs = 150.0

// AbilitySystem resolves the melee and push triggers of the current input
type AbilitySystem struct{}

func (s *AbilitySystem) Priority() int { return 50 }

func (s *AbilitySystem) Update(w *core.World, _ float64) {
	if w.Input.Melee {
		Melee(w)
	}
	if w.Input.Push {
		Push(w)
	}
}

// Melee strikes every hostile inside the frontal cone. The hit set is fixed when the
// swing starts; it reports false if the swing was rejected.
func Melee(w *core.World) bool {
	player := w.Player()
	if player == 0 {
		return false
	}
	s := w.Session
	if !s.MeleeAvailable(w.Now) {
		return false
	}
	s.MeleeReadyAt = w.Now + core.MeleeCooldown

	ppos := w.MustGet(player, core.CompPosition).(*core.Position)
	w.Emit(core.EvtAbilityEffect, core.AbilityEffect{
		Kind:       core.AbilityMelee,
		X:          ppos.X,
		Y:          ppos.Y,
		Facing:     ppos.Facing,
		Radius:     core.MeleeRange,
		DurationMs: meleeFlashMs,
	})

	var hits []core.EntityID
	for h := range w.All(core.KindHostile) {
		hpos := w.MustGet(h, core.CompPosition).(*core.Position)
		if ppos.DistanceTo(hpos) > core.MeleeRange {
			continue
		}
		if !geom.InCone(ppos.Facing, ppos.AngleTo(hpos), core.MeleeHalfAngle) {
			continue
		}
		hits = append(hits, h)
	}
	for _, h := range hits {
		if ApplyDamage(w, h, core.MeleeDamage, core.AbilityMelee) {
			s.AddScore(core.ScoreMeleeKill)
		}
	}
	return true
}

// Push shoves every hostile within PushRadius outward with linear falloff and deals
// flat damage. Rejected pushes cost nothing and leave the cooldown untouched.
func Push(w *core.World) bool {
	player := w.Player()
	if player == 0 {
		return false
	}
	s := w.Session
	if !s.CanPush(w.Now) {
		return false
	}
	s.LastPushAt = w.Now
	s.AddPower(-core.PushCost)

	ppos := w.MustGet(player, core.CompPosition).(*core.Position)
	w.Emit(core.EvtAbilityEffect, core.AbilityEffect{
		Kind:       core.AbilityPush,
		X:          ppos.X,
		Y:          ppos.Y,
		Radius:     core.PushRadius,
		DurationMs: core.PushFadeMs,
	})

	for h := range w.All(core.KindHostile) {
		hpos := w.MustGet(h, core.CompPosition).(*core.Position)
		d := ppos.DistanceTo(hpos)
		if d > core.PushRadius {
			continue
		}
		force := geom.Falloff(d, core.PushRadius, core.PushForce)
		Impulse(w, h, geom.FromAngle(ppos.AngleTo(hpos), force))
		if ApplyDamage(w, h, core.PushDamage, core.AbilityPush) {
			s.AddScore(core.ScorePushKill)
		}
	}
	return true
}
