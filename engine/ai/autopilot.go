package ai

import (
	"math"

	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/geom"
)

// Difficulty controls how skilled the autopilot is
type Difficulty int

const (
	DiffEasy Difficulty = iota
	DiffMedium
	DiffHard
)

// ParseDifficulty maps a config name to a difficulty; unknown names are medium
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return DiffEasy
	case "hard":
		return DiffHard
	}
	return DiffMedium
}

func (d Difficulty) String() string {
	switch d {
	case DiffEasy:
		return "easy"
	case DiffHard:
		return "hard"
	}
	return "medium"
}

// Autopilot plays the player's side. It reads the world and produces the same Input
// a human would, so its runs can be recorded and replayed.
type Autopilot struct {
	Difficulty Difficulty

	threatRadius float64
	panicThreat  float64
	keepAway     float64
	useMelee     bool
}

func NewAutopilot(diff Difficulty) *Autopilot {
	a := &Autopilot{
		Difficulty:   diff,
		threatRadius: 200,
		panicThreat:  40,
		keepAway:     140,
		useMelee:     true,
	}
	switch diff {
	case DiffEasy:
		a.panicThreat = 70
		a.keepAway = 80
		a.useMelee = false
	case DiffHard:
		a.panicThreat = 25
		a.keepAway = 180
	}
	return a
}

// Decide builds the input for the next step of elapsedMs
func (a *Autopilot) Decide(w *core.World, elapsedMs float64) core.Input {
	in := core.Input{ElapsedMs: elapsedMs}
	player := w.Player()
	if player == 0 {
		return in
	}
	ppos := w.MustGet(player, core.CompPosition).(*core.Position)
	in.AimX, in.AimY = ppos.X+math.Cos(ppos.Facing), ppos.Y+math.Sin(ppos.Facing)

	target, dist := Nearest(w, ppos.X, ppos.Y)
	if target == 0 {
		// drift back toward the centre while the arena is empty
		home := geom.V2(w.Width/2-ppos.X, w.Height/2-ppos.Y)
		if home.Len() > core.PlayerRadius {
			dir := home.Normalize()
			in.MoveX, in.MoveY = dir.X, dir.Y
		}
		return in
	}
	tpos := w.MustGet(target, core.CompPosition).(*core.Position)
	in.AimX, in.AimY = tpos.X, tpos.Y

	now := w.Now + elapsedMs
	s := w.Session
	in.Fire = s.CanFire(now)

	if a.useMelee && dist <= core.MeleeRange && s.MeleeAvailable(now) {
		// the swing uses the facing set this step, which points at the aim point
		in.Melee = true
	}

	if ThreatAssessment(w, ppos.X, ppos.Y, a.threatRadius) >= a.panicThreat && s.CanPush(now) {
		in.Push = true
	}

	if dist < a.keepAway {
		away := geom.V2(ppos.X-tpos.X, ppos.Y-tpos.Y).Normalize()
		in.MoveX, in.MoveY = away.X, away.Y
	}
	return in
}

// Nearest returns the closest living hostile to (x, y) and its distance, or 0 if none
func Nearest(w *core.World, x, y float64) (core.EntityID, float64) {
	var best core.EntityID
	bestDist := math.Inf(1)
	for id := range w.All(core.KindHostile) {
		pos := w.MustGet(id, core.CompPosition).(*core.Position)
		d := geom.Distance(x, y, pos.X, pos.Y)
		if d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, bestDist
}

// ThreatAssessment returns the total threat of hostiles and hostile bullets near a
// position, each weighted by its damage and a linear falloff over radius
func ThreatAssessment(w *core.World, wx, wy, radius float64) float64 {
	threat := 0.0
	add := func(kind core.Kind, damage float64) {
		for id := range w.All(kind) {
			pos := w.MustGet(id, core.CompPosition).(*core.Position)
			d := geom.Distance(wx, wy, pos.X, pos.Y)
			threat += geom.Falloff(d, radius, damage/radius)
		}
	}
	add(core.KindHostile, core.ContactDamage)
	add(core.KindHostileBullet, core.HostileBulletDamage)
	return threat
}
