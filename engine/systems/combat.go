package systems

import (
	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/geom"
)

// CollisionSystem resolves overlaps in a fixed order: player bullets against
// hostiles, hostile bullets against the player, then hostile contact.
type CollisionSystem struct{}

func (s *CollisionSystem) Priority() int { return 40 }

func (s *CollisionSystem) Update(w *core.World, _ float64) {
	s.playerBullets(w)

	player := w.Player()
	if player == 0 {
		return
	}
	s.hostileBullets(w, player)
	s.contact(w, player)
}

func (s *CollisionSystem) playerBullets(w *core.World) {
	for b := range w.All(core.KindPlayerBullet) {
		for h := range w.All(core.KindHostile) {
			if !overlaps(w, b, h) {
				continue
			}
			w.Destroy(b)
			if ApplyDamage(w, h, core.PlayerBulletDamage, core.AbilityNone) {
				w.Session.AddScore(core.ScoreBulletKill)
			}
			break
		}
	}
}

func (s *CollisionSystem) hostileBullets(w *core.World, player core.EntityID) {
	for b := range w.All(core.KindHostileBullet) {
		if !w.Alive(player) {
			return
		}
		if !overlaps(w, b, player) {
			continue
		}
		w.Destroy(b)
		ApplyDamage(w, player, core.HostileBulletDamage, core.AbilityNone)
	}
}

func (s *CollisionSystem) contact(w *core.World, player core.EntityID) {
	for h := range w.All(core.KindHostile) {
		if !w.Alive(player) {
			return
		}
		if !overlaps(w, h, player) {
			continue
		}
		hpos := w.MustGet(h, core.CompPosition).(*core.Position)
		ppos := w.MustGet(player, core.CompPosition).(*core.Position)

		ApplyDamage(w, player, core.ContactDamage, core.AbilityNone)
		Impulse(w, player, geom.FromAngle(hpos.AngleTo(ppos), core.ContactKnockback))
		// ramming is fatal to the hostile and scores nothing
		w.Destroy(h)
	}
}

func overlaps(w *core.World, a, b core.EntityID) bool {
	apos := w.MustGet(a, core.CompPosition).(*core.Position)
	bpos := w.MustGet(b, core.CompPosition).(*core.Position)
	ar := w.MustGet(a, core.CompCollider).(*core.Collider).Radius
	br := w.MustGet(b, core.CompCollider).(*core.Collider).Radius
	return geom.CirclesOverlap(apos.X, apos.Y, ar, bpos.X, bpos.Y, br)
}

// ApplyDamage subtracts health, clamped at zero, and destroys the target when it
// runs out. It reports whether this hit destroyed the target; hits on dead or
// unknown entities are ignored. Losing the player ends the session.
func ApplyDamage(w *core.World, id core.EntityID, amount int, source core.AbilityKind) bool {
	if !w.Alive(id) {
		return false
	}
	h, ok := w.Get(id, core.CompHealth).(*core.Health)
	if !ok {
		return false
	}

	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	w.Emit(core.EvtDamageApplied, core.DamageApplied{TargetID: id, Amount: amount, Source: source})

	if h.Current > 0 {
		return false
	}
	w.Destroy(id)
	if id == w.Session.PlayerID {
		w.Session.Defeated = true
	}
	return true
}
