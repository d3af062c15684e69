package systems

import (
	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/geom"
)

// ProjectileSystem expires projectiles and handles the player's fire trigger
type ProjectileSystem struct{}

func (s *ProjectileSystem) Priority() int { return 30 }

func (s *ProjectileSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompPosition, core.CompProjectile) {
		proj := w.MustGet(id, core.CompProjectile).(*core.Projectile)

		proj.RemainingMs -= dt
		if proj.RemainingMs <= 0 {
			w.Destroy(id)
			continue
		}

		if proj.ClampToArena {
			pos := w.MustGet(id, core.CompPosition).(*core.Position)
			if pos.X < 0 || pos.X > w.Width || pos.Y < 0 || pos.Y > w.Height {
				w.Destroy(id)
			}
		}
	}

	if w.Input.Fire {
		FirePlayer(w)
	}
}

// FirePlayer shoots toward the current aim point. It reports false when the shot is
// rejected by the fire-rate window or there is no player.
func FirePlayer(w *core.World) bool {
	id := w.Player()
	if id == 0 {
		return false
	}
	s := w.Session
	if !s.CanFire(w.Now) {
		return false
	}
	pos := w.MustGet(id, core.CompPosition).(*core.Position)
	angle := geom.AngleBetween(pos.X, pos.Y, w.Input.AimX, w.Input.AimY)

	muzzle := geom.FromAngle(angle, core.PlayerBulletOffset)
	vel := geom.FromAngle(angle, core.PlayerBulletSpeed)
	w.SpawnProjectile(core.KindPlayerBullet, pos.X+muzzle.X, pos.Y+muzzle.Y, vel.X, vel.Y, core.PlayerBulletLifeMs)
	s.LastFiredAt = w.Now
	return true
}

// FireHostile shoots from a hostile toward the player
func FireHostile(w *core.World, id core.EntityID) bool {
	target := w.Player()
	if target == 0 || !w.Alive(id) {
		return false
	}
	pos := w.MustGet(id, core.CompPosition).(*core.Position)
	tpos := w.MustGet(target, core.CompPosition).(*core.Position)
	angle := pos.AngleTo(tpos)

	muzzle := geom.FromAngle(angle, core.HostileBulletOffset)
	vel := geom.FromAngle(angle, core.HostileBulletSpeed)
	w.SpawnProjectile(core.KindHostileBullet, pos.X+muzzle.X, pos.Y+muzzle.Y, vel.X, vel.Y, core.HostileBulletLifeMs)
	return true
}
