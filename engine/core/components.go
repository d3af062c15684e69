package core

import "math"

// Kind is the variant of an entity
type Kind uint8

const (
	KindPlayer Kind = iota
	KindHostile
	KindPlayerBullet
	KindHostileBullet
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHostile:
		return "hostile"
	case KindPlayerBullet:
		return "player_bullet"
	case KindHostileBullet:
		return "hostile_bullet"
	}
	return "unknown"
}

// IsAgent reports whether the kind is a combatant rather than a projectile
func (k Kind) IsAgent() bool { return k == KindPlayer || k == KindHostile }

// ---- Position & Motion ----

// Position is an arena position
type Position struct {
	X, Y   float64
	Facing float64 // rotation in radians (0 = east, π/2 = south)
}

func (p *Position) Type() ComponentType { return CompPosition }

// DistanceTo returns euclidean distance to another position
func (p *Position) DistanceTo(other *Position) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// AngleTo returns the angle from this position to another
func (p *Position) AngleTo(other *Position) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

// Velocity in units per second
type Velocity struct {
	X, Y float64
}

func (v *Velocity) Type() ComponentType { return CompVelocity }

func (v *Velocity) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Movable carries the agent's constant speed
type Movable struct {
	Speed float64
}

func (m *Movable) Type() ComponentType { return CompMovable }

// Knockback suspends steering while an imposed velocity plays out
type Knockback struct {
	RemainingMs float64
}

func (k *Knockback) Type() ComponentType { return CompKnockback }

// ---- Health & Combat ----

// Health represents hit points
type Health struct {
	Current int
	Max     int
}

func (h *Health) Type() ComponentType { return CompHealth }

func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// Collider is the circle used for overlap tests
type Collider struct {
	Radius float64
}

func (c *Collider) Type() ComponentType { return CompCollider }

// Variant tags the entity kind
type Variant struct {
	Kind Kind
}

func (v *Variant) Type() ComponentType { return CompVariant }

// Hostile holds the enemy fire schedule
type Hostile struct {
	NextShotAt float64 // absolute sim ms
}

func (h *Hostile) Type() ComponentType { return CompHostile }

// ---- Projectile ----

// Projectile is a bullet travelling in a straight line until it expires or hits
type Projectile struct {
	RemainingMs  float64
	ClampToArena bool // despawn on leaving the arena
}

func (p *Projectile) Type() ComponentType { return CompProjectile }
