package render

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/1siamBot/galactic-rebellion/engine/core"
)

const (
	DamageNumberMs   = 700.0
	DamageNumberRise = 30.0 // arena units over the number's lifetime
	PushRingShrink   = 0.6  // final ring radius as a fraction of the push radius
	StarCount        = 120
	hitShake         = 4.0
	hitShakeMs       = 150.0
)

// Sprite is the drawable state of one entity, kept up to date from events
type Sprite struct {
	ID       core.EntityID
	Kind     core.Kind
	X, Y     float64
	Rotation float64
	HP       int
	MaxHP    int
}

// DamageNumber floats up from a damaged entity and fades
type DamageNumber struct {
	X, Y   float64
	Amount int
	Player bool
	AgeMs  float64
}

// Rise returns how far the number has floated
func (d DamageNumber) Rise() float64 { return DamageNumberRise * d.AgeMs / DamageNumberMs }

// Alpha returns the remaining opacity in [0,1]
func (d DamageNumber) Alpha() float64 { return 1 - d.AgeMs/DamageNumberMs }

// Effect is a visual ability indicator
type Effect struct {
	core.AbilityEffect
	AgeMs float64
}

// Progress returns elapsed fraction of the effect's duration
func (e Effect) Progress() float64 {
	if e.DurationMs <= 0 {
		return 1
	}
	return e.AgeMs / e.DurationMs
}

// Alpha returns the remaining opacity in [0,1]
func (e Effect) Alpha() float64 { return 1 - e.Progress() }

// CurrentRadius is the drawn radius: push rings shrink, melee arcs keep their reach
func (e Effect) CurrentRadius() float64 {
	if e.Kind == core.AbilityPush {
		return e.Radius * (1 - (1-PushRingShrink)*e.Progress())
	}
	return e.Radius
}

type Star struct {
	X, Y       float64
	Size       float64
	Brightness uint8
}

// Scene is the presentation's view of the simulation. It is built purely from the
// event stream and never reads the world.
type Scene struct {
	Sprites map[core.EntityID]*Sprite
	Numbers []DamageNumber
	Effects []Effect
	Stars   []Star
	Camera  *Camera

	HP         int
	Score      int
	Power      float64
	GameOver   bool
	FinalScore int

	playerID core.EntityID
}

// NewScene creates an empty scene with a starfield derived from seed
func NewScene(seed int64) *Scene {
	s := &Scene{Camera: NewCamera()}
	s.Reset(seed)
	return s
}

// Reset clears everything for a new session
func (s *Scene) Reset(seed int64) {
	s.Sprites = make(map[core.EntityID]*Sprite)
	s.Numbers = s.Numbers[:0]
	s.Effects = s.Effects[:0]
	s.HP = core.PlayerHealth
	s.Score = 0
	s.Power = core.PowerMax
	s.GameOver = false
	s.FinalScore = 0
	s.playerID = 0
	s.Camera.Reset()

	rng := rand.New(rand.NewSource(seed))
	s.Stars = make([]Star, StarCount)
	for i := range s.Stars {
		s.Stars[i] = Star{
			X:          rng.Float64() * core.ArenaWidth,
			Y:          rng.Float64() * core.ArenaHeight,
			Size:       1 + rng.Float64(),
			Brightness: uint8(120 + rng.Intn(136)),
		}
	}
}

// Attach subscribes the scene to every simulation event
func (s *Scene) Attach(bus *core.EventBus) {
	bus.OnAll(s.Apply)
}

// Apply folds one event into the scene
func (s *Scene) Apply(e core.Event) {
	switch p := e.Payload.(type) {
	case core.EntitySpawned:
		hp := 0
		switch p.Kind {
		case core.KindPlayer:
			hp = core.PlayerHealth
			s.playerID = p.ID
		case core.KindHostile:
			hp = core.HostileHealth
		}
		s.Sprites[p.ID] = &Sprite{ID: p.ID, Kind: p.Kind, X: p.X, Y: p.Y, HP: hp, MaxHP: hp}

	case core.EntityMoved:
		if sp, ok := s.Sprites[p.ID]; ok {
			sp.X, sp.Y, sp.Rotation = p.X, p.Y, p.Rotation
		}

	case core.EntityDestroyed:
		delete(s.Sprites, p.ID)

	case core.DamageApplied:
		sp, ok := s.Sprites[p.TargetID]
		if !ok {
			return
		}
		sp.HP = max(0, sp.HP-p.Amount)
		isPlayer := p.TargetID == s.playerID
		s.Numbers = append(s.Numbers, DamageNumber{X: sp.X, Y: sp.Y, Amount: p.Amount, Player: isPlayer})
		if isPlayer {
			s.Camera.Shake(hitShake, hitShakeMs)
		}

	case core.AbilityEffect:
		s.Effects = append(s.Effects, Effect{AbilityEffect: p})

	case core.HudUpdate:
		s.HP, s.Score, s.Power = p.HP, p.Score, p.Power

	case core.GameOver:
		s.GameOver = true
		s.FinalScore = p.FinalScore
	}
}

// Update ages transient visuals by dtMs of wall time
func (s *Scene) Update(dtMs float64) {
	for i := range s.Numbers {
		s.Numbers[i].AgeMs += dtMs
	}
	s.Numbers = slices.DeleteFunc(s.Numbers, func(d DamageNumber) bool { return d.AgeMs >= DamageNumberMs })

	for i := range s.Effects {
		s.Effects[i].AgeMs += dtMs
	}
	s.Effects = slices.DeleteFunc(s.Effects, func(e Effect) bool { return e.AgeMs >= e.DurationMs })

	s.Camera.Update(dtMs)
}

// Player returns the player's sprite, or nil once it is gone
func (s *Scene) Player() *Sprite {
	return s.Sprites[s.playerID]
}

// SortedSprites returns sprites in a stable draw order: projectiles under agents,
// then by id
func (s *Scene) SortedSprites() []*Sprite {
	out := make([]*Sprite, 0, len(s.Sprites))
	for _, sp := range s.Sprites {
		out = append(out, sp)
	}
	slices.SortFunc(out, func(a, b *Sprite) int {
		if a.Kind.IsAgent() != b.Kind.IsAgent() {
			if a.Kind.IsAgent() {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
