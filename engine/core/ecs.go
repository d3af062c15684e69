package core

import (
	"fmt"
	"iter"
	"math"
	"math/rand"
)

// EntityID is a unique identifier for game entities. Zero is never assigned.
type EntityID uint64

// Component is a marker interface for all components
type Component interface {
	Type() ComponentType
}

// ComponentType identifies the type of component
type ComponentType uint32

const (
	CompPosition ComponentType = iota
	CompVelocity
	CompMovable
	CompKnockback
	CompHealth
	CompCollider
	CompVariant
	CompHostile
	CompProjectile
	CompMax
)

// World holds all entities and their components
type World struct {
	entities  map[EntityID]map[ComponentType]Component
	order     []EntityID // spawn order, compacted on Flush
	destroyed map[EntityID]bool
	nextID    EntityID
	systems   []System

	TickCount uint64
	Now       float64 // simulation time in ms
	Width     float64
	Height    float64
	Input     Input
	Session   *Session
	Bus       *EventBus
	Rng       *rand.Rand
}

// System processes entities each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// NewWorld creates a world for an arena of the given size. A zero seed is replaced by 1
// so that every world is reproducible.
func NewWorld(width, height float64, seed int64) *World {
	if seed == 0 {
		seed = 1
	}
	return &World{
		entities:  make(map[EntityID]map[ComponentType]Component),
		destroyed: make(map[EntityID]bool),
		Width:     width,
		Height:    height,
		Session:   NewSession(),
		Bus:       NewEventBus(),
		Rng:       rand.New(rand.NewSource(seed)),
	}
}

// Spawn creates a new entity and returns its ID
func (w *World) Spawn() EntityID {
	w.nextID++
	id := w.nextID
	w.entities[id] = make(map[ComponentType]Component)
	w.order = append(w.order, id)
	return id
}

// SpawnAgent creates a player or hostile at (x, y) and announces it
func (w *World) SpawnAgent(kind Kind, x, y, speed float64, hp int) EntityID {
	if !kind.IsAgent() {
		panic(fmt.Sprintf("core: SpawnAgent with projectile kind %s", kind))
	}
	id := w.Spawn()
	radius := HostileRadius
	if kind == KindPlayer {
		radius = PlayerRadius
	}
	w.Attach(id, &Variant{Kind: kind})
	w.Attach(id, &Position{X: x, Y: y})
	w.Attach(id, &Velocity{})
	w.Attach(id, &Movable{Speed: speed})
	w.Attach(id, &Health{Current: hp, Max: hp})
	w.Attach(id, &Collider{Radius: radius})
	if kind == KindHostile {
		w.Attach(id, &Hostile{})
	}
	w.emit(EvtEntitySpawned, EntitySpawned{ID: id, Kind: kind, X: x, Y: y})
	return id
}

// SpawnProjectile creates a bullet at (x, y) moving with (vx, vy) and announces it
func (w *World) SpawnProjectile(kind Kind, x, y, vx, vy, lifetimeMs float64) EntityID {
	if kind.IsAgent() {
		panic(fmt.Sprintf("core: SpawnProjectile with agent kind %s", kind))
	}
	id := w.Spawn()
	radius := HostileBulletRadius
	if kind == KindPlayerBullet {
		radius = PlayerBulletRadius
	}
	w.Attach(id, &Variant{Kind: kind})
	w.Attach(id, &Position{X: x, Y: y, Facing: angleOf(vx, vy)})
	w.Attach(id, &Velocity{X: vx, Y: vy})
	w.Attach(id, &Collider{Radius: radius})
	w.Attach(id, &Projectile{RemainingMs: lifetimeMs, ClampToArena: kind == KindPlayerBullet})
	w.emit(EvtEntitySpawned, EntitySpawned{ID: id, Kind: kind, X: x, Y: y})
	return id
}

// Attach adds a component to an entity
func (w *World) Attach(id EntityID, c Component) {
	if comps, ok := w.entities[id]; ok {
		comps[c.Type()] = c
	}
}

// Detach removes a component from an entity
func (w *World) Detach(id EntityID, ct ComponentType) {
	if comps, ok := w.entities[id]; ok {
		delete(comps, ct)
	}
}

// Get returns a component for an entity, or nil. Destroyed entities stay readable
// until the end-of-tick flush.
func (w *World) Get(id EntityID, ct ComponentType) Component {
	if comps, ok := w.entities[id]; ok {
		return comps[ct]
	}
	return nil
}

// MustGet returns a component that the caller knows is present. A miss means the
// registry and its callers disagree, which is a bug.
func (w *World) MustGet(id EntityID, ct ComponentType) Component {
	comps, ok := w.entities[id]
	if !ok {
		panic(fmt.Sprintf("core: entity %d not in registry", id))
	}
	c, ok := comps[ct]
	if !ok {
		panic(fmt.Sprintf("core: entity %d has no component %d", id, ct))
	}
	return c
}

// Has checks if an entity has a component
func (w *World) Has(id EntityID, ct ComponentType) bool {
	if comps, ok := w.entities[id]; ok {
		_, exists := comps[ct]
		return exists
	}
	return false
}

// Alive reports whether the entity exists and has not been destroyed
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok && !w.destroyed[id]
}

// KindOf returns the kind of an entity; ok is false for unknown ids
func (w *World) KindOf(id EntityID) (Kind, bool) {
	v, ok := w.Get(id, CompVariant).(*Variant)
	if !ok {
		return 0, false
	}
	return v.Kind, true
}

// Destroy marks an entity for removal. It reports whether this call did the marking;
// repeated or stale calls are no-ops.
func (w *World) Destroy(id EntityID) bool {
	if !w.Alive(id) {
		return false
	}
	w.destroyed[id] = true
	kind, _ := w.KindOf(id)
	w.emit(EvtEntityDestroyed, EntityDestroyed{ID: id, Kind: kind})
	return true
}

// All yields the living entities of a kind in spawn order. Entities destroyed while
// the sequence is being consumed are skipped from then on; entities spawned during
// iteration are not visited.
func (w *World) All(kind Kind) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		ids := w.order
		for _, id := range ids {
			if !w.Alive(id) {
				continue
			}
			if k, ok := w.KindOf(id); !ok || k != kind {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Query returns all living entity IDs that have ALL specified component types,
// in spawn order
func (w *World) Query(types ...ComponentType) []EntityID {
	var result []EntityID
	for _, id := range w.order {
		if w.destroyed[id] {
			continue
		}
		comps := w.entities[id]
		match := true
		for _, t := range types {
			if _, ok := comps[t]; !ok {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}

// Flush physically removes every entity destroyed since the last flush
func (w *World) Flush() {
	if len(w.destroyed) == 0 {
		return
	}
	kept := w.order[:0]
	for _, id := range w.order {
		if w.destroyed[id] {
			delete(w.entities, id)
			continue
		}
		kept = append(kept, id)
	}
	clear(w.order[len(kept):])
	w.order = kept
	clear(w.destroyed)
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick advances the clock by dt milliseconds and runs all systems once. Once the
// player is down the remaining systems of the tick are skipped.
func (w *World) Tick(dt float64) {
	w.TickCount++
	w.Now += dt
	for _, s := range w.systems {
		if w.Session.Defeated {
			break
		}
		s.Update(w, dt)
	}
	w.Flush()
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return len(w.entities) - len(w.destroyed)
}

// Player returns the player id, or 0 once the player is gone
func (w *World) Player() EntityID {
	if w.Alive(w.Session.PlayerID) {
		return w.Session.PlayerID
	}
	return 0
}

func (w *World) emit(t EventType, payload any) {
	if w.Bus != nil {
		w.Bus.Emit(Event{Type: t, Tick: w.TickCount, Payload: payload})
	}
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t EventType, payload any) { w.emit(t, payload) }

func angleOf(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	return math.Atan2(y, x)
}
