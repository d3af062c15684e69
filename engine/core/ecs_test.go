package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() *World {
	return NewWorld(ArenaWidth, ArenaHeight, 42)
}

func collect(w *World, k Kind) []EntityID {
	var out []EntityID
	for id := range w.All(k) {
		out = append(out, id)
	}
	return out
}

func TestSpawnAssignsSequentialIDs(t *testing.T) {
	w := newTestWorld()
	p := w.SpawnAgent(KindPlayer, 450, 300, PlayerSpeed, PlayerHealth)
	h := w.SpawnAgent(KindHostile, 10, 10, 50, HostileHealth)
	b := w.SpawnProjectile(KindPlayerBullet, 1, 2, 500, 0, PlayerBulletLifeMs)

	assert.Equal(t, EntityID(1), p)
	assert.Equal(t, EntityID(2), h)
	assert.Equal(t, EntityID(3), b)
	assert.Equal(t, 3, w.EntityCount())

	col := w.MustGet(p, CompCollider).(*Collider)
	assert.Equal(t, PlayerRadius, col.Radius)
	assert.True(t, w.Has(h, CompHostile))
	assert.False(t, w.Has(p, CompHostile))

	proj := w.MustGet(b, CompProjectile).(*Projectile)
	assert.True(t, proj.ClampToArena)
	assert.Equal(t, PlayerBulletLifeMs, proj.RemainingMs)
}

func TestSpawnEmitsEvents(t *testing.T) {
	w := newTestWorld()
	w.SpawnAgent(KindHostile, -20, 100, 60, HostileHealth)
	events := w.Bus.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EvtEntitySpawned, events[0].Type)
	sp := events[0].Payload.(EntitySpawned)
	assert.Equal(t, KindHostile, sp.Kind)
	assert.Equal(t, -20.0, sp.X)
}

func TestSpawnAgentRejectsProjectileKind(t *testing.T) {
	w := newTestWorld()
	assert.Panics(t, func() { w.SpawnAgent(KindPlayerBullet, 0, 0, 0, 1) })
	assert.Panics(t, func() { w.SpawnProjectile(KindHostile, 0, 0, 0, 0, 1) })
}

func TestDestroyIsIdempotent(t *testing.T) {
	w := newTestWorld()
	id := w.SpawnAgent(KindHostile, 0, 0, 50, HostileHealth)
	w.Bus.Drain()

	assert.True(t, w.Destroy(id))
	assert.False(t, w.Destroy(id))
	assert.False(t, w.Alive(id))

	events := w.Bus.Drain()
	require.Len(t, events, 1, "exactly one destroyed event")
	assert.Equal(t, EntityDestroyed{ID: id, Kind: KindHostile}, events[0].Payload)
}

func TestStaleHandleReadableUntilFlush(t *testing.T) {
	w := newTestWorld()
	id := w.SpawnAgent(KindHostile, 5, 6, 50, HostileHealth)
	w.Destroy(id)

	pos, ok := w.Get(id, CompPosition).(*Position)
	require.True(t, ok, "destroyed entity is still addressable before flush")
	assert.Equal(t, 5.0, pos.X)
	assert.Empty(t, w.Query(CompPosition))

	w.Flush()
	assert.Nil(t, w.Get(id, CompPosition))
	assert.False(t, w.Destroy(id), "destroy after flush is a no-op")
	w.Attach(id, &Velocity{X: 1})
	assert.False(t, w.Has(id, CompVelocity))
}

func TestAllSkipsEntitiesDestroyedMidIteration(t *testing.T) {
	w := newTestWorld()
	a := w.SpawnAgent(KindHostile, 0, 0, 50, HostileHealth)
	b := w.SpawnAgent(KindHostile, 1, 0, 50, HostileHealth)
	c := w.SpawnAgent(KindHostile, 2, 0, 50, HostileHealth)
	w.SpawnAgent(KindPlayer, 3, 0, PlayerSpeed, PlayerHealth)

	var seen []EntityID
	for id := range w.All(KindHostile) {
		seen = append(seen, id)
		if id == a {
			w.Destroy(b)
			w.SpawnAgent(KindHostile, 9, 9, 50, HostileHealth)
		}
	}
	assert.Equal(t, []EntityID{a, c}, seen)
}

func TestAllBreaksEarly(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 5; i++ {
		w.SpawnAgent(KindHostile, float64(i), 0, 50, HostileHealth)
	}
	n := 0
	for range w.All(KindHostile) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestFlushCompactsOrder(t *testing.T) {
	w := newTestWorld()
	ids := make([]EntityID, 4)
	for i := range ids {
		ids[i] = w.SpawnAgent(KindHostile, float64(i), 0, 50, HostileHealth)
	}
	w.Destroy(ids[1])
	w.Destroy(ids[3])
	w.Flush()

	assert.Equal(t, []EntityID{ids[0], ids[2]}, collect(w, KindHostile))
	assert.Equal(t, 2, w.EntityCount())

	next := w.SpawnAgent(KindHostile, 0, 0, 50, HostileHealth)
	assert.Equal(t, EntityID(5), next, "ids are never reused")
}

func TestMustGetPanicsOnUnknownEntity(t *testing.T) {
	w := newTestWorld()
	assert.Panics(t, func() { w.MustGet(99, CompPosition) })
	id := w.Spawn()
	assert.Panics(t, func() { w.MustGet(id, CompHealth) })
}

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	onUpdate func(w *World)
}

func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update(w *World, _ float64) {
	*s.log = append(*s.log, s.name)
	if s.onUpdate != nil {
		s.onUpdate(w)
	}
}

func TestTickRunsSystemsByPriority(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "late", priority: 50, log: &log})
	w.AddSystem(&recordingSystem{name: "early", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "mid", priority: 30, log: &log})

	w.Tick(16)
	assert.Equal(t, []string{"early", "mid", "late"}, log)
	assert.Equal(t, uint64(1), w.TickCount)
	assert.Equal(t, 16.0, w.Now)
}

func TestTickStopsAfterDefeat(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "kill", priority: 10, log: &log, onUpdate: func(w *World) {
		w.Session.Defeated = true
	}})
	w.AddSystem(&recordingSystem{name: "spawn", priority: 20, log: &log})

	w.Tick(16)
	assert.Equal(t, []string{"kill"}, log)
}

func TestPlayerHandle(t *testing.T) {
	w := newTestWorld()
	assert.Equal(t, EntityID(0), w.Player())
	id := w.SpawnAgent(KindPlayer, 0, 0, PlayerSpeed, PlayerHealth)
	w.Session.PlayerID = id
	assert.Equal(t, id, w.Player())
	w.Destroy(id)
	assert.Equal(t, EntityID(0), w.Player())
}
