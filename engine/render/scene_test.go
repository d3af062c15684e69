package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/galactic-rebellion/engine/core"
)

func apply(s *Scene, payloads ...any) {
	for _, p := range payloads {
		s.Apply(core.Event{Payload: p})
	}
}

func TestSceneTracksEntities(t *testing.T) {
	s := NewScene(1)
	apply(s,
		core.EntitySpawned{ID: 1, Kind: core.KindPlayer, X: 450, Y: 300},
		core.EntitySpawned{ID: 2, Kind: core.KindHostile, X: -20, Y: 100},
		core.EntitySpawned{ID: 3, Kind: core.KindPlayerBullet, X: 480, Y: 300},
		core.EntityMoved{ID: 2, X: -10, Y: 105, Rotation: 1},
	)
	require.Len(t, s.Sprites, 3)
	assert.Equal(t, 1.0, s.Sprites[2].Rotation)
	assert.Equal(t, -10.0, s.Sprites[2].X)
	assert.Equal(t, core.HostileHealth, s.Sprites[2].MaxHP)
	require.NotNil(t, s.Player())

	sorted := s.SortedSprites()
	assert.Equal(t, core.EntityID(3), sorted[0].ID, "projectiles draw first")
	assert.Equal(t, core.EntityID(1), sorted[1].ID)

	apply(s, core.EntityDestroyed{ID: 2, Kind: core.KindHostile})
	assert.NotContains(t, s.Sprites, core.EntityID(2))

	apply(s, core.EntityMoved{ID: 99, X: 1, Y: 1})
	assert.Len(t, s.Sprites, 2, "moves of unknown ids are ignored")
}

func TestDamageNumbers(t *testing.T) {
	s := NewScene(1)
	apply(s,
		core.EntitySpawned{ID: 1, Kind: core.KindPlayer, X: 450, Y: 300},
		core.EntitySpawned{ID: 2, Kind: core.KindHostile, X: 100, Y: 100},
		core.DamageApplied{TargetID: 2, Amount: 35},
		core.DamageApplied{TargetID: 1, Amount: 12},
		core.DamageApplied{TargetID: 77, Amount: 5},
	)
	require.Len(t, s.Numbers, 2)
	assert.Equal(t, 45, s.Sprites[2].HP)
	assert.False(t, s.Numbers[0].Player)
	assert.True(t, s.Numbers[1].Player)

	dx, dy := s.Camera.Offset()
	assert.False(t, dx == 0 && dy == 0, "player hits shake the camera")

	s.Update(350)
	assert.InDelta(t, DamageNumberRise/2, s.Numbers[0].Rise(), 1e-9)
	assert.InDelta(t, 0.5, s.Numbers[0].Alpha(), 1e-9)

	s.Update(350)
	assert.Empty(t, s.Numbers)
	dx, dy = s.Camera.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestPushRingShrinks(t *testing.T) {
	s := NewScene(1)
	apply(s, core.AbilityEffect{Kind: core.AbilityPush, X: 450, Y: 300, Radius: core.PushRadius, DurationMs: core.PushFadeMs})
	require.Len(t, s.Effects, 1)
	assert.Equal(t, core.PushRadius, s.Effects[0].CurrentRadius())

	s.Update(core.PushFadeMs / 2)
	assert.InDelta(t, core.PushRadius*0.8, s.Effects[0].CurrentRadius(), 1e-9)
	assert.InDelta(t, 0.5, s.Effects[0].Alpha(), 1e-9)

	s.Update(core.PushFadeMs / 2)
	assert.Empty(t, s.Effects)
}

func TestMeleeFlash(t *testing.T) {
	s := NewScene(1)
	apply(s, core.AbilityEffect{Kind: core.AbilityMelee, Radius: core.MeleeRange, DurationMs: 150})
	s.Update(100)
	require.Len(t, s.Effects, 1)
	assert.Equal(t, core.MeleeRange, s.Effects[0].CurrentRadius())
	s.Update(50)
	assert.Empty(t, s.Effects)
}

func TestHUDAndGameOver(t *testing.T) {
	s := NewScene(1)
	assert.Equal(t, core.PlayerHealth, s.HP)
	apply(s,
		core.HudUpdate{HP: 64, Score: 90, Power: 42.5},
		core.GameOver{FinalScore: 90},
	)
	assert.Equal(t, 64, s.HP)
	assert.Equal(t, 90, s.Score)
	assert.Equal(t, 42.5, s.Power)
	assert.True(t, s.GameOver)
	assert.Equal(t, 90, s.FinalScore)

	s.Reset(2)
	assert.False(t, s.GameOver)
	assert.Zero(t, s.Score)
	assert.Empty(t, s.Sprites)
	assert.Nil(t, s.Player())
}

func TestStarfieldDeterministic(t *testing.T) {
	a, b := NewScene(5), NewScene(5)
	require.Len(t, a.Stars, StarCount)
	assert.Equal(t, a.Stars, b.Stars)
	for _, st := range a.Stars {
		assert.GreaterOrEqual(t, st.X, 0.0)
		assert.Less(t, st.X, core.ArenaWidth)
		assert.GreaterOrEqual(t, st.Brightness, uint8(120))
	}
	assert.NotEqual(t, a.Stars, NewScene(6).Stars)
}

func TestSceneFollowsSimulationBus(t *testing.T) {
	bus := core.NewEventBus()
	s := NewScene(1)
	s.Attach(bus)
	bus.Emit(core.Event{Type: core.EvtEntitySpawned, Payload: core.EntitySpawned{ID: 1, Kind: core.KindPlayer}})
	bus.Emit(core.Event{Type: core.EvtHudUpdate, Payload: core.HudUpdate{HP: 50}})
	bus.Dispatch()
	assert.Len(t, s.Sprites, 1)
	assert.Equal(t, 50, s.HP)
}
