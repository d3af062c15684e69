package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/1siamBot/galactic-rebellion/engine/core"
)

// SoundManager turns simulation events into sound effects
type SoundManager struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	MasterVolume float64
	initialized  bool
	playerID     core.EntityID

	// play is the output sink; it defaults to the speaker mixer
	play func(SoundID)
}

func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{
		mixer:        &beep.Mixer{},
		MasterVolume: volume,
	}
	sm.play = sm.toMixer
	return sm
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	slog.Debug("audio initialized", "rate", int(sampleRate), "volume", sm.MasterVolume)
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Attach subscribes the manager to the events it voices
func (sm *SoundManager) Attach(bus *core.EventBus) {
	bus.On(core.EvtEntitySpawned, sm.Handle)
	bus.On(core.EvtDamageApplied, sm.Handle)
	bus.On(core.EvtAbilityEffect, sm.Handle)
	bus.On(core.EvtGameOver, sm.Handle)
}

// Handle plays the sound for one event, if any
func (sm *SoundManager) Handle(e core.Event) {
	sm.mu.Lock()
	if sp, ok := e.Payload.(core.EntitySpawned); ok && sp.Kind == core.KindPlayer {
		sm.playerID = sp.ID
	}
	id := SoundFor(e, sm.playerID)
	sm.mu.Unlock()

	if id != SndNone {
		sm.play(id)
	}
}

// SoundFor picks the effect for an event. Damage to the player is not voiced.
func SoundFor(e core.Event, player core.EntityID) SoundID {
	switch p := e.Payload.(type) {
	case core.EntitySpawned:
		if p.Kind == core.KindPlayerBullet {
			return SndBlaster
		}
	case core.DamageApplied:
		if p.TargetID == player {
			return SndNone
		}
		switch p.Source {
		case core.AbilityMelee:
			return SndSlash
		case core.AbilityNone:
			return SndHit
		}
	case core.AbilityEffect:
		if p.Kind == core.AbilityPush {
			return SndWhoosh
		}
	case core.GameOver:
		return SndGameOver
	}
	return SndNone
}

func (sm *SoundManager) toMixer(id SoundID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Build(id, sm.MasterVolume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
