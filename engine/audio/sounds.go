package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from start to end over its
// duration, shaped by a short attack and a linear release
type sweep struct {
	start, end float64
	wave       WaveType
	rate       beep.SampleRate
	total      int
	attack     int
	pos        int
	phase      float64
	rng        *rand.Rand
}

// NewSweep creates a gliding tone. Noise ignores the frequencies.
func NewSweep(start, end float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:  start,
		end:    end,
		wave:   wave,
		rate:   rate,
		total:  rate.N(d),
		attack: rate.N(5 * time.Millisecond),
		rng:    rand.New(rand.NewSource(int64(start*1000 + end))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}

		env := 1 - progress
		if s.pos < s.attack {
			env *= float64(s.pos) / float64(s.attack)
		}
		samples[i][0] = val * env
		samples[i][1] = val * env

		freq := s.start + (s.end-s.start)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SoundID identifies a sound effect
type SoundID string

const (
	SndNone     SoundID = ""
	SndBlaster  SoundID = "blaster"
	SndHit      SoundID = "hit"
	SndSlash    SoundID = "slash"
	SndWhoosh   SoundID = "whoosh"
	SndGameOver SoundID = "game_over"
)

// Gain returns the per-effect volume before the master volume is applied
func (id SoundID) Gain() float64 {
	switch id {
	case SndBlaster:
		return 0.1
	case SndHit:
		return 0.08
	case SndSlash:
		return 0.06
	case SndWhoosh:
		return 0.12
	case SndGameOver:
		return 0.2
	}
	return 0
}

// Build synthesizes a fresh streamer for the sound at the given master volume
func Build(id SoundID, master float64) beep.Streamer {
	var s beep.Streamer
	switch id {
	case SndBlaster:
		s = NewSweep(880, 220, 120*time.Millisecond, WaveSquare, sampleRate)
	case SndHit:
		s = NewSweep(0, 0, 80*time.Millisecond, WaveNoise, sampleRate)
	case SndSlash:
		s = NewSweep(0, 0, 60*time.Millisecond, WaveNoise, sampleRate)
	case SndWhoosh:
		s = beep.Mix(
			NewSweep(0, 0, 400*time.Millisecond, WaveNoise, sampleRate),
			newVolume(NewSweep(200, 60, 400*time.Millisecond, WaveSine, sampleRate), 0.5),
		)
	case SndGameOver:
		s = NewSweep(220, 55, 900*time.Millisecond, WaveSine, sampleRate)
	default:
		return nil
	}
	return newVolume(s, id.Gain()*master)
}
