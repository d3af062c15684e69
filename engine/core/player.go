package core

import "math"

// Session is the process-wide state of one run: score, power and the
// cooldown clocks of the player's actions
type Session struct {
	PlayerID     EntityID
	Score        int
	Power        float64
	LastFiredAt  float64 // sim ms
	LastPushAt   float64 // sim ms
	MeleeReadyAt float64 // sim ms
	Defeated     bool
}

// NewSession returns a fresh session with full power and every action ready
func NewSession() *Session {
	return &Session{
		Power:       PowerMax,
		LastFiredAt: math.Inf(-1),
		LastPushAt:  math.Inf(-1),
	}
}

// AddScore awards points; negative awards are ignored so the score never drops
func (s *Session) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// AddPower changes power by delta, clamped to [0, PowerMax]
func (s *Session) AddPower(delta float64) {
	s.Power = math.Max(0, math.Min(PowerMax, s.Power+delta))
}

// CanFire reports whether the fire-rate window has passed
func (s *Session) CanFire(now float64) bool {
	return now >= s.LastFiredAt+PlayerFireIntervalMs
}

// MeleeAvailable reports whether the melee latch is open
func (s *Session) MeleeAvailable(now float64) bool {
	return now >= s.MeleeReadyAt
}

// CanPush reports whether both the cooldown and the power cost allow a push
func (s *Session) CanPush(now float64) bool {
	return now >= s.LastPushAt+PushCooldown && s.Power >= PushCost
}
