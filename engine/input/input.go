package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/galactic-rebellion/engine/core"
)

// Snapshot is the raw device state sampled for one frame
type Snapshot struct {
	MouseX, MouseY int

	Up, Down, Left, Right bool

	FireJustPressed    bool
	MeleeJustPressed   bool
	PushJustPressed    bool
	RestartJustPressed bool
	PauseJustPressed   bool
}

// InputState samples ebiten once per frame
type InputState struct {
	Snapshot
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	s.Up = anyPressed(ebiten.KeyW, ebiten.KeyUp)
	s.Down = anyPressed(ebiten.KeyS, ebiten.KeyDown)
	s.Left = anyPressed(ebiten.KeyA, ebiten.KeyLeft)
	s.Right = anyPressed(ebiten.KeyD, ebiten.KeyRight)

	s.FireJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.MeleeJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	s.PushJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	s.RestartJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	s.PauseJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Translate turns a snapshot into the simulation's input for a frame of elapsedMs.
// The cursor is already in arena units because the game lays out at arena size.
func Translate(s Snapshot, elapsedMs float64) core.Input {
	in := core.Input{
		AimX:      float64(s.MouseX),
		AimY:      float64(s.MouseY),
		Fire:      s.FireJustPressed,
		Melee:     s.MeleeJustPressed,
		Push:      s.PushJustPressed,
		ElapsedMs: elapsedMs,
	}
	if s.Left {
		in.MoveX--
	}
	if s.Right {
		in.MoveX++
	}
	if s.Up {
		in.MoveY--
	}
	if s.Down {
		in.MoveY++
	}
	return in
}
