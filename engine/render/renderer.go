package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/galactic-rebellion/engine/core"
)

var (
	backgroundColor = color.RGBA{6, 8, 20, 255}
	hudPanelColor   = color.RGBA{0, 0, 0, 160}
	hpBarColor      = color.RGBA{80, 220, 120, 255}
	powerBarColor   = color.RGBA{90, 150, 255, 255}
	barBackColor    = color.RGBA{50, 50, 60, 255}
	overlayColor    = color.RGBA{0, 0, 0, 180}
	accentColor     = color.RGBA{0, 180, 255, 255}
)

// Renderer draws a Scene
type Renderer struct {
	Sprites *SpriteManager
	face    font.Face
}

// NewRenderer creates a renderer; assetsDir may be empty
func NewRenderer(assetsDir string) *Renderer {
	return &Renderer{
		Sprites: NewSpriteManager(assetsDir),
		face:    basicfont.Face7x13,
	}
}

// Draw renders the full frame
func (r *Renderer) Draw(screen *ebiten.Image, s *Scene, paused bool) {
	screen.Fill(backgroundColor)
	r.drawStars(screen, s)
	r.drawEffects(screen, s)
	r.drawEntities(screen, s)
	r.drawNumbers(screen, s)
	r.drawHUD(screen, s)

	switch {
	case s.GameOver:
		r.drawBanner(screen, "GAME OVER", fmt.Sprintf("Final score: %d", s.FinalScore), "Press R to restart")
	case paused:
		r.drawBanner(screen, "PAUSED", "", "Press Esc to resume")
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image, s *Scene) {
	for _, st := range s.Stars {
		b := st.Brightness
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Size)/2, color.RGBA{b, b, b, 255}, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *Scene) {
	vector.DrawFilledRect(screen, 8, 8, 220, 58, hudPanelColor, false)

	text.Draw(screen, fmt.Sprintf("HP %d", s.HP), r.face, 16, 24, color.White)
	drawBar(screen, 80, 14, 140, 10, float64(s.HP)/core.PlayerHealth, hpBarColor)

	text.Draw(screen, fmt.Sprintf("PWR %d", int(s.Power)), r.face, 16, 42, color.White)
	drawBar(screen, 80, 32, 140, 10, s.Power/core.PowerMax, powerBarColor)

	text.Draw(screen, fmt.Sprintf("SCORE %d", s.Score), r.face, 16, 60, accentColor)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, ratio float64, clr color.RGBA) {
	ratio = max(0, min(1, ratio))
	vector.DrawFilledRect(screen, x, y, w, h, barBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), h, clr, false)
}

func (r *Renderer) drawBanner(screen *ebiten.Image, title, line, hint string) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), overlayColor, false)

	cx, cy := sw/2, sh/2
	text.Draw(screen, title, r.face, cx-textWidth(title)/2, cy-20, color.White)
	vector.DrawFilledRect(screen, float32(cx-80), float32(cy-12), 160, 2, accentColor, false)
	if line != "" {
		text.Draw(screen, line, r.face, cx-textWidth(line)/2, cy+10, color.White)
	}
	text.Draw(screen, hint, r.face, cx-textWidth(hint)/2, cy+34, color.RGBA{180, 180, 180, 255})
}

// basicfont glyphs are a fixed 7 pixels wide
func textWidth(s string) int { return len(s) * 7 }
