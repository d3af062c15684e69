package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/galactic-rebellion/engine/core"
)

// drawEntities draws every sprite rotated to its facing, plus hostile health bars
func (r *Renderer) drawEntities(screen *ebiten.Image, s *Scene) {
	for _, sp := range s.SortedSprites() {
		img, ok := r.Sprites.Kinds[sp.Kind]
		if !ok {
			continue
		}
		sx, sy := s.Camera.WorldToScreen(sp.X, sp.Y)
		sw := float64(img.Bounds().Dx())
		sh := float64(img.Bounds().Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-sw/2, -sh/2)
		op.GeoM.Rotate(sp.Rotation)
		op.GeoM.Translate(float64(sx), float64(sy))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)

		if sp.Kind == core.KindHostile && sp.HP < sp.MaxHP && sp.MaxHP > 0 {
			rad := float32(Radius(sp.Kind))
			drawBar(screen, sx-rad, sy-rad-7, rad*2, 3, float64(sp.HP)/float64(sp.MaxHP), color.RGBA{255, 80, 60, 255})
		}
	}
}

func (r *Renderer) drawEffects(screen *ebiten.Image, s *Scene) {
	for _, e := range s.Effects {
		x, y := s.Camera.WorldToScreen(e.X, e.Y)
		a := uint8(255 * max(0, e.Alpha()))

		switch e.Kind {
		case core.AbilityPush:
			vector.StrokeCircle(screen, x, y, float32(e.CurrentRadius()), 3, color.RGBA{120, 180, 255, a}, true)
		case core.AbilityMelee:
			drawArc(screen, x, y, float32(e.CurrentRadius()), float32(e.Facing), color.RGBA{255, 255, 255, a / 2})
		}
	}
}

// drawArc fills the melee cone: MeleeHalfAngle either side of facing
func drawArc(screen *ebiten.Image, x, y, radius, facing float32, clr color.RGBA) {
	var p vector.Path
	p.MoveTo(x, y)
	p.Arc(x, y, radius, facing-core.MeleeHalfAngle, facing+core.MeleeHalfAngle, vector.Clockwise)
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 255 * float32(clr.A) / 255
		vs[i].ColorG = float32(clr.G) / 255 * float32(clr.A) / 255
		vs[i].ColorB = float32(clr.B) / 255 * float32(clr.A) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawNumbers(screen *ebiten.Image, s *Scene) {
	for _, d := range s.Numbers {
		x, y := s.Camera.WorldToScreen(d.X, d.Y-d.Rise())
		a := uint8(255 * max(0, d.Alpha()))
		clr := color.RGBA{255, 230, 90, a}
		if d.Player {
			clr = color.RGBA{255, 70, 70, a}
		}
		label := fmt.Sprintf("-%d", d.Amount)
		text.Draw(screen, label, r.face, int(x)-textWidth(label)/2, int(y)-14, clr)
	}
}
