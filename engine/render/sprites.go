package render

import (
	"image"
	"image/color"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/galactic-rebellion/engine/core"
)

// SpriteManager holds one image per entity kind. Images are drawn procedurally;
// a PNG named after the kind in the assets directory overrides the built-in one.
type SpriteManager struct {
	Kinds map[core.Kind]*ebiten.Image
}

var kindColors = map[core.Kind]color.RGBA{
	core.KindPlayer:        {80, 200, 255, 255},
	core.KindHostile:       {255, 90, 70, 255},
	core.KindPlayerBullet:  {255, 240, 120, 255},
	core.KindHostileBullet: {255, 120, 200, 255},
}

// NewSpriteManager builds the sprite table, loading overrides from assetsDir if set
func NewSpriteManager(assetsDir string) *SpriteManager {
	sm := &SpriteManager{Kinds: make(map[core.Kind]*ebiten.Image)}
	for _, k := range []core.Kind{core.KindPlayer, core.KindHostile, core.KindPlayerBullet, core.KindHostileBullet} {
		if assetsDir != "" {
			if img := loadFromFile(filepath.Join(assetsDir, "sprites", k.String()+".png")); img != nil {
				sm.Kinds[k] = img
				continue
			}
		}
		sm.Kinds[k] = drawKind(k)
	}
	return sm
}

// Radius returns the collision radius the sprite is drawn at
func Radius(k core.Kind) float64 {
	switch k {
	case core.KindPlayer:
		return core.PlayerRadius
	case core.KindHostile:
		return core.HostileRadius
	case core.KindPlayerBullet:
		return core.PlayerBulletRadius
	}
	return core.HostileBulletRadius
}

// drawKind renders a kind facing east, centred in a square image
func drawKind(k core.Kind) *ebiten.Image {
	r := float32(Radius(k))
	size := int(r*2) + 4
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	clr := kindColors[k]

	switch k {
	case core.KindPlayer:
		var p vector.Path
		p.MoveTo(c+r, c)
		p.LineTo(c-r*0.8, c-r*0.75)
		p.LineTo(c-r*0.4, c)
		p.LineTo(c-r*0.8, c+r*0.75)
		p.Close()
		vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR = float32(clr.R) / 255
			vs[i].ColorG = float32(clr.G) / 255
			vs[i].ColorB = float32(clr.B) / 255
			vs[i].ColorA = 1
		}
		img.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	case core.KindHostile:
		vector.DrawFilledCircle(img, c, c, r, clr, true)
		vector.DrawFilledRect(img, c, c-2, r, 4, color.RGBA{120, 20, 20, 255}, false)
	default:
		vector.DrawFilledCircle(img, c, c, r, clr, true)
	}
	return img
}

var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(3, 3)
		whiteImg.Fill(color.White)
	}
	return whiteImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func loadFromFile(path string) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		slog.Warn("failed to decode sprite", "path", path, "err", err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
