// Command generate_sprites writes shaded PNG sprites for every entity kind into
// assets/sprites, where the game picks them up in place of its flat built-ins.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/render"
)

// lightDir is the direction light comes from, in sprite space
var lightDir = [2]float64{-0.6, -0.8}

func main() {
	out := flag.String("output", "assets", "Assets directory")
	flag.Parse()

	spritesDir := filepath.Join(*out, "sprites")
	if err := os.MkdirAll(spritesDir, 0o755); err != nil {
		log.Fatal(err)
	}

	sprites := []struct {
		kind core.Kind
		fn   func(*image.RGBA, float64)
	}{
		{core.KindPlayer, shipSprite},
		{core.KindHostile, drone(color.RGBA{255, 90, 70, 255})},
		{core.KindPlayerBullet, orb(color.RGBA{255, 240, 120, 255})},
		{core.KindHostileBullet, orb(color.RGBA{255, 120, 200, 255})},
	}
	for _, s := range sprites {
		r := render.Radius(s.kind)
		size := int(r*2) + 4
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		s.fn(img, r)
		if err := savePNG(filepath.Join(spritesDir, s.kind.String()+".png"), img); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println("All sprites generated in", spritesDir)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	fmt.Println("  →", path)
	return nil
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: uint8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

// shade lights a sphere-like surface: nx, ny are the offset from centre over radius
func shade(base color.RGBA, nx, ny float64) color.RGBA {
	lambert := 0.5 - 0.5*(nx*lightDir[0]+ny*lightDir[1])
	dark := color.RGBA{base.R / 4, base.G / 4, base.B / 4, 255}
	return lerpColor(dark, base, 0.3+0.7*lambert)
}

func orb(base color.RGBA) func(*image.RGBA, float64) {
	return func(img *image.RGBA, r float64) {
		c := float64(img.Bounds().Dx()) / 2
		for y := range img.Bounds().Dy() {
			for x := range img.Bounds().Dx() {
				nx, ny := (float64(x)+0.5-c)/r, (float64(y)+0.5-c)/r
				if nx*nx+ny*ny > 1 {
					continue
				}
				img.Set(x, y, shade(base, nx, ny))
			}
		}
	}
}

func drone(base color.RGBA) func(*image.RGBA, float64) {
	ball := orb(base)
	return func(img *image.RGBA, r float64) {
		ball(img, r)
		c := float64(img.Bounds().Dx()) / 2
		// barrel along +x
		for y := int(c) - 2; y < int(c)+2; y++ {
			for x := int(c); x < int(c+r); x++ {
				img.Set(x, y, color.RGBA{120, 20, 20, 255})
			}
		}
	}
}

// shipSprite draws an arrowhead pointing along +x
func shipSprite(img *image.RGBA, r float64) {
	base := color.RGBA{80, 200, 255, 255}
	c := float64(img.Bounds().Dx()) / 2
	for y := range img.Bounds().Dy() {
		for x := range img.Bounds().Dx() {
			px, py := (float64(x)+0.5-c)/r, (float64(y)+0.5-c)/r
			// nose at (1,0), wings at (-0.8,±0.75), notch at (-0.4,0)
			if px > 1 || px < -0.8 {
				continue
			}
			half := 0.75 * (1 - px) / 1.8
			if math.Abs(py) > half {
				continue
			}
			notch := (px + 0.8) / 0.4 * 0.75
			if px < -0.4 && math.Abs(py) < 0.75-notch {
				continue
			}
			img.Set(x, y, shade(base, px*0.5, py))
		}
	}
}
