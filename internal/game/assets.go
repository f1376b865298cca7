package game

import (
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// loadImage reads an asset relative to dir. Missing or broken files come
// back as a checkerboard so the page still renders.
func loadImage(dir, name string) (img *ebiten.Image, ok bool) {
	if name == "" {
		return placeholder(), false
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("asset %s: %v", path, err)
		return placeholder(), false
	}
	return img, true
}

func placeholder() *ebiten.Image {
	const size, cell = 64, 16
	img := ebiten.NewImage(size, size)
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			c := color.RGBA{R: 40, G: 40, B: 48, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 200, G: 60, B: 160, A: 255}
			}
			vector.DrawFilledRect(img, float32(x), float32(y), cell, cell, c, false)
		}
	}
	ebitenutil.DebugPrintAt(img, "?", size/2-3, size/2-8)
	return img
}
