package game

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/super-quads/internal/header"
)

var (
	barColor    = color.RGBA{R: 8, G: 10, B: 9, A: 235}
	accentColor = color.RGBA{R: 230, G: 200, B: 120, A: 255}
	hoverColor  = color.RGBA{R: 60, G: 60, B: 50, A: 255}
	inkColor    = color.RGBA{R: 240, G: 240, B: 235, A: 255}
)

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

// printIn centres s inside r.
func printIn(dst *ebiten.Image, s string, r image.Rectangle) {
	c := r.Min.Add(r.Max).Div(2)
	printCentered(dst, s, c.X, c.Y-8)
}

// loadIcons loads one icon per social link; missing ones stay nil.
func loadIcons(links []header.SocialLink, assetDir string) []*ebiten.Image {
	icons := make([]*ebiten.Image, len(links))
	for i, l := range links {
		if img, ok := loadImage(assetDir, l.Icon); ok {
			icons[i] = img
		}
	}
	return icons
}

// drawFitted scales img to fit inside r, centred.
func drawFitted(dst, img *ebiten.Image, r image.Rectangle) {
	b := img.Bounds()
	k := min(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	l := g.header.Layout(g.width)
	mx, my := ebiten.CursorPosition()
	hover := g.header.HitTest(mx, my)

	fillRect(screen, l.Bar, barColor)
	vector.StrokeLine(screen, 0, float32(l.Bar.Max.Y), float32(l.Bar.Max.X), float32(l.Bar.Max.Y), 1, accentColor, false)
	ebitenutil.DebugPrintAt(screen, strings.ToUpper(header.Logo), l.Logo.Min.X, l.Logo.Min.Y)

	if !l.Panel.Empty() {
		fillRect(screen, l.Panel, barColor)
	}
	for i, r := range l.Items {
		if hover.Kind == header.HitNavItem && hover.Index == i {
			fillRect(screen, r, hoverColor)
		}
		printIn(screen, g.header.Items[i].Label, r)
	}
	for i, r := range l.Social {
		c := r.Min.Add(r.Max).Div(2)
		rad := float32(r.Dx()) / 2
		if hover.Kind == header.HitSocial && hover.Index == i {
			vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), rad, hoverColor, true)
		}
		if icon := g.icons[i]; icon != nil {
			drawFitted(screen, icon, r)
			continue
		}
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), rad, 1.5, inkColor, true)
		printIn(screen, strings.ToUpper(g.header.Social[i].Name[:1]), r)
	}

	if hover.Kind == header.HitBook {
		fillRect(screen, l.Book, accentColor)
	}
	vector.StrokeRect(screen, float32(l.Book.Min.X), float32(l.Book.Min.Y), float32(l.Book.Dx()), float32(l.Book.Dy()), 1.5, accentColor, false)
	printIn(screen, g.header.Book+" ->", l.Book)

	if l.Collapsed {
		g.drawMenuButton(screen, l.Menu)
	}
}

// drawMenuButton draws three bars, or a cross while the menu is open.
func (g *Game) drawMenuButton(screen *ebiten.Image, r image.Rectangle) {
	const inset = 10
	x0, x1 := float32(r.Min.X+inset), float32(r.Max.X-inset)
	y0, y1 := float32(r.Min.Y+inset), float32(r.Max.Y-inset)
	if g.header.IsOpen() {
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, inkColor, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, 2, inkColor, true)
		return
	}
	for _, y := range []float32{y0, (y0 + y1) / 2, y1} {
		vector.StrokeLine(screen, x0, y, x1, y, 2, inkColor, false)
	}
}
