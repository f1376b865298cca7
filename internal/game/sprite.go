package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/super-quads/internal/carousel"
	"github.com/iburimskiy/super-quads/internal/config"
)

// slideSprite is the on-screen card for one slide. The animator writes into
// the embedded pose; Draw reads it.
type slideSprite struct {
	carousel.Pose
	slide   carousel.Slide
	photo   *ebiten.Image
	surface *ebiten.Image
}

func newSlideSprite(s carousel.Slide, assetDir string) *slideSprite {
	photo, _ := loadImage(assetDir, s.Image)
	return &slideSprite{Pose: carousel.NeutralPose(), slide: s, photo: photo}
}

// render composes photo and title into the card surface once.
func (s *slideSprite) render() {
	const pad = 6
	const titleBand = 30
	w, h := config.CardWidth, config.CardHeight

	s.surface = ebiten.NewImage(w, h)
	s.surface.Fill(color.RGBA{R: 24, G: 26, B: 30, A: 255})

	pb := s.photo.Bounds()
	fw, fh := float64(w-2*pad), float64(h-2*pad-titleBand)
	k := math.Max(fw/float64(pb.Dx()), fh/float64(pb.Dy()))
	photo := ebiten.NewImage(int(fw), int(fh))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(pb.Dx())/2, -float64(pb.Dy())/2)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(fw/2, fh/2)
	op.Filter = ebiten.FilterLinear
	photo.DrawImage(s.photo, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pad, pad)
	s.surface.DrawImage(photo, op)
	photo.Deallocate()

	printCentered(s.surface, s.slide.Title, w/2, h-pad-titleBand/2-8)
	vector.StrokeRect(s.surface, 1, 1, float32(w-2), float32(h-2), 2, color.RGBA{R: 230, G: 200, B: 120, A: 255}, true)
}

func (s *slideSprite) draw(screen *ebiten.Image, hubX, hubY float64) {
	if s.Opacity <= 0.001 {
		return
	}
	if s.surface == nil {
		s.render()
	}
	sx := s.Scale * math.Cos(s.TiltY*math.Pi/180)
	sy := s.Scale * math.Cos(s.TiltX*math.Pi/180)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-config.CardWidth/2, -config.CardHeight/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(s.Rotation * math.Pi / 180)
	op.GeoM.Translate(hubX+s.X, hubY+s.Y)
	op.ColorScale.ScaleAlpha(float32(clamp01(s.Opacity)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.surface, op)
}

// wheelSprite is the spinning backdrop behind the cards.
type wheelSprite struct {
	carousel.Pose
	img *ebiten.Image
}

func newWheelSprite(name, assetDir string) *wheelSprite {
	w := &wheelSprite{Pose: carousel.NeutralPose()}
	if img, ok := loadImage(assetDir, name); ok {
		w.img = img
	}
	return w
}

func (w *wheelSprite) draw(screen *ebiten.Image, hubX, hubY, glow, colorPhase float64) {
	rad := w.Rotation * math.Pi / 180
	r := float64(config.WheelRadius)

	if glow > 0.01 {
		cr, cg, cb := hsvToRgb(colorPhase*360, 0.7, 1)
		a := uint8(255 * clamp01(glow*3))
		vector.StrokeCircle(screen, float32(hubX), float32(hubY), float32(r+22), 10, color.RGBA{R: cr, G: cg, B: cb, A: a}, true)
	}

	if w.img != nil {
		b := w.img.Bounds()
		k := 2 * r / math.Max(float64(b.Dx()), float64(b.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(k, k)
		op.GeoM.Rotate(rad)
		op.GeoM.Translate(hubX, hubY)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(w.img, op)
		return
	}

	// No backdrop asset: draw a tyre with spokes instead.
	tyre := color.RGBA{R: 34, G: 34, B: 38, A: 255}
	rim := color.RGBA{R: 150, G: 150, B: 160, A: 255}
	vector.StrokeCircle(screen, float32(hubX), float32(hubY), float32(r-14), 28, tyre, true)
	vector.StrokeCircle(screen, float32(hubX), float32(hubY), float32(r*0.62), 6, rim, true)
	for i := 0; i < 8; i++ {
		a := rad + float64(i)*config.AngleStep*math.Pi/180
		x := hubX + math.Cos(a)*r*0.62
		y := hubY + math.Sin(a)*r*0.62
		vector.StrokeLine(screen, float32(hubX), float32(hubY), float32(x), float32(y), 5, rim, true)
	}
	for i := 0; i < 24; i++ {
		a := rad + float64(i)*(2*math.Pi/24)
		x := hubX + math.Cos(a)*(r-14)
		y := hubY + math.Sin(a)*(r-14)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 6, tyre, true)
	}
	vector.DrawFilledCircle(screen, float32(hubX), float32(hubY), float32(r*0.12), rim, true)
}
