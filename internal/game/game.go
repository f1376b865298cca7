// Package game is the Ebitengine front end of the landing page: header,
// wheel backdrop, slide cards and caption, with mouse and touch feeding the
// carousel.
package game

import (
	"fmt"
	"image/color"
	"log"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/message"

	"github.com/iburimskiy/super-quads/internal/carousel"
	"github.com/iburimskiy/super-quads/internal/config"
	"github.com/iburimskiy/super-quads/internal/deck"
	"github.com/iburimskiy/super-quads/internal/header"
)

type Game struct {
	settings config.Settings
	printer  *message.Printer
	header   *header.Header
	icons    []*ebiten.Image
	player   *player

	// carousel
	carousel *carousel.Carousel
	sprites  []*slideSprite
	drawList []*slideSprite
	wheel    *wheelSprite

	// pointer
	hovered      carousel.SlideID
	hasHover     bool
	mouseDrag    bool
	lastMouseX   int
	headerArmed  bool
	headerTarget header.Hit

	// touch
	touchIDs   []ebiten.TouchID
	touchID    ebiten.TouchID
	touching   bool
	lastTouchX int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// screen
	width, height int

	// viz
	glow       float64
	colorPhase float64

	lastErr error
}

// New builds the page for deck d.
func New(s config.Settings, d deck.Deck) (*Game, error) {
	p := header.Printer(s.Lang)
	g := &Game{
		settings: s,
		printer:  p,
		header:   header.New(p),
		prevKey:  map[ebiten.Key]bool{},
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}
	g.icons = loadIcons(g.header.Social, s.AssetDir)
	if s.Sound {
		pl, err := newPlayer(s)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			g.player = pl
		}
	}
	if err := g.useDeck(d); err != nil {
		return nil, err
	}
	return g, nil
}

// useDeck replaces the carousel with one built from d.
func (g *Game) useDeck(d deck.Deck) error {
	c, err := carousel.New(d.Slides)
	if err != nil {
		return fmt.Errorf("use deck: %w", err)
	}

	sprites := make([]*slideSprite, len(d.Slides))
	for i, s := range d.Slides {
		sprites[i] = newSlideSprite(s, g.settings.AssetDir)
		if err := c.Attach(s.ID, sprites[i]); err != nil {
			return fmt.Errorf("use deck: %w", err)
		}
	}
	wheel := newWheelSprite(d.Wheel, g.settings.AssetDir)
	c.AttachWheel(wheel)
	c.OnChange(func(prev, next int) {
		g.player.play()
	})

	g.carousel = c
	g.sprites = sprites
	g.drawList = make([]*slideSprite, 0, len(sprites))
	g.wheel = wheel
	g.hasHover = false
	g.mouseDrag = false
	g.touching = false
	return nil
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyArrowLeft) {
		g.carousel.Prev()
	}
	if justPressed(ebiten.KeyArrowRight) {
		g.carousel.Next()
	}
	if justPressed(ebiten.KeyM) {
		g.header.Toggle()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openDeckDialog(); err != nil {
			g.lastErr = err
		}
	}

	g.header.Layout(g.width)
	g.updateHeader()
	g.updateMouse()
	g.updateTouches()

	g.carousel.Tick(time.Second / time.Duration(ebiten.TPS()))
	g.colorPhase += config.ColorShiftSpeed
	g.glow = config.GlowSmoothing*g.glow + (1-config.GlowSmoothing)*g.player.level()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 18, B: 16, A: 255})

	hubX, hubY := g.hub()
	g.wheel.draw(screen, hubX, hubY, g.glow, g.colorPhase)

	// Back layer first; equal layers keep deck order.
	g.drawList = append(g.drawList[:0], g.sprites...)
	slices.SortStableFunc(g.drawList, func(a, b *slideSprite) int {
		return a.StackOrder - b.StackOrder
	})
	for _, s := range g.drawList {
		s.draw(screen, hubX, hubY)
	}

	g.drawCaption(screen)

	status := "Drag a card or use Left/Right - O: open deck, M: menu, Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.HeaderHeight+8)

	g.drawHeader(screen)
}

func (g *Game) drawCaption(screen *ebiten.Image) {
	y := g.height - (config.WindowHeight - config.CaptionY)
	vector.DrawFilledRect(screen, 0, float32(y-8), float32(g.width), 30, color.RGBA{R: 0, G: 0, B: 0, A: 170}, false)
	printCentered(screen, g.carousel.Caption(), g.width/2, y-2)
}

// hub is the wheel centre: horizontally centred, anchored to the bottom edge.
func (g *Game) hub() (float64, float64) {
	return float64(g.width) / 2, float64(g.height - (config.WindowHeight - config.WheelCenterY))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
