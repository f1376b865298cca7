package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/super-quads/internal/carousel"
	"github.com/iburimskiy/super-quads/internal/config"
	"github.com/iburimskiy/super-quads/internal/header"
)

func (g *Game) slideAt(x, y int) (id carousel.SlideID, nx, ny float64, ok bool) {
	if g.header.HitTest(x, y).Kind != header.HitNone {
		return "", 0, 0, false
	}
	hubX, hubY := g.hub()
	return g.carousel.HitTest(float64(x)-hubX, float64(y)-hubY, config.CardWidth, config.CardHeight)
}

// updateHeader arms a header part on press and fires it on release over the
// same part.
func (g *Game) updateHeader() {
	mouseX, mouseY := ebiten.CursorPosition()
	hit := g.header.HitTest(mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.headerArmed = hit.Kind != header.HitNone
		g.headerTarget = hit
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.headerArmed && hit == g.headerTarget {
			g.activate(hit)
		}
		g.headerArmed = false
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0]) {
		x, y := ebiten.TouchPosition(id)
		if h := g.header.HitTest(x, y); h.Kind != header.HitNone {
			g.activate(h)
		}
	}
}

func (g *Game) activate(hit header.Hit) {
	var err error
	switch hit.Kind {
	case header.HitMenu:
		g.header.Toggle()
	case header.HitBook:
		err = g.showBooking()
	case header.HitSocial:
		err = g.notifySocial(hit.Index)
	case header.HitNavItem:
		log.Printf("menu: %s", g.header.Items[hit.Index].Label)
		if g.header.IsOpen() {
			g.header.Toggle()
		}
	case header.HitLogo:
		err = g.carousel.GoTo(0)
	}
	if err != nil {
		g.lastErr = err
	}
}

// updateMouse feeds the cursor into the carousel. Leaving the hovered card
// ends any drag and relaxes its tilt.
func (g *Game) updateMouse() {
	mouseX, mouseY := ebiten.CursorPosition()
	id, nx, ny, over := g.slideAt(mouseX, mouseY)

	if g.hasHover && (!over || id != g.hovered) {
		g.carousel.Leave(g.hovered)
		g.mouseDrag = false
	}
	g.hovered, g.hasHover = id, over
	if over {
		g.carousel.Hover(id, nx, ny)
	}

	x := float64(mouseX)
	if over && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.carousel.OnPointerDelta(x, carousel.PhaseStart)
		g.mouseDrag = true
	} else if g.mouseDrag && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && mouseX != g.lastMouseX {
		g.carousel.OnPointerDelta(x, carousel.PhaseMove)
	}
	if g.mouseDrag && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.carousel.OnPointerDelta(x, carousel.PhaseEnd)
		g.mouseDrag = false
	}
	g.lastMouseX = mouseX
}

// updateTouches follows the first finger that lands on a card.
func (g *Game) updateTouches() {
	if !g.touching {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		for _, id := range g.touchIDs {
			x, y := ebiten.TouchPosition(id)
			if _, _, _, ok := g.slideAt(x, y); ok {
				g.touchID, g.touching, g.lastTouchX = id, true, x
				g.carousel.OnPointerDelta(float64(x), carousel.PhaseStart)
				break
			}
		}
		return
	}

	if inpututil.IsTouchJustReleased(g.touchID) {
		g.carousel.OnPointerDelta(float64(g.lastTouchX), carousel.PhaseEnd)
		g.touching = false
		return
	}
	x, _ := ebiten.TouchPosition(g.touchID)
	if x != g.lastTouchX {
		g.carousel.OnPointerDelta(float64(x), carousel.PhaseMove)
		g.lastTouchX = x
	}
}
