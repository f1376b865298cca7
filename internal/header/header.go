// Package header is the site navigation bar: logo, menu links, social
// links, the booking button and the collapsible menu toggle.
package header

import (
	"image"

	"golang.org/x/text/message"

	"github.com/iburimskiy/super-quads/internal/config"
)

// Logo is the brand shown on the left of the bar.
const Logo = "super quads"

// Approximate glyph width of the debug font.
const charWidth = 6

// NavItem is one menu entry.
type NavItem struct {
	Label string
}

// SocialLink points to an external profile. Icon is an asset name; the
// view falls back to the first letter of Name when it cannot be loaded.
type SocialLink struct {
	Name string
	Href string
	Icon string
}

// HitKind identifies the part of the header under a point.
type HitKind int

const (
	HitNone HitKind = iota
	HitLogo
	HitNavItem
	HitSocial
	HitBook
	HitMenu
	HitPanel
	HitBar
)

// Hit is the result of HitTest; Index is set for nav items and social links.
type Hit struct {
	Kind  HitKind
	Index int
}

// Layout holds the rectangles of every header part for one width.
type Layout struct {
	Bar       image.Rectangle
	Logo      image.Rectangle
	Items     []image.Rectangle
	Social    []image.Rectangle
	Book      image.Rectangle
	Menu      image.Rectangle
	Panel     image.Rectangle
	Collapsed bool
}

// Header keeps the menu state. Only the toggle mutates it.
type Header struct {
	Items  []NavItem
	Social []SocialLink
	Book   string

	open   bool
	layout Layout
}

// New builds the header with labels from p.
func New(p *message.Printer) *Header {
	return &Header{
		Items: []NavItem{
			{Label: p.Sprintf(KeyTour)},
			{Label: p.Sprintf(KeyGallery)},
			{Label: p.Sprintf(KeyAbout)},
		},
		Social: []SocialLink{
			{Name: "whatsapp", Href: "https://whatsapp.com", Icon: "whatsapp.png"},
			{Name: "instagram", Href: "https://instagram.com", Icon: "instagram.png"},
			{Name: "tiktok", Href: "https://tiktok.com", Icon: "tiktok.png"},
		},
		Book: p.Sprintf(KeyBook),
	}
}

// Toggle flips the menu open state.
func (h *Header) Toggle() { h.open = !h.open }

// IsOpen reports whether the menu is open.
func (h *Header) IsOpen() bool { return h.open }

// Labels returns the menu labels in order.
func (h *Header) Labels() []string {
	out := make([]string, len(h.Items))
	for i, it := range h.Items {
		out[i] = it.Label
	}
	return out
}

// Layout computes and caches the header geometry for width.
func (h *Header) Layout(width int) Layout {
	const pad = 24
	const gap = 20
	const icon = 24
	hh := config.HeaderHeight

	l := Layout{
		Bar:       image.Rect(0, 0, width, hh),
		Collapsed: width < config.HeaderCollapseAt,
	}
	l.Logo = image.Rect(pad, (hh-16)/2, pad+textWidth(Logo), (hh+16)/2)

	bx := width - pad - config.BookButtonWidth
	if l.Collapsed {
		mx := width - pad - config.MenuButtonSize
		l.Menu = image.Rect(mx, (hh-config.MenuButtonSize)/2, mx+config.MenuButtonSize, (hh+config.MenuButtonSize)/2)
		bx = mx - gap - config.BookButtonWidth
	}
	l.Book = image.Rect(bx, (hh-config.BookButtonHeight)/2, bx+config.BookButtonWidth, (hh+config.BookButtonHeight)/2)

	if !l.Collapsed {
		x := l.Logo.Max.X + gap*2
		for _, it := range h.Items {
			w := textWidth(it.Label) + gap
			l.Items = append(l.Items, image.Rect(x, 0, x+w, hh))
			x += w
		}
		x += gap
		for range h.Social {
			l.Social = append(l.Social, image.Rect(x, (hh-icon)/2, x+icon, (hh+icon)/2))
			x += icon + gap/2
		}
	} else if h.open {
		const row = 40
		y := hh
		for range h.Items {
			l.Items = append(l.Items, image.Rect(0, y, width, y+row))
			y += row
		}
		x := pad
		for range h.Social {
			l.Social = append(l.Social, image.Rect(x, y+(row-icon)/2, x+icon, y+(row+icon)/2))
			x += icon + gap
		}
		y += row
		l.Panel = image.Rect(0, hh, width, y)
	}

	h.layout = l
	return l
}

// HitTest reports which part of the last layout contains (x, y).
func (h *Header) HitTest(x, y int) Hit {
	pt := image.Pt(x, y)
	l := h.layout
	if pt.In(l.Menu) {
		return Hit{Kind: HitMenu}
	}
	if pt.In(l.Book) {
		return Hit{Kind: HitBook}
	}
	for i, r := range l.Items {
		if pt.In(r) {
			return Hit{Kind: HitNavItem, Index: i}
		}
	}
	for i, r := range l.Social {
		if pt.In(r) {
			return Hit{Kind: HitSocial, Index: i}
		}
	}
	if pt.In(l.Logo) {
		return Hit{Kind: HitLogo}
	}
	if pt.In(l.Panel) {
		return Hit{Kind: HitPanel}
	}
	if pt.In(l.Bar) {
		return Hit{Kind: HitBar}
	}
	return Hit{Kind: HitNone}
}

func textWidth(s string) int {
	return len([]rune(s)) * charWidth
}
