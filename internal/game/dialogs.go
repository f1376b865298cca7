package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/super-quads/internal/deck"
	"github.com/iburimskiy/super-quads/internal/header"
)

func (g *Game) openDeckDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Slide Deck"),
		zenity.FileFilters{{
			Name:     "Deck",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	d, err := deck.Load(filename)
	if err != nil {
		return err
	}
	log.Printf("loaded deck %s (%d slides)", filename, len(d.Slides))
	return g.useDeck(d)
}

func (g *Game) showBooking() error {
	err := zenity.Info(g.printer.Sprintf(header.KeyBookingBody),
		zenity.Title(g.printer.Sprintf(header.KeyBookingTitle)),
		zenity.InfoIcon,
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}

func (g *Game) notifySocial(i int) error {
	link := g.header.Social[i]
	log.Printf("social link %s: %s", link.Name, link.Href)
	return zenity.Notify(link.Href,
		zenity.Title(g.printer.Sprintf(header.KeySocialTitle)),
		zenity.InfoIcon,
	)
}
