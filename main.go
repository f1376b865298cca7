package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/super-quads/internal/carousel"
	"github.com/iburimskiy/super-quads/internal/config"
	"github.com/iburimskiy/super-quads/internal/deck"
	"github.com/iburimskiy/super-quads/internal/game"
	"github.com/iburimskiy/super-quads/internal/headless"
)

func main() {
	var hl headless.Config
	flag.BoolVar(&hl.Enabled, "headless", false, "run the carousel without a window")
	flag.IntVar(&hl.Hz, "hz", 60, "headless tick rate")
	flag.Uint64Var(&hl.Ticks, "ticks", 0, "headless ticks to run (0 = until interrupted)")
	flag.Float64Var(&hl.Stride, "stride", 6, "headless drag distance per tick")
	flag.IntVar(&hl.Steps, "steps", 60, "headless drag samples per sweep")
	deckPath := flag.String("deck", "", "slide deck YAML (overrides SQ_DECK)")
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *deckPath != "" {
		settings.Deck = *deckPath
	}
	d, err := deck.Load(settings.Deck)
	if err != nil {
		log.Fatal(err)
	}

	if hl.Enabled {
		runHeadless(d, hl)
		return
	}

	g, err := game.New(settings, d)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(int(config.WindowWidth*settings.Scale), int(config.WindowHeight*settings.Scale))
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(settings.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func runHeadless(d deck.Deck, cfg headless.Config) {
	c, err := carousel.New(d.Slides)
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := headless.Run(ctx, c, cfg, log.Printf)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("headless: %d ticks, %d transitions, final slide %d (%s)",
		rep.Ticks, rep.Transitions, rep.FinalIndex, c.Caption())
}
