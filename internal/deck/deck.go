// Package deck loads the slide sequence shown by the carousel.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/super-quads/internal/carousel"
)

var ErrEmpty = errors.New("deck has no slides")

// Deck is the slide list plus the wheel backdrop reference.
type Deck struct {
	Wheel  string           `yaml:"wheel"`
	Slides []carousel.Slide `yaml:"slides"`
}

// Default returns the built-in deck.
func Default() Deck {
	return Deck{Wheel: carousel.DefaultWheel, Slides: carousel.DefaultSlides()}
}

// Load reads a deck file. An empty path returns Default().
func Load(path string) (Deck, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("load deck %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return Deck{}, fmt.Errorf("load deck %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and normalises deck YAML.
func Parse(data []byte) (Deck, error) {
	var d Deck
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Deck{}, fmt.Errorf("decode: %w", err)
	}
	if len(d.Slides) == 0 {
		return Deck{}, ErrEmpty
	}
	if d.Wheel == "" {
		d.Wheel = carousel.DefaultWheel
	}
	seen := make(map[carousel.SlideID]bool, len(d.Slides))
	for i := range d.Slides {
		s := &d.Slides[i]
		if s.ID == "" {
			s.ID = carousel.SlideID(fmt.Sprintf("slide-%d", i+1))
		}
		if seen[s.ID] {
			return Deck{}, fmt.Errorf("%w: %q", carousel.ErrDuplicateSlide, s.ID)
		}
		seen[s.ID] = true
	}
	return d, nil
}
