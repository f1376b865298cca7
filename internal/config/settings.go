package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime knobs read from SQ_* environment variables.
type Settings struct {
	Title     string  `env:"SQ_TITLE" envDefault:"super quads"`
	Scale     float64 `env:"SQ_WINDOW_SCALE" envDefault:"1"`
	TPS       int     `env:"SQ_TPS" envDefault:"60"`
	AssetDir  string  `env:"SQ_ASSET_DIR" envDefault:"assets"`
	Deck      string  `env:"SQ_DECK"`
	Lang      string  `env:"SQ_LANG" envDefault:"es"`
	Sound     bool    `env:"SQ_SOUND" envDefault:"true"`
	SoundFile string  `env:"SQ_SOUND_FILE"`
	Volume    float64 `env:"SQ_VOLUME" envDefault:"-1"`
}

// Load parses Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.TPS <= 0 {
		return Settings{}, fmt.Errorf("invalid SQ_TPS: %d", s.TPS)
	}
	if s.Scale <= 0 {
		s.Scale = 1
	}
	return s, nil
}
