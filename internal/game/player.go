package game

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/super-quads/internal/config"
	"github.com/iburimskiy/super-quads/internal/sound"
)

// player mixes step ticks into one speaker stream and taps it for the
// wheel glow. A nil player is silent.
type player struct {
	mixer  *beep.Mixer
	tap    *sound.Tap
	tick   *beep.Buffer
	volume float64
}

func newPlayer(s config.Settings) (*player, error) {
	rate := beep.SampleRate(config.SampleRate)

	tick := sound.Click(rate, config.ClickFrequency, config.ClickMillis*time.Millisecond)
	if s.SoundFile != "" {
		buf, err := sound.Load(s.SoundFile, rate)
		if err != nil {
			log.Printf("%v; using built-in click", err)
		} else {
			tick = buf
		}
	}

	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, err
	}
	p := &player{
		mixer:  &beep.Mixer{},
		tick:   tick,
		volume: s.Volume,
	}
	p.tap = sound.NewTap(p.mixer, config.TapRingSize)
	speaker.Play(p.tap)
	return p, nil
}

func (p *player) play() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(sound.WithVolume(p.tick.Streamer(0, p.tick.Len()), p.volume))
	speaker.Unlock()
}

func (p *player) level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.Level(1024)
}
