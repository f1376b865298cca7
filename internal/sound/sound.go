// Package sound prepares the short tick played on every carousel step.
package sound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrUnsupported = errors.New("unsupported sound file type")

// Format is the mixer format every tick is converted to.
func Format(rate int) beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
}

// Click synthesises a decaying sine blip.
func Click(rate beep.SampleRate, freq float64, d time.Duration) *beep.Buffer {
	total := rate.N(d)
	pos := 0
	gen := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(rate)
			env := math.Exp(-6 * float64(pos) / float64(total))
			v := 0.6 * env * math.Sin(2*math.Pi*freq*t)
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
	buf := beep.NewBuffer(Format(int(rate)))
	buf.Append(gen)
	return buf
}

// Decode opens a wav, mp3 or flac file based on its extension.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

// Load decodes path fully into memory, resampled to rate.
func Load(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := Decode(path)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	buf := beep.NewBuffer(Format(int(rate)))
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("load sound %s: %w", path, err)
	}
	return buf, nil
}

// WithVolume plays s at a base-2 gain; 0 leaves it unchanged.
func WithVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}
