// Package audio maps simulation events to sound effects.
// Sounds are decoded once into memory and mixed through the beep speaker.
// A missing or broken sound file only silences that one effect.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Sink receives the events produced by one simulation tick.
// Implementations must not block the caller.
type Sink interface {
	Notify(events []core.Event)
}

// Nop is a Sink that discards everything.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify([]core.Event) {}

// Options selects the sound for every event.
type Options struct {
	Shoot     string
	Hit       string
	Collision string
	Synth     bool    // Generate a short tone for events without a sound file
	Volume    float64 // Gain in beep's log2 scale, 0 = unchanged
}

// OptionsFromAssets builds options from the configured asset paths.
func OptionsFromAssets(a config.AssetsConfig) Options {
	return Options{
		Shoot:     a.ShootSound,
		Hit:       a.HitSound,
		Collision: a.CollisionSound,
	}
}

// Player plays event sounds through the system speaker.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	sounds  map[core.Event]*beep.Buffer
	volume  float64
	started bool
	logger  *log.Logger
}

// New decodes the configured sounds. Problems are logged and the affected
// event stays silent. The speaker is not touched until Start.
func New(opts Options, logger *log.Logger) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		sounds: make(map[core.Event]*beep.Buffer),
		volume: opts.Volume,
		logger: logger,
	}

	files := map[core.Event]string{
		core.EventFired:          opts.Shoot,
		core.EventHit:            opts.Hit,
		core.EventPlayerCollided: opts.Collision,
	}
	for ev, path := range files {
		if path != "" {
			buf, err := Load(path)
			if err == nil {
				p.sounds[ev] = buf
				continue
			}
			logger.Warn("sound unavailable, continuing without it", "event", ev, "path", path, "error", err)
		}
		if opts.Synth {
			p.sounds[ev] = synthesize(ev)
		}
	}

	return p
}

// Start opens the speaker. On failure the player stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if len(p.sounds) == 0 {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Has reports whether a sound is available for the event.
func (p *Player) Has(ev core.Event) bool {
	_, ok := p.sounds[ev]
	return ok
}

// Notify queues the sounds for the given events and returns immediately.
func (p *Player) Notify(events []core.Event) {
	if len(events) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}

	for _, ev := range events {
		buf, ok := p.sounds[ev]
		if !ok {
			continue
		}
		var s beep.Streamer = buf.Streamer(0, buf.Len())
		if p.volume != 0 {
			s = &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close stops everything that is still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}

// Load decodes a WAV or MP3 file into memory at the player's sample rate.
func Load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("audio: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	return buf, nil
}

// synthesize renders a short tone for an event.
func synthesize(ev core.Event) *beep.Buffer {
	freq, length := 880.0, 60*time.Millisecond
	switch ev {
	case core.EventHit:
		freq, length = 440, 90*time.Millisecond
	case core.EventPlayerCollided:
		freq, length = 110, 400*time.Millisecond
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return buf
	}
	buf.Append(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(length), tone),
		Base:     2,
		Volume:   -2,
	})
	return buf
}
