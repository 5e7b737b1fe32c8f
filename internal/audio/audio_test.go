package audio

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// writeTone writes a short mono WAV file at the given sample rate.
func writeTone(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	tone, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatalf("SineTone failed: %v", err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Take(rate.N(50*time.Millisecond), tone), format); err != nil {
		t.Fatalf("wav.Encode failed: %v", err)
	}
}

func TestLoadWav(t *testing.T) {
	tests := []struct {
		name string
		rate beep.SampleRate
	}{
		{"native rate", sampleRate},
		{"resampled", beep.SampleRate(22050)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "shot.wav")
			writeTone(t, path, tc.rate)

			buf, err := Load(path)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			// 50ms at 48kHz, allow resampler rounding
			want := sampleRate.N(50 * time.Millisecond)
			if got := buf.Len(); got < want-100 || got > want+100 {
				t.Errorf("buffer length = %d samples, expected about %d", got, want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("Load() should fail for a missing file")
	}

	unsupported := filepath.Join(dir, "sound.ogg")
	if err := os.WriteFile(unsupported, []byte("OggS"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(unsupported); err == nil {
		t.Error("Load() should reject unsupported formats")
	}

	garbage := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file at all"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load() should fail for corrupt files")
	}
}

func TestNewDegradesToSilence(t *testing.T) {
	dir := t.TempDir()
	hit := filepath.Join(dir, "hit.wav")
	writeTone(t, hit, sampleRate)

	p := New(Options{
		Shoot: filepath.Join(dir, "missing.wav"),
		Hit:   hit,
	}, quietLogger())

	if p.Has(core.EventFired) {
		t.Error("missing shoot sound should leave the event silent")
	}
	if !p.Has(core.EventHit) {
		t.Error("hit sound should be loaded")
	}
	if p.Has(core.EventPlayerCollided) {
		t.Error("unset collision sound should stay silent")
	}

	// Not started: must be a no-op rather than touching the speaker
	p.Notify([]core.Event{core.EventHit, core.EventFired})
	p.Close()
}

func TestSynthFillsGaps(t *testing.T) {
	p := New(Options{Synth: true}, quietLogger())
	for _, ev := range []core.Event{core.EventFired, core.EventHit, core.EventPlayerCollided} {
		if !p.Has(ev) {
			t.Errorf("synth should provide a sound for %v", ev)
		}
	}
	if buf := synthesize(core.EventPlayerCollided); buf.Len() != sampleRate.N(400*time.Millisecond) {
		t.Errorf("collision tone length = %d samples", buf.Len())
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.Notify([]core.Event{core.EventHit})
}
