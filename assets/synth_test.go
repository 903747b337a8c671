package assets

import (
	"bytes"
	"testing"
	"time"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/gopxl/beep"
)

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	for id, spec := range cfg.Sound.Tones {
		pcm := PCM(Tone(spec, rate))
		frames := rate.N(time.Duration(spec.Duration * float64(time.Second)))
		// 16-bit stereo
		if len(pcm) != frames*4 {
			t.Errorf("sound %d: expected %d bytes, got %d", id, frames*4, len(pcm))
		}
	}
}

func TestToneIsRepeatable(t *testing.T) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	spec := cfg.Sound.Tones[cfg.SoundHit]
	if !bytes.Equal(PCM(Tone(spec, rate)), PCM(Tone(spec, rate))) {
		t.Error("Expected a tone with noise to render identically twice")
	}
}

func TestToneNotSilent(t *testing.T) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	pcm := PCM(Tone(cfg.Sound.Tones[cfg.SoundJump], rate))
	for _, b := range pcm {
		if b != 0 {
			return
		}
	}
	t.Error("Expected audible samples")
}

func TestMutedToneIsSilent(t *testing.T) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	spec := cfg.Sound.Tones[cfg.SoundJump]
	spec.Volume = 0
	for _, b := range PCM(Tone(spec, rate)) {
		if b != 0 {
			t.Fatal("Expected silence at zero volume")
		}
	}
}
