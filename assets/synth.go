package assets

import (
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is an oscillator whose pitch glides linearly from start to end over its duration.
type sweep struct {
	start, end float64
	square     bool
	noiseMix   float64
	phase      float64
	position   int
	duration   int
	rate       beep.SampleRate
	noise      *rand.Rand
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		t := float64(s.position) / float64(s.duration)
		freq := s.start + (s.end-s.start)*t

		var val float64
		if s.square {
			val = 1.0
			if s.phase >= 0.5 {
				val = -1.0
			}
		} else {
			val = math.Sin(2 * math.Pi * s.phase)
		}
		if s.noiseMix > 0 {
			val = val*(1-s.noiseMix) + (s.noise.Float64()*2-1)*s.noiseMix
		}

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack samples and linearly out over the rest.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if release := e.total - e.attack; release > 0 {
			vol = float64(e.total-e.position) / float64(release)
		}
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Tone builds the streamer for a synthesized effect. Noise is seeded so a
// sound renders identically every time.
func Tone(spec cfg.ToneSpec, rate beep.SampleRate) beep.Streamer {
	total := rate.N(time.Duration(spec.Duration * float64(time.Second)))
	osc := &sweep{
		start:    spec.StartHz,
		end:      spec.EndHz,
		square:   spec.Square,
		noiseMix: spec.NoiseMix,
		duration: total,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(spec.StartHz*1000 + spec.EndHz))),
	}
	env := &envelope{
		streamer: osc,
		attack:   rate.N(time.Duration(spec.Attack * float64(time.Second))),
		total:    total,
	}
	return volume(env, spec.Volume)
}

// volume scales a stream linearly; beep's Volume effect works in log2 steps.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// PCM drains a finite stream into signed 16-bit little-endian stereo frames.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				sample := int16(v * math.MaxInt16)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
