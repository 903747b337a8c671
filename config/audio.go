package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundRamp
	// Trick sounds
	SoundTrick
	SoundGrab
	// Combat sounds
	SoundHit
	SoundThrow
	SoundBossHit
	SoundBossDefeat
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// ToneSpec describes a synthesized effect: a pitch sweep under an attack/release envelope
type ToneSpec struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Attack   float64 // seconds
	Volume   float64 // 0.0 - 1.0
	Square   bool    // square wave instead of sine
	NoiseMix float64 // 0.0 - 1.0 white noise blended in
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// Upper bound on effects started per frame; extra requests are dropped
	MaxSFXPerFrame int
}

// SoundConfig maps sound IDs to their synth parameters
type SoundConfig struct {
	Tones             map[SoundID]ToneSpec
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:     44100,
		DefaultSFXVol:  0.6,
		MaxSFXPerFrame: 4,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundJump:         {StartHz: 330, EndHz: 660, Duration: 0.12, Attack: 0.005, Volume: 0.5},
			SoundLand:         {StartHz: 180, EndHz: 110, Duration: 0.08, Attack: 0.002, Volume: 0.5, NoiseMix: 0.3},
			SoundRamp:         {StartHz: 440, EndHz: 990, Duration: 0.2, Attack: 0.01, Volume: 0.5},
			SoundTrick:        {StartHz: 520, EndHz: 780, Duration: 0.1, Attack: 0.005, Volume: 0.4, Square: true},
			SoundGrab:         {StartHz: 620, EndHz: 620, Duration: 0.09, Attack: 0.005, Volume: 0.4, Square: true},
			SoundHit:          {StartHz: 220, EndHz: 70, Duration: 0.22, Attack: 0.002, Volume: 0.6, NoiseMix: 0.5},
			SoundThrow:        {StartHz: 900, EndHz: 500, Duration: 0.08, Attack: 0.003, Volume: 0.35},
			SoundBossHit:      {StartHz: 160, EndHz: 90, Duration: 0.18, Attack: 0.002, Volume: 0.6, Square: true},
			SoundBossDefeat:   {StartHz: 392, EndHz: 1046, Duration: 0.6, Attack: 0.02, Volume: 0.55},
			SoundGameOver:     {StartHz: 392, EndHz: 98, Duration: 0.8, Attack: 0.02, Volume: 0.55, Square: true},
			SoundMenuNavigate: {StartHz: 880, EndHz: 880, Duration: 0.04, Attack: 0.002, Volume: 0.3},
			SoundMenuSelect:   {StartHz: 660, EndHz: 1320, Duration: 0.09, Attack: 0.003, Volume: 0.35},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:     1.3,
			SoundBossHit: 1.3,
		},
	}
}
