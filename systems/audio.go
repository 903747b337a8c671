package systems

import (
	"log"
	"math"
	"sync"

	"github.com/automoto/skateturtle/assets"
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// InitAudio creates the shared audio context. Until it is called, queued
// effects are dropped by UpdateAudio, which keeps headless worlds silent.
func InitAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every effect up front so the first play does not stall a frame.
func PreloadAllSFX() {
	InitAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: could not render sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the effects queued this frame.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	pending := DrainSFX(e)
	if audioData.Context == nil {
		return
	}
	for _, soundID := range pending {
		playSFX(soundID, audioData.SFXVolume)
	}
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 || globalAudioLoader == nil {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played. A sound already queued this
// frame is not queued twice, and the queue is capped per frame.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) >= cfg.Audio.MaxSFXPerFrame {
		return
	}
	for _, queued := range audioData.PendingSFX {
		if queued == sound {
			return
		}
	}
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// DrainSFX returns the queued effects and empties the queue.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return nil
	}
	out := append([]cfg.SoundID(nil), audioData.PendingSFX...)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return out
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0) for worlds created afterwards.
func SetSFXVolume(volume float64) {
	globalSFXVolume = math.Max(0, math.Min(1, volume))
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, cfg.Audio.MaxSFXPerFrame),
		})
	}
	return components.Audio.Get(entry)
}
