package components

import (
	cfg "github.com/automoto/skateturtle/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component).
// Context is nil when no device is attached; PendingSFX still queues so other frontends can drain it.
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
