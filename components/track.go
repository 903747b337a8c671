package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// TrackData holds spawn scheduling, scroll offsets and the session RNG (singleton).
type TrackData struct {
	NextHazardAt float64
	NextRampAt   float64
	TacoCooldown int
	BgShift      float64
	StripeOffset float64
	SpawnSeq     int
	Rand         *rand.Rand
}

var Track = donburi.NewComponentType[TrackData]()
