package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is a short-lived spark.
type ParticleData struct {
	Life  int
	Color color.RGBA
	Size  float64
}

var Particle = donburi.NewComponentType[ParticleData]()
