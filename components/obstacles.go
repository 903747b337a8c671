package components

import (
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi"
)

// HazardData is a cone or barrier standing on the street.
type HazardData struct {
	W, H   float64
	Kind   cfg.HazardKind
	Passed bool
	Seq    int // spawn order, used to keep the newest on boss start
}

var Hazard = donburi.NewComponentType[HazardData]()

// RampData is a launch ramp.
type RampData struct {
	W, H float64
	Seq  int
}

var Ramp = donburi.NewComponentType[RampData]()
