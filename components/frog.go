package components

import "github.com/yohamta/donburi"

// FrogData drives the frog loop animation.
type FrogData struct {
	X    float64
	Tick int
}

var Frog = donburi.NewComponentType[FrogData]()
