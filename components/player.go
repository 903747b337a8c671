package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Grounded bool

	// Trick timers count down to zero; angles accumulate while they run
	SpinTimer  int
	FlipTimer  int
	GrabTimer  int
	SpinAngle  float64
	FlipAngle  float64
	GrabName   string
	HurtTimer  int
	LandedTick int // tick of the last touchdown, drives the landing squash
}

var Player = donburi.NewComponentType[PlayerData]()

// TrickActive reports whether any trick timer is still running.
func (p *PlayerData) TrickActive() bool {
	return p.SpinTimer > 0 || p.FlipTimer > 0 || p.GrabTimer > 0
}
