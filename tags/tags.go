package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Ramp     = donburi.NewTag().SetName("Ramp")
	Taco     = donburi.NewTag().SetName("Taco")
	Particle = donburi.NewTag().SetName("Particle")
	Boss     = donburi.NewTag().SetName("Boss")
	Frog     = donburi.NewTag().SetName("Frog")
)

// Resolv tags for collision broadphase
const (
	ResolvPlayer = "Player"
	ResolvHazard = "Hazard"
	ResolvRamp   = "ramp"
	ResolvTaco   = "Taco"
	ResolvBoss   = "Boss"
)
