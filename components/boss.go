package components

import "github.com/yohamta/donburi"

// BossData is the ninja boss chasing the turtle at the end of a level.
// It exists for the whole session and is only drawn and simulated while Active.
type BossData struct {
	Active   bool
	HP       int
	HitFlash int
}

var Boss = donburi.NewComponentType[BossData]()
