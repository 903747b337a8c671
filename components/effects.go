package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// BannerData slides the boss and level-clear banners in from above.
type BannerData struct {
	Tween *gween.Tween
	Y     float32
	Shown bool
}

var Banner = donburi.NewComponentType[BannerData]()
