package systems

import (
	"math"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrog rolls the frog's board to the right, wrapping past the edge.
func UpdateFrog(e *ecs.ECS) {
	width := float64(cfg.C.Width)
	tags.Frog.Each(e.World, func(entry *donburi.Entry) {
		frog := components.Frog.Get(entry)
		frog.Tick++
		frog.X += cfg.Frog.Speed
		if frog.X > width+cfg.Frog.WrapPad {
			frog.X = -cfg.Frog.WrapPad
		}
	})
}

// FrogSnapshot returns the frog loop frame, or nil outside a frog world.
func FrogSnapshot(e *ecs.ECS) *snapshot.Frog {
	entry, ok := tags.Frog.First(e.World)
	if !ok {
		return nil
	}
	frog := components.Frog.Get(entry)
	fc := cfg.Frog
	t := float64(frog.Tick)
	return &snapshot.Frog{
		X:      frog.X,
		Bounce: math.Sin(t*fc.BounceFreq) * fc.BounceAmp,
		Pupil:  math.Sin(t*fc.BounceFreq) * fc.PupilAmp,
		Legs:   math.Cos(t*fc.LegFreq) * fc.LegAmp,
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	}
}
