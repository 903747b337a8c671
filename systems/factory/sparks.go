package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/skateturtle/archetypes"
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnSparks emits a burst of count particles at (x, y) using the session RNG.
func SpawnSparks(ecs *ecs.ECS, x, y float64, c color.RGBA, count int) {
	e, ok := components.Track.First(ecs.World)
	if !ok {
		return
	}
	rng := components.Track.Get(e).Rand
	pc := cfg.Particle

	for i := 0; i < count; i++ {
		p := archetypes.Particle.Spawn(ecs)
		components.Position.SetValue(p, math.NewVec2(x, y))
		components.Velocity.SetValue(p, math.NewVec2(
			Between(rng, pc.MinVX, pc.MaxVX),
			Between(rng, pc.MinVY, pc.MaxVY),
		))
		components.Particle.SetValue(p, components.ParticleData{
			Life:  int(Between(rng, float64(pc.MinLife), float64(pc.MaxLife))),
			Color: c,
			Size:  Between(rng, pc.MinSize, pc.MaxSize),
		})
	}
}

// Between returns a uniform value in [lo, hi).
func Between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Pick returns one of the options uniformly.
func Pick(rng *rand.Rand, options []float64) float64 {
	return options[rng.Intn(len(options))]
}
