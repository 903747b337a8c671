package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles drifts sparks under gravity and removes the spent ones.
func UpdateParticles(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		pos := components.Position.Get(entry)
		vel := components.Velocity.Get(entry)

		pos.X += vel.X
		pos.Y += vel.Y
		vel.Y += cfg.Physics.ParticleGravity
		p.Life--

		if p.Life <= 0 {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		destroy(e, entry)
	}
}
