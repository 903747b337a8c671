package archetypes

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Velocity,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Position,
		components.Object,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Ramp,
		components.Position,
		components.Object,
	)
	Taco = newArchetype(
		tags.Taco,
		components.Taco,
		components.Position,
		components.Velocity,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Position,
		components.Velocity,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Position,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Track,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Banner = newArchetype(
		components.Banner,
	)
	Frog = newArchetype(
		tags.Frog,
		components.Frog,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
