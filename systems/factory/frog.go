package factory

import (
	"github.com/automoto/skateturtle/archetypes"
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFrog(ecs *ecs.ECS) *donburi.Entry {
	frog := archetypes.Frog.Spawn(ecs)
	components.Frog.SetValue(frog, components.FrogData{X: cfg.Frog.StartX})
	return frog
}
