package factory

import (
	"github.com/automoto/skateturtle/archetypes"
	"github.com/automoto/skateturtle/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
