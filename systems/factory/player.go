package factory

import (
	"github.com/automoto/skateturtle/archetypes"
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the turtle standing on the ground at the configured start X.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x, y := cfg.Player.StartX, cfg.Physics.GroundY
	components.Position.SetValue(player, math.NewVec2(x, y))
	components.Velocity.SetValue(player, math.NewVec2(0, 0))
	components.Player.SetValue(player, components.PlayerData{Grounded: true})

	box := cfg.Player.Collider
	obj := resolv.NewObject(x+box.X, y+box.Y, box.W, box.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
