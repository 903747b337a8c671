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

// CreateTaco launches a taco from the turtle anchored at (x, y).
func CreateTaco(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	taco := archetypes.Taco.Spawn(ecs)

	tx, ty := x+cfg.Taco.OffsetX, y+cfg.Taco.OffsetY
	components.Position.SetValue(taco, math.NewVec2(tx, ty))
	components.Velocity.SetValue(taco, math.NewVec2(cfg.Taco.SpeedX, cfg.Taco.SpeedY))
	components.Taco.SetValue(taco, components.TacoData{})

	box := cfg.Taco.Box
	obj := resolv.NewObject(tx+box.X, ty+box.Y, box.W, box.H, tags.ResolvTaco)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = taco
	components.Object.SetValue(taco, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return taco
}
