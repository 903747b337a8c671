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

// CreateBoss spawns the boss off-screen and inactive. It lives for the whole session.
func CreateBoss(ecs *ecs.ECS) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	x, y := BossHome()
	components.Position.SetValue(boss, math.NewVec2(x, y))
	components.Boss.SetValue(boss, components.BossData{HP: cfg.Boss.HP})

	box := cfg.Boss.Collider
	obj := resolv.NewObject(x+box.X, y+box.Y, box.W, box.H, tags.ResolvBoss)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = boss
	components.Object.SetValue(boss, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return boss
}

// BossHome is where the boss waits before a chase begins.
func BossHome() (float64, float64) {
	return float64(cfg.C.Width) + cfg.Boss.SpawnOffsetX, cfg.Physics.GroundY - cfg.Boss.GroundOffset
}
