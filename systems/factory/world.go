package factory

import (
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi/ecs"
)

// Collision grid extends past the right edge so the boss and tacos
// are indexed while still approaching from off-screen.
const (
	spaceCell    = 32
	spaceMarginX = 480
	spaceMarginY = 80
)

// CreateRunnerWorld populates an empty world with everything a runner session needs.
func CreateRunnerWorld(ecs *ecs.ECS, seed int64) {
	CreateSpace(ecs,
		cfg.C.Width+spaceMarginX,
		cfg.C.Height+spaceMarginY,
		spaceCell, spaceCell,
	)
	CreateCamera(ecs)
	CreateSession(ecs, seed)
	CreateBanner(ecs)
	CreatePlayer(ecs)
	CreateBoss(ecs)
}
