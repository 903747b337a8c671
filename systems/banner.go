package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner advances the banner slide-in tween one frame.
func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if !banner.Shown || banner.Tween == nil {
		return
	}
	banner.Y, _ = banner.Tween.Update(1)
}

func showBanner(e *ecs.ECS, toY float32) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Tween = gween.New(cfg.Banner.StartY, toY, cfg.Banner.Duration, ease.OutBack)
	banner.Y = cfg.Banner.StartY
	banner.Shown = true
}

func hideBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Shown = false
	banner.Y = cfg.Banner.StartY
}
