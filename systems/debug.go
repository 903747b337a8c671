package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/fonts"
	"github.com/automoto/skateturtle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider in the space and prints the session state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Colliders {
		return
	}

	var camX, camY float64
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camX, camY = camera.Offset.X, camera.Offset.Y
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvHazard) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvBoss) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		} else if obj.HasTags(tags.ResolvTaco) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	if session := GetSession(ecs); session != nil {
		line := fmt.Sprintf("mode=%s dist=%.0f/%.0f speed=%.1f objs=%d tps=%.0f",
			session.Mode, session.Distance, session.Target, session.Speed,
			len(space.Objects()), ebiten.ActualTPS())
		text.Draw(screen, line, fonts.HUDSmall.Get(), 18, 148, cfg.White)
	}
}
