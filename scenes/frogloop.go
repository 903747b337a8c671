package scenes

import (
	"sync"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/render"
	"github.com/automoto/skateturtle/systems"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FrogLoopScene is the frog skating across the screen forever.
type FrogLoopScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	canvas       *render.Canvas
	once         sync.Once
}

func NewFrogLoopScene(sc SceneChanger) *FrogLoopScene {
	return &FrogLoopScene{sceneChanger: sc}
}

func (fs *FrogLoopScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	input := systems.GetOrCreateInput(fs.ecs)
	if systems.GetAction(input, cfg.ActionPause).JustPressed || systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		fs.sceneChanger.ChangeScene(NewTitleScene(fs.sceneChanger))
	}
}

func (fs *FrogLoopScene) Draw(screen *ebiten.Image) {
	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FrogLoopScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())
	fs.canvas = render.NewCanvas()

	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.UpdateFrog)
	fs.ecs.AddRenderer(cfg.Default, fs.drawFrame)

	factory.CreateFrog(fs.ecs)
}

func (fs *FrogLoopScene) drawFrame(e *ecs.ECS, screen *ebiten.Image) {
	frog := systems.FrogSnapshot(e)
	if frog == nil {
		return
	}
	fs.canvas.SetTarget(screen)
	fs.canvas.RenderFrog(frog)
}
