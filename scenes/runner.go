package scenes

import (
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/render"
	"github.com/automoto/skateturtle/systems"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RunnerScene plays the skateboarding turtle runner.
type RunnerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	canvas       *render.Canvas
	once         sync.Once
}

func NewRunnerScene(sc SceneChanger) *RunnerScene {
	return &RunnerScene{sceneChanger: sc}
}

func (rs *RunnerScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	// Pause menu "Title Screen"
	if systems.GetOrCreatePause(rs.ecs).QuitRequested {
		rs.sceneChanger.ChangeScene(NewTitleScene(rs.sceneChanger))
	}
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunnerScene) configure() {
	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rs.ecs = ecs.NewECS(donburi.NewWorld())
	rs.canvas = render.NewCanvas()

	systems.AddRunnerSystems(rs.ecs, systems.UpdateInput, systems.UpdateAudio)

	rs.ecs.AddRenderer(cfg.Default, rs.drawFrame)
	rs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	rs.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateRunnerWorld(rs.ecs, seed)
}

func (rs *RunnerScene) drawFrame(e *ecs.ECS, screen *ebiten.Image) {
	rs.canvas.SetTarget(screen)
	rs.canvas.Render(systems.TakeSnapshot(e))
}
