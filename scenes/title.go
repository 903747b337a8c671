package scenes

import (
	"sync"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene lets the player pick the runner or the frog loop.
type TitleScene struct {
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
}

func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.titleUI.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Title.BackgroundColor)
	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.titleUI = ui.NewTitleUI(
		func() { ts.sceneChanger.ChangeScene(NewRunnerScene(ts.sceneChanger)) },
		func() { ts.sceneChanger.ChangeScene(NewFrogLoopScene(ts.sceneChanger)) },
		ts.sceneChanger.Quit,
	)
}
