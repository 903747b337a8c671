package termview

import (
	"strings"
	"testing"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(110, 31)
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func baseFrame() *snapshot.Frame {
	return &snapshot.Frame{
		Mode:     cfg.ModeRunning,
		Level:    2,
		Score:    340,
		Combo:    0,
		Lives:    3,
		Distance: 1200,
		Target:   2400,
		Player: snapshot.Player{
			X: cfg.Player.StartX, Y: cfg.Physics.GroundY,
			Grounded: true,
		},
		Boss: snapshot.Boss{HP: 3, MaxHP: 3},
	}
}

func TestRenderHUD(t *testing.T) {
	screen := newScreen(t)
	New(screen).Render(baseFrame())

	top := row(screen, 0)
	for _, want := range []string{"Level: 2", "Score: 340", "Lives: 3", "Combo: x1", "Distance"} {
		if !strings.Contains(top, want) {
			t.Errorf("HUD row %q missing %q", top, want)
		}
	}
	if got := strings.Count(top, "#"); got != 10 {
		t.Errorf("Expected half-filled progress bar (10 cells), got %d", got)
	}
}

func TestRenderPlayerAndHazards(t *testing.T) {
	screen := newScreen(t)
	f := baseFrame()
	f.Hazards = []snapshot.Hazard{{X: 600, Y: cfg.Physics.GroundY, W: 44, H: 64, Kind: cfg.HazardCone}}
	f.Ramps = []snapshot.Ramp{{X: 900, Y: cfg.Physics.GroundY, W: 120, H: 48}}
	New(screen).Render(f)

	v := New(screen)
	px, py := v.cell(f.Player.X, f.Player.Y-40)
	if r, _, _, _ := screen.GetContent(px, py); r != '@' {
		t.Errorf("Expected turtle '@' at (%d,%d), got %q", px, py, r)
	}
	hx, hy := v.cell(610, cfg.Physics.GroundY-10)
	if r, _, _, _ := screen.GetContent(hx, hy); r != 'A' {
		t.Errorf("Expected cone 'A' at (%d,%d), got %q", hx, hy, r)
	}
	rx, ry := v.cell(960, cfg.Physics.GroundY-10)
	if r, _, _, _ := screen.GetContent(rx, ry); r != '/' {
		t.Errorf("Expected ramp '/' at (%d,%d), got %q", rx, ry, r)
	}
}

func TestRenderBossOnlyWhenVisible(t *testing.T) {
	screen := newScreen(t)
	v := New(screen)
	f := baseFrame()
	f.Boss.X, f.Boss.Y = 700, cfg.Physics.GroundY-14
	bx, by := v.cell(700, f.Boss.Y-60)

	v.Render(f)
	if r, _, _, _ := screen.GetContent(bx, by); r == 'B' {
		t.Error("Inactive boss should not be drawn while running")
	}

	f.Mode = cfg.ModeLevelClear
	v.Render(f)
	if r, _, _, _ := screen.GetContent(bx, by); r != 'B' {
		t.Errorf("Boss should stay visible during level clear, got %q", r)
	}
}

func TestRenderGameOver(t *testing.T) {
	screen := newScreen(t)
	f := baseFrame()
	f.Mode = cfg.ModeGameOver
	f.Lives = 0
	New(screen).Render(f)

	var all strings.Builder
	_, rows := screen.Size()
	for y := 0; y < rows; y++ {
		all.WriteString(row(screen, y))
	}
	for _, want := range []string{cfg.HUD.GameOverTitleText, cfg.HUD.RestartHint} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("Game over screen missing %q", want)
		}
	}
}

func TestRenderBanner(t *testing.T) {
	screen := newScreen(t)
	f := baseFrame()
	f.Mode = cfg.ModeBossChase
	f.Banner = snapshot.Banner{Visible: true, Y: 90, Text: cfg.HUD.BossMessage}
	New(screen).Render(f)

	_, y := New(screen).cell(0, 111)
	if got := row(screen, y); !strings.Contains(got, cfg.HUD.BossMessage) {
		t.Errorf("Banner row %q missing boss message", got)
	}
	if top := row(screen, 0); !strings.Contains(top, "Boss HP 3/3") {
		t.Errorf("HUD row %q should show boss HP during the chase", top)
	}
}
