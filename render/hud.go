package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/fonts"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

func (c *Canvas) drawHUD(f *snapshot.Frame) {
	hud := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	fillRoundRect(c.screen, 18, 18, 350, 106, 12, cfg.HUD.PanelColor)

	drawTextTop(c.screen, fmt.Sprintf("Level: %d", f.Level), hud, 32, 32, cfg.HUD.TextColor)
	drawTextTop(c.screen, fmt.Sprintf("Score: %d", f.Score), hud, 32, 54, cfg.HUD.TextColor)
	drawTextTop(c.screen, fmt.Sprintf("Lives: %d", f.Lives), hud, 32, 76, cfg.HUD.TextColor)
	drawTextTop(c.screen, fmt.Sprintf("Combo: x%d", f.ComboMultiplier()), hud, 180, 76, cfg.HUD.ComboColor)

	fillRoundRect(c.screen, 184, 34, 170, 14, 7, cfg.HUD.ProgressBg)
	if p := f.Progress(); p > 0 {
		fillRoundRect(c.screen, 184, 34, 170*p, 14, 7, cfg.HUD.ProgressFg)
	}

	label := "Distance"
	if f.Mode == cfg.ModeBossChase {
		label = "Boss Zone"
	}
	drawTextTop(c.screen, label, small, 184, 18, cfg.HUD.TextColor)

	if f.Mode == cfg.ModeBossChase {
		w := float64(cfg.C.Width)
		fillRoundRect(c.screen, w-300, 24, 268, 30, 8, cfg.HUD.BossBarBg)
		if f.Boss.MaxHP > 0 && f.Boss.HP > 0 {
			hpW := float64(f.Boss.HP) / float64(f.Boss.MaxHP) * 248
			fillRoundRect(c.screen, w-290, 34, hpW, 10, 5, cfg.HUD.BossBarFg)
		}
		text.Draw(c.screen, "Boss HP", small, int(w-290), 22, cfg.HUD.TextColor)
	}
}

func (c *Canvas) drawPrompts(f *snapshot.Frame) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	fillRoundRect(c.screen, 18, h-72, w-36, 50, 10, cfg.HUD.PromptBg)
	drawTextMiddle(c.screen, cfg.HUD.Controls, fonts.HUDSmall.Get(), 34, h-46, cfg.HUD.PromptText)

	if f.Banner.Visible {
		y := f.Banner.Y
		switch f.Mode {
		case cfg.ModeBossChase:
			fillRoundRect(c.screen, w*0.5-210, y, 420, 42, 10, cfg.HUD.BossBannerBg)
			drawTextCentered(c.screen, f.Banner.Text, fonts.HUDBold.Get(), w*0.5, y+21, cfg.HUD.BossBannerText)
		case cfg.ModeLevelClear:
			fillRoundRect(c.screen, w*0.5-220, y, 440, 48, 10, cfg.HUD.ClearBannerBg)
			drawTextCentered(c.screen, f.Banner.Text, fonts.HUDBold.Get(), w*0.5, y+24, cfg.HUD.ClearBannerTxt)
		}
	}

	if f.Mode == cfg.ModeGameOver {
		vector.FillRect(c.screen, 0, 0, float32(w), float32(h), cfg.HUD.GameOverShade, false)
		drawTextCentered(c.screen, cfg.HUD.GameOverTitleText, fonts.Title.Get(), w*0.5, h*0.42, cfg.HUD.GameOverTitle)
		drawTextCentered(c.screen, cfg.HUD.RestartHint, fonts.HUDBold.Get(), w*0.5, h*0.52, cfg.HUD.TextColor)
	}
}

// drawTextTop places the top of the glyph box at y.
func drawTextTop(dst *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, int(x), int(y)-b.Min.Y, clr)
}

// drawTextMiddle left-aligns at x and centers vertically on y.
func drawTextMiddle(dst *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, int(x), int(y)-b.Min.Y-b.Dy()/2, clr)
}

func drawTextCentered(dst *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, int(x)-b.Min.X-b.Dx()/2, int(y)-b.Min.Y-b.Dy()/2, clr)
}
