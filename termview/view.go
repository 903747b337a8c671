// Package termview draws runner frames as character cells on a tcell screen.
package termview

import (
	"fmt"
	"math"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/gdamore/tcell/v2"
)

var (
	styleSky     = tcell.StyleDefault.Background(tcell.NewRGBColor(124, 170, 255))
	styleRoad    = tcell.StyleDefault.Background(tcell.NewRGBColor(33, 37, 56)).Foreground(tcell.NewRGBColor(255, 214, 121))
	styleCurb    = tcell.StyleDefault.Background(tcell.NewRGBColor(50, 56, 80))
	styleCone    = styleSky.Foreground(tcell.NewRGBColor(255, 122, 80)).Bold(true)
	styleBarrier = styleSky.Foreground(tcell.NewRGBColor(208, 102, 94)).Bold(true)
	styleRamp    = styleSky.Foreground(tcell.NewRGBColor(104, 94, 132)).Bold(true)
	styleTurtle  = styleSky.Foreground(tcell.NewRGBColor(38, 120, 70)).Bold(true)
	styleHurt    = styleSky.Foreground(tcell.NewRGBColor(255, 146, 138)).Bold(true)
	styleBoss    = styleSky.Foreground(tcell.NewRGBColor(124, 72, 92)).Bold(true)
	styleFlash   = styleSky.Foreground(tcell.NewRGBColor(255, 180, 168)).Bold(true)
	styleTaco    = styleSky.Foreground(tcell.NewRGBColor(255, 206, 112))
	styleHUD     = tcell.StyleDefault.Background(tcell.NewRGBColor(23, 28, 46)).Foreground(tcell.ColorWhite)
	styleCombo   = styleHUD.Foreground(tcell.NewRGBColor(255, 226, 153))
	styleBar     = styleHUD.Foreground(tcell.NewRGBColor(118, 232, 255))
	stylePrompt  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(36, 42, 66))
	styleBossMsg = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 135, 124)).Foreground(tcell.NewRGBColor(45, 24, 36))
	styleClear   = tcell.StyleDefault.Background(tcell.NewRGBColor(120, 255, 187)).Foreground(tcell.NewRGBColor(31, 58, 48))
	styleOver    = tcell.StyleDefault.Background(tcell.NewRGBColor(10, 12, 18)).Foreground(tcell.NewRGBColor(255, 185, 190)).Bold(true)
)

// View is a snapshot.Renderer that maps world pixels onto the terminal grid.
type View struct {
	screen tcell.Screen
}

var _ snapshot.Renderer = (*View)(nil)

func New(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// cell converts a world position to a terminal cell.
func (v *View) cell(x, y float64) (int, int) {
	cols, rows := v.screen.Size()
	cx := int(math.Floor(x / float64(cfg.C.Width) * float64(cols)))
	cy := int(math.Floor(y / float64(cfg.C.Height) * float64(rows)))
	return cx, cy
}

func (v *View) Render(f *snapshot.Frame) {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	v.drawStreet(f, cols, rows)
	v.drawRamps(f)
	v.drawHazards(f)
	v.drawBoss(f)
	v.drawTacos(f)
	v.drawPlayer(f)
	v.drawParticles(f)
	v.drawHUD(f, cols)
	v.drawPrompts(f, cols, rows)
	v.screen.Show()
}

func (v *View) drawStreet(f *snapshot.Frame, cols, rows int) {
	_, curbY := v.cell(0, cfg.Physics.GroundY)
	_, stripeY := v.cell(0, cfg.Physics.GroundY+40)
	stripeShift, _ := v.cell(f.StripeOffset, 0)
	stripeEvery, _ := v.cell(120, 0)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			switch {
			case y < curbY:
				v.screen.SetContent(x, y, ' ', nil, styleSky)
			case y == curbY:
				v.screen.SetContent(x, y, ' ', nil, styleCurb)
			case y == stripeY && stripeEvery > 0 && ((x-stripeShift)%stripeEvery+stripeEvery)%stripeEvery < stripeEvery/2:
				v.screen.SetContent(x, y, '=', nil, styleRoad)
			default:
				v.screen.SetContent(x, y, ' ', nil, styleRoad)
			}
		}
	}
}

// fillBox fills the cells covered by a world rectangle.
func (v *View) fillBox(x, y, w, h float64, r rune, style tcell.Style) {
	x0, y0 := v.cell(x, y)
	x1, y1 := v.cell(x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			v.put(cx, cy, r, style)
		}
	}
}

// put writes one cell, ignoring anything off screen.
func (v *View) put(x, y int, r rune, style tcell.Style) {
	cols, rows := v.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.put(x+i, y, r, style)
	}
}

func (v *View) centered(y int, s string, style tcell.Style) {
	cols, _ := v.screen.Size()
	v.text((cols-len([]rune(s)))/2, y, s, style)
}

func (v *View) drawRamps(f *snapshot.Frame) {
	for _, r := range f.Ramps {
		v.fillBox(r.X+f.CameraX, r.Y-r.H+f.CameraY, r.W, r.H, '/', styleRamp)
	}
}

func (v *View) drawHazards(f *snapshot.Frame) {
	for _, o := range f.Hazards {
		if o.Kind == cfg.HazardCone {
			v.fillBox(o.X+f.CameraX, o.Y-o.H+f.CameraY, o.W, o.H, 'A', styleCone)
		} else {
			v.fillBox(o.X+f.CameraX, o.Y-o.H+f.CameraY, o.W, o.H, '#', styleBarrier)
		}
	}
}

func (v *View) drawBoss(f *snapshot.Frame) {
	b := f.Boss
	if !b.Active && f.Mode != cfg.ModeLevelClear {
		return
	}
	style := styleBoss
	if b.HitFlash > 0 {
		style = styleFlash
	}
	v.fillBox(b.X-68+f.CameraX, b.Y-124+f.CameraY, 136, 124, 'B', style)
}

func (v *View) drawTacos(f *snapshot.Frame) {
	for _, t := range f.Tacos {
		x, y := v.cell(t.X+f.CameraX, t.Y+f.CameraY)
		v.put(x, y, 'v', styleTaco)
	}
}

func (v *View) drawPlayer(f *snapshot.Frame) {
	p := f.Player
	style := styleTurtle
	if p.HurtTimer > 0 {
		style = styleHurt
	}
	r := '@'
	switch {
	case p.Spinning:
		r = []rune(`|/-\`)[int(math.Abs(p.SpinAngle)/(math.Pi/4))%4]
	case p.Flipping:
		r = 'O'
	}
	v.fillBox(p.X-50+f.CameraX, p.Y-80+f.CameraY, 100, 80, r, style)
	v.fillBox(p.X-64+f.CameraX, p.Y+10+f.CameraY, 128, 16, '_', style)

	if p.GrabTimer > 0 && p.GrabName != "" {
		x, y := v.cell(p.X-44+f.CameraX, p.Y-130+f.CameraY)
		v.text(x, y, p.GrabName, stylePrompt)
	}
}

func (v *View) drawParticles(f *snapshot.Frame) {
	for _, p := range f.Particles {
		x, y := v.cell(p.X+f.CameraX, p.Y+f.CameraY)
		fg := tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B))
		v.put(x, y, '*', styleSky.Foreground(fg))
	}
}

func (v *View) drawHUD(f *snapshot.Frame, cols int) {
	for x := 0; x < cols; x++ {
		v.put(x, 0, ' ', styleHUD)
	}
	status := fmt.Sprintf(" Level: %d  Score: %d  Lives: %d ", f.Level, f.Score, f.Lives)
	v.text(0, 0, status, styleHUD)
	combo := fmt.Sprintf("Combo: x%d ", f.ComboMultiplier())
	v.text(len(status), 0, combo, styleCombo)

	label := "Distance "
	if f.Mode == cfg.ModeBossChase {
		label = fmt.Sprintf("Boss HP %d/%d ", f.Boss.HP, f.Boss.MaxHP)
	}
	barX := len(status) + len(combo)
	v.text(barX, 0, label, styleHUD)
	barX += len(label)

	const barW = 20
	filled := int(math.Round(f.Progress() * barW))
	for i := 0; i < barW; i++ {
		r := '.'
		if i < filled {
			r = '#'
		}
		v.put(barX+i, 0, r, styleBar)
	}
}

func (v *View) drawPrompts(f *snapshot.Frame, cols, rows int) {
	for x := 0; x < cols; x++ {
		v.put(x, rows-1, ' ', stylePrompt)
	}
	v.text(1, rows-1, cfg.HUD.Controls, stylePrompt)

	if f.Banner.Visible {
		_, y := v.cell(0, f.Banner.Y+21)
		style := styleBossMsg
		if f.Mode == cfg.ModeLevelClear {
			style = styleClear
		}
		v.centered(y, " "+f.Banner.Text+" ", style)
	}

	if f.Mode == cfg.ModeGameOver {
		_, ty := v.cell(0, float64(cfg.C.Height)*0.42)
		_, hy := v.cell(0, float64(cfg.C.Height)*0.52)
		v.centered(ty, " "+cfg.HUD.GameOverTitleText+" ", styleOver)
		v.centered(hy, " "+cfg.HUD.RestartHint+" ", styleOver)
	}

	if f.Paused {
		v.centered(rows/2, " PAUSED  Esc to resume ", styleOver)
	}
}
