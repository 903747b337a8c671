// Package render draws runner and frog loop snapshots onto an ebiten image.
package render

import (
	"image/color"
	"math"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/fonts"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a snapshot.Renderer backed by ebiten. Point it at the frame's
// screen with SetTarget before each Render.
type Canvas struct {
	screen *ebiten.Image

	sky     *ebiten.Image
	turtles map[turtleLook]*sprite
	bosses  map[bool]*sprite
	taco    *sprite
}

var (
	_ snapshot.Renderer     = (*Canvas)(nil)
	_ snapshot.FrogRenderer = (*Canvas)(nil)
)

func NewCanvas() *Canvas {
	return &Canvas{
		turtles: map[turtleLook]*sprite{},
		bosses:  map[bool]*sprite{},
	}
}

func (c *Canvas) SetTarget(screen *ebiten.Image) {
	c.screen = screen
}

// Render draws the frame back to front: sky, street, obstacles, actors, HUD.
func (c *Canvas) Render(f *snapshot.Frame) {
	if c.screen == nil {
		return
	}
	c.drawSkyline(f)
	c.drawRoad(f)
	c.drawRamps(f)
	c.drawHazards(f)
	c.drawBoss(f)
	c.drawTacos(f)
	c.drawPlayer(f)
	c.drawParticles(f)
	c.drawHUD(f)
	c.drawPrompts(f)
}

func (c *Canvas) drawSkyline(f *snapshot.Frame) {
	w, h := cfg.C.Width, cfg.C.Height
	if c.sky == nil {
		c.sky = bakeSky(w, h)
	}
	c.screen.DrawImage(c.sky, nil)

	fh := float64(h)
	c.drawBuildingLayer(fh-300, 320, math.Mod(f.BgShift*0.15, 320), farBody, farWindow)
	c.drawBuildingLayer(fh-252, 260, math.Mod(f.BgShift*0.28, 260), nearBody, nearWindow)

	fillEllipse(c.screen, 920, 110, 130, 130, sunColor)
}

func (c *Canvas) drawBuildingLayer(baseY, step, shift float64, body, window color.Color) {
	for i := -1; i < 6; i++ {
		x := float64(i)*step - shift
		bw := step - 42
		bh := 120 + float64(i%3)*44

		fillTopRoundRect(c.screen, x, baseY-bh, bw, bh, 8, body)
		for wy := baseY - bh + 16; wy < baseY-16; wy += 22 {
			for wx := x + 14; wx < x+bw-14; wx += 24 {
				vector.FillRect(c.screen, float32(wx), float32(wy), 12, 9, window, false)
			}
		}
	}
}

func (c *Canvas) drawRoad(f *snapshot.Frame) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	g := cfg.Physics.GroundY
	ox, oy := f.CameraX, f.CameraY

	vector.FillRect(c.screen, 0, float32(g+12+oy), float32(w), float32(h-(g+12)), asphalt, false)
	vector.FillRect(c.screen, 0, float32(g-4+oy), float32(w), 24, curb, false)

	for x := -120.0; x < w+120; x += 120 {
		fillRoundRect(c.screen, x+f.StripeOffset+ox, g+40+oy, 66, 8, 4, laneStripe)
	}

	vector.FillRect(c.screen, 0, float32(g+12+oy), float32(w), 2, roadSheen, false)
}

func (c *Canvas) drawHazards(f *snapshot.Frame) {
	for _, o := range f.Hazards {
		x, y := o.X+f.CameraX, o.Y+f.CameraY
		if o.Kind == cfg.HazardCone {
			fillPolygon(c.screen, coneBody,
				[2]float64{x + o.W*0.5, y - o.H},
				[2]float64{x + o.W, y},
				[2]float64{x, y},
			)
			fillRoundRect(c.screen, x+8, y-o.H*0.45, o.W-16, 6, 2, coneBand)
		} else {
			fillRoundRect(c.screen, x, y-o.H, o.W, o.H, 5, barrierBody)
			fillRoundRect(c.screen, x+6, y-o.H+10, o.W-12, 8, 2, barrierBand)
			fillRoundRect(c.screen, x+6, y-o.H+24, o.W-12, 8, 2, barrierBand)
		}
		vector.StrokeLine(c.screen, float32(x), float32(y), float32(x+o.W), float32(y), 2, baseLine, true)
	}
}

func (c *Canvas) drawRamps(f *snapshot.Frame) {
	for _, r := range f.Ramps {
		x, y := r.X+f.CameraX, r.Y+f.CameraY
		fillPolygon(c.screen, rampBody,
			[2]float64{x, y},
			[2]float64{x + 14, y - 6},
			[2]float64{x + r.W - 8, y - r.H},
			[2]float64{x + r.W, y},
		)
		fillPolygon(c.screen, rampFace,
			[2]float64{x + 16, y - 8},
			[2]float64{x + r.W - 8, y - r.H},
			[2]float64{x + r.W - 8, y - r.H + 8},
			[2]float64{x + 24, y - 2},
		)
	}
}

func (c *Canvas) drawPlayer(f *snapshot.Frame) {
	p := f.Player
	look := turtleLook{hurt: p.HurtTimer > 0, blink: f.Tick%80 < 6}
	s, ok := c.turtles[look]
	if !ok {
		s = bakeTurtle(look)
		c.turtles[look] = s
	}

	sx, sy, rot := 1.0, 1.0, 0.0
	if p.Squash > 0 {
		d := cfg.Player.SquashDepth * p.Squash
		sx, sy = 1+d/2, 1-d
	}
	if p.Spinning {
		rot = p.SpinAngle
	}
	if p.Flipping {
		sy = math.Cos(p.FlipAngle)
	}
	x, y := p.X+f.CameraX, p.Y+f.CameraY
	s.draw(c.screen, x, y, sx, sy, rot)

	if p.GrabTimer > 0 && p.GrabName != "" {
		fillRoundRect(c.screen, x-44, y-130, 88, 22, 10, grabTag)
		drawTextCentered(c.screen, p.GrabName, fonts.HUDSmall.Get(), x, y-119, grabText)
	}
}

// The boss stays on screen through level-clear so its defeat is visible.
func (c *Canvas) drawBoss(f *snapshot.Frame) {
	b := f.Boss
	if !b.Active && f.Mode != cfg.ModeLevelClear {
		return
	}
	flash := b.HitFlash > 0
	s, ok := c.bosses[flash]
	if !ok {
		s = bakeBoss(flash)
		c.bosses[flash] = s
	}
	s.draw(c.screen, b.X+f.CameraX, b.Y+f.CameraY, 1, 1, 0)
}

func (c *Canvas) drawTacos(f *snapshot.Frame) {
	if c.taco == nil {
		c.taco = bakeTaco()
	}
	for _, t := range f.Tacos {
		c.taco.draw(c.screen, t.X+f.CameraX, t.Y+f.CameraY, 1, 1, t.Rotation)
	}
}

func (c *Canvas) drawParticles(f *snapshot.Frame) {
	maxLife := float64(cfg.Particle.MaxLife)
	for _, p := range f.Particles {
		alpha := math.Max(0, math.Min(230, float64(p.Life)/maxLife*230))
		clr := withAlpha(p.Color, uint8(alpha))
		vector.FillCircle(c.screen, float32(p.X+f.CameraX), float32(p.Y+f.CameraY), float32(p.Size/2), clr, true)
	}
}
