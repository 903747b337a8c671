package render

import (
	"math"

	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderFrog draws one frame of the frog loop.
func (c *Canvas) RenderFrog(f *snapshot.Frog) {
	if c.screen == nil {
		return
	}
	fc := cfg.Frog
	c.screen.Fill(fc.SkyColor)
	vector.FillRect(c.screen, 0, float32(f.Height-fc.GroundH), float32(f.Width), float32(fc.GroundH), fc.GroundColor, false)

	c.drawFrogBoard(f.X, f.Height-fc.BoardLift+f.Bounce)
	c.drawFrog(f, f.X+35, f.Height-fc.BoardLift-10+f.Bounce)
}

func (c *Canvas) drawFrogBoard(x, y float64) {
	fillRoundRect(c.screen, x, y, 80, 25, 5, frogDeck)
	for i := 0; i < 4; i++ {
		fillEllipse(c.screen, x+15+float64(i)*18, y+12.5, 8, 8, frogDots)
	}

	fillRoundRect(c.screen, x+5, y+20, 15, 15, 3, frogAxle)
	fillRoundRect(c.screen, x+60, y+20, 15, 15, 3, frogAxle)

	for _, wx := range []float64{x + 12.5, x + 72.5} {
		fillEllipse(c.screen, wx, y+27.5, 12, 12, frogWheel)
		fillEllipse(c.screen, wx, y+27.5, 6, 6, frogHub)
	}
}

func (c *Canvas) drawFrog(f *snapshot.Frog, x, y float64) {
	fillEllipse(c.screen, x, y-5, 35, 40, frogBody)
	fillEllipse(c.screen, x, y-25, 30, 30, frogHead)

	fillEllipse(c.screen, x-8, y-32, 8, 12, eyeWhite)
	fillEllipse(c.screen, x+8, y-32, 8, 12, eyeWhite)
	fillEllipse(c.screen, x-8+f.Pupil, y-30, 4, 4, frogPupil)
	fillEllipse(c.screen, x+8+f.Pupil, y-30, 4, 4, frogPupil)

	strokeArc(c.screen, x, y-20, 12, 8, 0, math.Pi, 2, frogPupil)

	legs := f.Legs
	vector.StrokeLine(c.screen, float32(x-10), float32(y+12), float32(x-18), float32(y+18+legs), 3, frogBody, true)
	vector.StrokeLine(c.screen, float32(x+10), float32(y+12), float32(x+18), float32(y+18+legs), 3, frogBody, true)
	fillEllipse(c.screen, x-18, y+20+legs, 8, 6, frogBody)
	fillEllipse(c.screen, x+18, y+20+legs, 8, 6, frogBody)
}
