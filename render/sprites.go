package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// sprite is a pre-drawn image and the pixel that maps to its anchor.
type sprite struct {
	img    *ebiten.Image
	ox, oy float64
}

// bake draws once into an offscreen image. draw receives the anchor position inside it.
func bake(w, h int, ox, oy float64, draw func(dst *ebiten.Image, x, y float64)) *sprite {
	img := ebiten.NewImage(w, h)
	draw(img, ox, oy)
	return &sprite{img: img, ox: ox, oy: oy}
}

type turtleLook struct {
	hurt  bool
	blink bool
}

func bakeTurtle(look turtleLook) *sprite {
	return bake(140, 150, 70, 104, func(dst *ebiten.Image, x, y float64) {
		// Board
		fillEllipse(dst, x-40, y+28, 30, 30, wheel)
		fillEllipse(dst, x+40, y+28, 30, 30, wheel)
		deckColor := deck
		if look.hurt {
			deckColor = deckHurt
		}
		fillRoundRect(dst, x-64, y+10, 128, 16, 10, deckColor)
		fillEllipse(dst, x-40, y+28, 10, 10, hub)
		fillEllipse(dst, x+40, y+28, 10, 10, hub)

		// Turtle sits 42px above the board anchor
		by := y - 42
		outlined := func(cx, cy, w, h float64, fill color.Color) {
			fillEllipse(dst, cx, cy, w+3, h+3, shellOutline)
			fillEllipse(dst, cx, cy, w-3, h-3, fill)
		}
		outlined(x, by, 102, 78, shell)
		outlined(x, by-3, 72, 50, shellTop)
		outlined(x-26, by-40, 30, 30, shell)
		outlined(x+26, by-40, 30, 30, shell)
		outlined(x-26, by-40, 14, 14, eyeWhite)
		outlined(x+26, by-40, 14, 14, eyeWhite)

		pw, ph := 6.0, 6.0
		if look.blink {
			pw, ph = 11, 2
		}
		fillEllipse(dst, x-26, by-40, pw, ph, pupil)
		fillEllipse(dst, x+26, by-40, pw, ph, pupil)

		strokeArc(dst, x, by-10, 30, 16, 0.2, math.Pi-0.2, 3, shellOutline)

		fillEllipse(dst, x-36, by+8, 24, 18, feet)
		fillEllipse(dst, x+36, by+8, 24, 18, feet)
	})
}

func bakeBoss(flash bool) *sprite {
	return bake(160, 140, 80, 130, func(dst *ebiten.Image, x, y float64) {
		body := bossBody
		if flash {
			body = bossFlash
		}
		fillRoundRect(dst, x-68, y-110, 136, 108, 18, body)
		fillRoundRect(dst, x-50, y-124, 100, 30, 14, bossHood)

		fillEllipse(dst, x-22, y-76, 20, 20, eyeWhite)
		fillEllipse(dst, x+22, y-76, 20, 20, eyeWhite)
		fillEllipse(dst, x-22, y-76, 8, 8, bossPupil)
		fillEllipse(dst, x+22, y-76, 8, 8, bossPupil)

		fillPolygon(dst, bossMouth, [2]float64{x - 16, y - 52}, [2]float64{x + 16, y - 52}, [2]float64{x, y - 28})
		fillRoundRect(dst, x-74, y-2, 148, 12, 6, bossBelt)

		strokeArc(dst, x, y-60, 96, 44, math.Pi+0.2, 2*math.Pi-0.2, 3, bossBrow)
	})
}

func bakeTaco() *sprite {
	return bake(26, 14, 13, 11, func(dst *ebiten.Image, x, y float64) {
		fillHalfEllipse(dst, x, y, 22, 18, tacoShell)
		fillEllipse(dst, x, y-2, 12, 4, tacoLettuce)
		vector.FillCircle(dst, float32(x-4), float32(y-3), 2, tacoTomato, true)
		vector.FillCircle(dst, float32(x+4), float32(y-3), 2, tacoTomato, true)
	})
}

// bakeSky renders the vertical dusk gradient.
func bakeSky(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		c := rgb(
			lerp8(skyTop.R, skyBottom.R, t),
			lerp8(skyTop.G, skyBottom.G, t),
			lerp8(skyTop.B, skyBottom.B, t),
		)
		vector.FillRect(img, 0, float32(y), float32(w), 1, c, false)
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// draw places s with its anchor at (x, y), after scaling and then rotating about the anchor.
func (s *sprite) draw(dst *ebiten.Image, x, y, sx, sy, rotation float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.ox, -s.oy)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	dst.DrawImage(s.img, op)
}
