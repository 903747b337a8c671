package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fillEllipse fills an axis-aligned ellipse of size w x h centered at (cx, cy), one row at a time.
func fillEllipse(dst *ebiten.Image, cx, cy, w, h float64, clr color.Color) {
	rx, ry := w/2, h/2
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := math.Floor(cy - ry); y < cy+ry; y++ {
		dy := (y + 0.5 - cy) / ry
		if dy*dy >= 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		vector.FillRect(dst, float32(cx-half), float32(y), float32(2*half), 1, clr, true)
	}
}

// fillRoundRect fills a rectangle whose corners are rounded by r.
func fillRoundRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
		return
	}
	for row := math.Floor(y); row < y+h; row++ {
		inset := 0.0
		mid := row + 0.5
		if d := y + r - mid; d > 0 {
			inset = r - math.Sqrt(math.Max(0, r*r-d*d))
		} else if d := mid - (y + h - r); d > 0 {
			inset = r - math.Sqrt(math.Max(0, r*r-d*d))
		}
		vector.FillRect(dst, float32(x+inset), float32(row), float32(w-2*inset), 1, clr, true)
	}
}

// fillTopRoundRect rounds only the top corners.
func fillTopRoundRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	r = math.Min(r, math.Min(w, h)/2)
	for row := math.Floor(y); row < y+h; row++ {
		inset := 0.0
		if d := y + r - (row + 0.5); d > 0 {
			inset = r - math.Sqrt(math.Max(0, r*r-d*d))
		}
		vector.FillRect(dst, float32(x+inset), float32(row), float32(w-2*inset), 1, clr, true)
	}
}

// fillPolygon fills a convex polygon by scanning rows between its edges.
func fillPolygon(dst *ebiten.Image, clr color.Color, pts ...[2]float64) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0][1], pts[0][1]
	for _, p := range pts[1:] {
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}
	for y := math.Floor(minY); y < maxY; y++ {
		mid := y + 0.5
		left, right := math.Inf(1), math.Inf(-1)
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a[1] <= mid && b[1] > mid) || (b[1] <= mid && a[1] > mid) {
				x := a[0] + (mid-a[1])/(b[1]-a[1])*(b[0]-a[0])
				left = math.Min(left, x)
				right = math.Max(right, x)
			}
		}
		if left < right {
			vector.FillRect(dst, float32(left), float32(y), float32(right-left), 1, clr, true)
		}
	}
}

// strokeArc strokes part of an ellipse from angle start to end (radians, clockwise in screen space).
func strokeArc(dst *ebiten.Image, cx, cy, w, h, start, end, width float64, clr color.Color) {
	const steps = 24
	rx, ry := w/2, h/2
	px, py := cx+rx*math.Cos(start), cy+ry*math.Sin(start)
	for i := 1; i <= steps; i++ {
		a := start + (end-start)*float64(i)/steps
		x, y := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), float32(width), clr, true)
		px, py = x, y
	}
}

// fillHalfEllipse fills the upper half of an ellipse, the shape of a taco shell.
func fillHalfEllipse(dst *ebiten.Image, cx, cy, w, h float64, clr color.Color) {
	rx, ry := w/2, h/2
	for y := math.Floor(cy - ry); y < cy; y++ {
		dy := (y + 0.5 - cy) / ry
		if dy*dy >= 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		vector.FillRect(dst, float32(cx-half), float32(y), float32(2*half), 1, clr, true)
	}
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// color.RGBA is alpha-premultiplied
	f := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: a,
	}
}
