// Package snapshot holds the read-only view of a frame that renderers draw from.
package snapshot

import (
	"image/color"

	cfg "github.com/automoto/skateturtle/config"
)

// Renderer draws a frame. It must not keep f or mutate it.
type Renderer interface {
	Render(f *Frame)
}

// Frame is everything needed to draw one runner frame.
type Frame struct {
	Mode         cfg.GameMode
	Level        int
	Score        int
	Combo        int
	Lives        int
	Distance     float64
	Target       float64
	Speed        float64
	MessageTimer int
	Tick         int

	BgShift      float64
	StripeOffset float64
	CameraX      float64
	CameraY      float64

	Player    Player
	Boss      Boss
	Hazards   []Hazard
	Ramps     []Ramp
	Tacos     []Taco
	Particles []Particle
	Banner    Banner
	Paused    bool
}

// Progress is the distance travelled toward the boss, clamped to [0, 1].
func (f *Frame) Progress() float64 {
	if f.Target <= 0 {
		return 1
	}
	p := f.Distance / f.Target
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ComboMultiplier is the combo as displayed, never below one.
func (f *Frame) ComboMultiplier() int {
	if f.Combo < 1 {
		return 1
	}
	return f.Combo
}

type Player struct {
	X, Y      float64
	W, H      float64
	Grounded  bool
	Spinning  bool
	Flipping  bool
	SpinAngle float64
	FlipAngle float64
	GrabName  string
	GrabTimer int
	HurtTimer int
	Squash    float64 // 1 at touchdown, easing to 0
}

type Boss struct {
	Active   bool
	X, Y     float64
	HP       int
	MaxHP    int
	HitFlash int
}

type Hazard struct {
	X, Y float64
	W, H float64
	Kind cfg.HazardKind
}

type Ramp struct {
	X, Y float64
	W, H float64
}

type Taco struct {
	X, Y     float64
	Rotation float64
}

type Particle struct {
	X, Y  float64
	Size  float64
	Life  int
	Color color.RGBA
}

// Banner is the slide-in message shown on boss start and level clear.
type Banner struct {
	Visible bool
	Y       float64
	Text    string
}

// Frog is one frame of the frog loop.
type Frog struct {
	X      float64
	Bounce float64
	Pupil  float64
	Legs   float64
	Width  float64
	Height float64
}

// FrogRenderer draws a frog loop frame.
type FrogRenderer interface {
	RenderFrog(f *Frog)
}
