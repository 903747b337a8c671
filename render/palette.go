package render

import "image/color"

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 255} }

func rgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

// Street scene
var (
	skyTop      = rgb(124, 170, 255)
	skyBottom   = rgb(255, 203, 188)
	farBody     = rgb(66, 86, 146)
	farWindow   = rgba(240, 248, 255, 110)
	nearBody    = rgb(49, 66, 118)
	nearWindow  = rgba(255, 210, 182, 130)
	sunColor    = rgba(255, 235, 196, 220)
	asphalt     = rgb(33, 37, 56)
	curb        = rgb(50, 56, 80)
	laneStripe  = rgb(255, 214, 121)
	roadSheen   = rgba(255, 255, 255, 18)
	coneBody    = rgb(255, 122, 80)
	coneBand    = rgb(255, 230, 214)
	barrierBody = rgb(208, 102, 94)
	barrierBand = rgb(255, 196, 185)
	baseLine    = rgba(30, 28, 40, 130)
	rampBody    = rgb(104, 94, 132)
	rampFace    = rgb(154, 145, 191)
)

// Turtle
var (
	shellOutline = rgb(38, 66, 52)
	shell        = rgb(97, 205, 124)
	shellTop     = rgb(127, 231, 150)
	eyeWhite     = rgb(255, 255, 255)
	pupil        = rgb(34, 42, 37)
	feet         = rgb(85, 182, 110)
	grabTag      = rgba(255, 247, 166, 215)
	grabText     = rgb(48, 55, 81)
	wheel        = rgb(28, 31, 44)
	hub          = rgb(255, 238, 152)
	deck         = rgb(90, 196, 255)
	deckHurt     = rgb(255, 146, 138)
)

// Boss and tacos
var (
	bossBody    = rgb(124, 72, 92)
	bossFlash   = rgb(255, 180, 168)
	bossHood    = rgb(158, 98, 120)
	bossPupil   = rgb(26, 26, 26)
	bossMouth   = rgb(255, 123, 125)
	bossBelt    = rgb(69, 40, 56)
	bossBrow    = rgba(255, 160, 156, 170)
	tacoShell   = rgb(255, 206, 112)
	tacoLettuce = rgb(122, 191, 94)
	tacoTomato  = rgb(204, 84, 73)
)

// Frog loop
var (
	frogDeck  = rgb(220, 20, 60)
	frogDots  = rgb(255, 200, 0)
	frogAxle  = rgb(50, 50, 50)
	frogWheel = rgb(100, 100, 100)
	frogHub   = rgb(200, 200, 200)
	frogBody  = rgb(34, 139, 34)
	frogHead  = rgb(50, 170, 50)
	frogPupil = rgb(0, 0, 0)
)
