package config

import "image/color"

// PlayerConfig contains all turtle-related configuration values
type PlayerConfig struct {
	StartX float64
	Width  float64
	Height float64

	// Movement
	JumpSpeed float64 // negative = up

	// Damage
	HurtFrames int

	// Hit-boxes relative to the anchor (board bottom-center)
	HazardBox Rect
	BossBox   Rect
	Collider  Rect // broadphase bounds, must contain every hit-box

	// Ramp contact half-width
	RampReach float64

	// Passed-hazard line: anchor X minus Width*PassLineFactor
	PassLineFactor float64

	// Vertical speed at or below which a hazard can no longer hit (strong launch)
	LaunchImmunitySpeed float64

	// Landing squash
	SquashFrames int
	SquashDepth  float64 // fraction of height lost at touchdown
}

// TrickConfig contains aerial trick tuning
type TrickConfig struct {
	SpinFrames int
	SpinPoints int
	SpinStep   float64 // radians per frame

	FlipFrames int
	FlipPoints int
	FlipStep   float64

	GrabFrames int
	Grabs      map[GrabID]GrabConfig

	// Landing with any of these timers running pays the landing bonus
	LandingCountsGrab bool
}

// GrabConfig describes a named grab
type GrabConfig struct {
	Name   string
	Points int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity         float64
	GroundY         float64
	TacoGravity     float64
	ParticleGravity float64
}

// HazardConfig contains hazard spawning configuration
type HazardConfig struct {
	FirstAt      float64
	SpawnMinX    float64 // added to screen width
	SpawnMaxX    float64
	GroundOffset float64
	Widths       []float64
	Heights      []float64
	SpacingMin   float64
	SpacingMax   float64
	LevelSpacing float64 // spacing shrinks by this per level
	DespawnX     float64
	Knockback    float64
	KeepOnBoss   int
	ConeChance   float64
}

// RampConfig contains ramp spawning configuration
type RampConfig struct {
	FirstAt      float64
	NextLevelAt  float64
	SpawnMinX    float64
	SpawnMaxX    float64
	GroundOffset float64
	Widths       []float64
	Heights      []float64
	SpacingMin   float64
	SpacingMax   float64
	LevelSpacing float64
	DespawnX     float64
	LaunchSpeed  float64 // negative = up
	LevelLaunch  float64 // extra launch per level
	KeepOnBoss   int
}

// BossConfig contains boss behaviour configuration
type BossConfig struct {
	HP            int
	SpawnOffsetX  float64 // added to screen width
	GroundOffset  float64 // subtracted from ground
	LeadX         float64 // distance ahead of the player it settles at
	ApproachScale float64 // fraction of scroll speed
	MaxApproach   float64
	HoverFreq     float64
	HoverAmp      float64
	ContactPush   float64
	HitFlash      int
	TouchBox      Rect // vs player
	TacoBox       Rect // vs tacos
	Collider      Rect
}

// TacoConfig contains projectile configuration
type TacoConfig struct {
	Cooldown int
	OffsetX  float64
	OffsetY  float64
	SpeedX   float64
	SpeedY   float64
	SpinStep float64
	Box      Rect
	MaxXPad  float64 // despawn beyond screen width + pad
	MaxYPad  float64
}

// ParticleConfig contains spark burst configuration
type ParticleConfig struct {
	MinVX, MaxVX     float64
	MinVY, MaxVY     float64
	MinLife, MaxLife int
	MinSize, MaxSize float64
}

// SessionConfig contains run and level progression values
type SessionConfig struct {
	StartLives    int
	StartSpeed    float64
	StartTarget   float64
	TargetStep    float64
	SpeedStep     float64
	ClearMessage  int // frames the level-clear banner holds
	BgShiftFactor float64
	StripePeriod  float64
}

// ScoreConfig contains point values
type ScoreConfig struct {
	LandingBonus int
	HazardPassed int
	RampLaunch   int
	BossClear    int
}

// SparkConfig contains burst sizes and colors per event
type SparkConfig struct {
	LandingCount   int
	LandingColor   color.RGBA
	HitCount       int
	HitColor       color.RGBA
	RampCount      int
	RampColor      color.RGBA
	GrabCount      int
	GrabColor      color.RGBA
	BossHitCount   int
	BossHitColor   color.RGBA
	BossClearCount int
	BossClearColor color.RGBA
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DamageIntensity  float64
	DamageDuration   int
	BossHitIntensity float64
	BossHitDuration  int
}

// BannerConfig contains the slide-in banner configuration
type BannerConfig struct {
	StartY   float32
	BossY    float32
	ClearY   float32
	Duration float32 // frames
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	PanelColor        color.NRGBA
	TextColor         color.NRGBA
	ComboColor        color.NRGBA
	ProgressBg        color.NRGBA
	ProgressFg        color.NRGBA
	BossBarBg         color.NRGBA
	BossBarFg         color.NRGBA
	PromptBg          color.NRGBA
	PromptText        color.NRGBA
	BossBannerBg      color.NRGBA
	BossBannerText    color.NRGBA
	ClearBannerBg     color.NRGBA
	ClearBannerTxt    color.NRGBA
	GameOverShade     color.NRGBA
	GameOverTitle     color.NRGBA
	Controls          string
	BossMessage       string
	ClearMessage      string
	GameOverTitleText string
	RestartHint       string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// TitleConfig contains the title screen configuration
type TitleConfig struct {
	BackgroundColor color.RGBA
	Title           string
	Subtitle        string
}

// FrogConfig contains the frog loop animation values
type FrogConfig struct {
	StartX      float64
	Speed       float64
	WrapPad     float64
	BounceAmp   float64
	BounceFreq  float64
	PupilAmp    float64
	LegAmp      float64
	LegFreq     float64
	GroundH     float64
	BoardLift   float64
	SkyColor    color.RGBA
	GroundColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle bool  // Skip title and go directly to the runner
	Colliders bool  // Draw resolv colliders
	Seed      int64 // 0 = time based
}

// Rect is an axis-aligned rectangle relative to an anchor point
type Rect struct {
	X, Y, W, H float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Tricks TrickConfig
var Physics PhysicsConfig
var Hazard HazardConfig
var Ramp RampConfig
var Boss BossConfig
var Taco TacoConfig
var Particle ParticleConfig
var Session SessionConfig
var Score ScoreConfig
var Sparks SparkConfig
var ScreenShake ScreenShakeConfig
var Banner BannerConfig
var HUD HUDConfig
var Pause PauseConfig
var Title TitleConfig
var Frog FrogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 226, B: 120, A: 255}
	Coral        = color.RGBA{R: 255, G: 110, B: 90, A: 255}
	Cyan         = color.RGBA{R: 124, G: 233, B: 255, A: 255}
	Mint         = color.RGBA{R: 188, G: 246, B: 204, A: 255}
	Amber        = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	Salmon       = color.RGBA{R: 255, G: 140, B: 110, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1100,
		Height: 620,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:         0.72,
		GroundY:         468,
		TacoGravity:     0.08,
		ParticleGravity: 0.06,
	}

	Player = PlayerConfig{
		StartX:              210,
		Width:               98,
		Height:              78,
		JumpSpeed:           -13.2,
		HurtFrames:          45,
		HazardBox:           Rect{X: -34, Y: -56, W: 64, H: 56},
		BossBox:             Rect{X: -36, Y: -58, W: 68, H: 58},
		Collider:            Rect{X: -40, Y: -60, W: 80, H: 60},
		RampReach:           26,
		PassLineFactor:      0.2,
		LaunchImmunitySpeed: -1,
		SquashFrames:        10,
		SquashDepth:         0.18,
	}

	Tricks = TrickConfig{
		SpinFrames: 18,
		SpinPoints: 60,
		SpinStep:   0.4,
		FlipFrames: 22,
		FlipPoints: 80,
		FlipStep:   0.35,
		GrabFrames: 20,
		Grabs: map[GrabID]GrabConfig{
			GrabNose:  {Name: "Nosegrab", Points: 65},
			GrabMelon: {Name: "Melon", Points: 75},
			GrabJapan: {Name: "Japan", Points: 85},
		},
		LandingCountsGrab: true,
	}

	Hazard = HazardConfig{
		FirstAt:      320,
		SpawnMinX:    80,
		SpawnMaxX:    240,
		GroundOffset: 2,
		Widths:       []float64{38, 44, 52},
		Heights:      []float64{44, 58, 70},
		SpacingMin:   260,
		SpacingMax:   420,
		LevelSpacing: 10,
		DespawnX:     -120,
		Knockback:    70,
		KeepOnBoss:   2,
		ConeChance:   0.5,
	}

	Ramp = RampConfig{
		FirstAt:      740,
		NextLevelAt:  700,
		SpawnMinX:    120,
		SpawnMaxX:    240,
		GroundOffset: 6,
		Widths:       []float64{90, 110},
		Heights:      []float64{36, 44},
		SpacingMin:   620,
		SpacingMax:   900,
		LevelSpacing: 10,
		DespawnX:     -120,
		LaunchSpeed:  -14,
		LevelLaunch:  0.25,
		KeepOnBoss:   1,
	}

	Boss = BossConfig{
		HP:            3,
		SpawnOffsetX:  240,
		GroundOffset:  14,
		LeadX:         260,
		ApproachScale: 0.95,
		MaxApproach:   6.5,
		HoverFreq:     0.08,
		HoverAmp:      0.8,
		ContactPush:   60,
		HitFlash:      10,
		TouchBox:      Rect{X: -74, Y: -126, W: 148, H: 126},
		TacoBox:       Rect{X: -78, Y: -124, W: 156, H: 124},
		Collider:      Rect{X: -78, Y: -126, W: 156, H: 126},
	}

	Taco = TacoConfig{
		Cooldown: 18,
		OffsetX:  56,
		OffsetY:  -40,
		SpeedX:   11,
		SpeedY:   -2.6,
		SpinStep: 0.25,
		Box:      Rect{X: -10, Y: -8, W: 20, H: 16},
		MaxXPad:  120,
		MaxYPad:  80,
	}

	Particle = ParticleConfig{
		MinVX: -2.4, MaxVX: 2.4,
		MinVY: -3.4, MaxVY: 0.3,
		MinLife: 18, MaxLife: 38,
		MinSize: 2, MaxSize: 5,
	}

	Session = SessionConfig{
		StartLives:    3,
		StartSpeed:    7,
		StartTarget:   2400,
		TargetStep:    900,
		SpeedStep:     0.8,
		ClearMessage:  140,
		BgShiftFactor: 0.35,
		StripePeriod:  120,
	}

	Score = ScoreConfig{
		LandingBonus: 90,
		HazardPassed: 20,
		RampLaunch:   25,
		BossClear:    500,
	}

	Sparks = SparkConfig{
		LandingCount:   14,
		LandingColor:   Gold,
		HitCount:       18,
		HitColor:       Coral,
		RampCount:      14,
		RampColor:      Cyan,
		GrabCount:      8,
		GrabColor:      Mint,
		BossHitCount:   24,
		BossHitColor:   Amber,
		BossClearCount: 48,
		BossClearColor: Salmon,
	}

	ScreenShake = ScreenShakeConfig{
		DamageIntensity:  6.0,
		DamageDuration:   12,
		BossHitIntensity: 3.0,
		BossHitDuration:  6,
	}

	Banner = BannerConfig{
		StartY:   -60,
		BossY:    90,
		ClearY:   88,
		Duration: 30,
	}

	HUD = HUDConfig{
		PanelColor:        color.NRGBA{R: 23, G: 28, B: 46, A: 196},
		TextColor:         color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		ComboColor:        color.NRGBA{R: 255, G: 226, B: 153, A: 255},
		ProgressBg:        color.NRGBA{R: 255, G: 255, B: 255, A: 60},
		ProgressFg:        color.NRGBA{R: 118, G: 232, B: 255, A: 255},
		BossBarBg:         color.NRGBA{R: 36, G: 40, B: 58, A: 210},
		BossBarFg:         color.NRGBA{R: 255, G: 108, B: 111, A: 255},
		PromptBg:          color.NRGBA{R: 255, G: 255, B: 255, A: 235},
		PromptText:        color.NRGBA{R: 36, G: 42, B: 66, A: 255},
		BossBannerBg:      color.NRGBA{R: 255, G: 135, B: 124, A: 230},
		BossBannerText:    color.NRGBA{R: 45, G: 24, B: 36, A: 255},
		ClearBannerBg:     color.NRGBA{R: 120, G: 255, B: 187, A: 220},
		ClearBannerTxt:    color.NRGBA{R: 31, G: 58, B: 48, A: 255},
		GameOverShade:     color.NRGBA{R: 10, G: 12, B: 18, A: 190},
		GameOverTitle:     color.NRGBA{R: 255, G: 185, B: 190, A: 255},
		Controls:          "Space Jump | Q Spin | W Flip | A Nosegrab | S Melon | D Japan | F Throw Taco (Boss) | Esc Pause",
		BossMessage:       "Boss chase! Hit with 3 tacos.",
		ClearMessage:      "Boss defeated. Next city block loading...",
		GameOverTitleText: "GAME OVER",
		RestartHint:       "Press R to restart",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Title Screen"},
	}

	Title = TitleConfig{
		BackgroundColor: color.RGBA{R: 124, G: 170, B: 255, A: 255},
		Title:           "SKATE TURTLE",
		Subtitle:        "Pick a ride",
	}

	Frog = FrogConfig{
		StartX:      50,
		Speed:       3,
		WrapPad:     100,
		BounceAmp:   10,
		BounceFreq:  0.05,
		PupilAmp:    2,
		LegAmp:      3,
		LegFreq:     0.1,
		GroundH:     100,
		BoardLift:   150,
		SkyColor:    color.RGBA{R: 135, G: 206, B: 235, A: 255},
		GroundColor: color.RGBA{R: 34, G: 139, B: 34, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipTitle: false,
		Colliders: false,
	}
}
