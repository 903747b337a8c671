package systems

import (
	"testing"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestLandingPaysBonus(t *testing.T) {
	tests := []struct {
		name   string
		player components.PlayerData
		want   bool
	}{
		{"no tricks", components.PlayerData{}, false},
		{"spin running", components.PlayerData{SpinTimer: 1}, true},
		{"flip running", components.PlayerData{FlipTimer: 12}, true},
		{"grab running", components.PlayerData{GrabTimer: 3}, cfg.Tricks.LandingCountsGrab},
		{"hurt only", components.PlayerData{HurtTimer: 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := landingPaysBonus(&tt.player); got != tt.want {
				t.Errorf("landingPaysBonus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLandingClearsTricks(t *testing.T) {
	r := newRunner(t, 1).quiet()
	r.press(cfg.ActionJump)
	r.step(28)
	r.press(cfg.ActionFlip)
	r.step(1)
	r.press(cfg.ActionGrabJapan)
	DrainSFX(r.e)
	r.stepUntilGrounded(60)

	p, s := r.player()
	if p.SpinTimer != 0 || p.FlipTimer != 0 || p.GrabTimer != 0 || p.GrabName != "" {
		t.Errorf("Expected trick state cleared on landing, got %+v", *p)
	}
	want := cfg.Tricks.FlipPoints + cfg.Tricks.Grabs[cfg.GrabJapan].Points + cfg.Score.LandingBonus
	if s.Score != want {
		t.Errorf("Expected score %d, got %d", want, s.Score)
	}
	if p.LandedTick != s.Tick {
		t.Errorf("Expected landing tick %d, got %d", s.Tick, p.LandedTick)
	}
	if got := TakeSnapshot(r.e).Player.Squash; got != 1 {
		t.Errorf("Expected full squash at touchdown, got %.2f", got)
	}
	if !hasSound(DrainSFX(r.e), cfg.SoundLand) {
		t.Error("Expected landing sound")
	}
}

func TestTrickTimersTurnBoard(t *testing.T) {
	r := newRunner(t, 1).quiet()
	r.press(cfg.ActionJump)
	r.press(cfg.ActionSpin, cfg.ActionFlip)

	p, _ := r.player()
	if p.SpinTimer != cfg.Tricks.SpinFrames-1 || p.FlipTimer != cfg.Tricks.FlipFrames-1 {
		t.Errorf("Expected timers to tick once, got spin %d flip %d", p.SpinTimer, p.FlipTimer)
	}
	if p.SpinAngle != cfg.Tricks.SpinStep || p.FlipAngle != cfg.Tricks.FlipStep {
		t.Errorf("Expected board to turn one step, got spin %.2f flip %.2f", p.SpinAngle, p.FlipAngle)
	}
}

func TestRampLaunchesTurtle(t *testing.T) {
	r := newRunner(t, 1).quiet()
	factory.CreateRamp(r.e, cfg.Player.StartX-30, cfg.Physics.GroundY+cfg.Ramp.GroundOffset, 110, 44)

	r.step(1)

	p, s := r.player()
	if p.Grounded {
		t.Fatal("Expected the ramp to launch the turtle")
	}
	entry, _ := playerEntry(r.e)
	want := cfg.Ramp.LaunchSpeed - float64(s.Level)*cfg.Ramp.LevelLaunch
	if vy := components.Velocity.Get(entry).Y; vy != want {
		t.Errorf("Expected launch speed %.2f, got %.2f", want, vy)
	}
	if s.Score != cfg.Score.RampLaunch {
		t.Errorf("Expected ramp bonus %d, got %d", cfg.Score.RampLaunch, s.Score)
	}

	// Airborne turtles are not relaunched
	r.step(1)
	if _, s := r.player(); s.Score != cfg.Score.RampLaunch {
		t.Errorf("Expected a single launch, score %d", s.Score)
	}
}

func TestRampOutOfReachDoesNothing(t *testing.T) {
	r := newRunner(t, 1).quiet()
	factory.CreateRamp(r.e, cfg.Player.StartX+200, cfg.Physics.GroundY+cfg.Ramp.GroundOffset, 90, 36)

	r.step(1)

	if p, _ := r.player(); !p.Grounded {
		t.Error("Expected a distant ramp to leave the turtle grounded")
	}
}

func TestParticlesExpire(t *testing.T) {
	r := newRunner(t, 1).quiet()
	factory.SpawnSparks(r.e, 300, 300, cfg.Sparks.LandingColor, 12)
	if n := count(r.e, tags.Particle); n != 12 {
		t.Fatalf("Expected 12 particles, got %d", n)
	}

	r.step(cfg.Particle.MaxLife)

	if n := count(r.e, tags.Particle); n != 0 {
		t.Errorf("Expected every particle to expire within %d frames, %d left", cfg.Particle.MaxLife, n)
	}
}

func TestSFXQueueDedupesAndCaps(t *testing.T) {
	r := newRunner(t, 1)
	PlaySFX(r.e, cfg.SoundJump)
	PlaySFX(r.e, cfg.SoundJump)
	for _, id := range []cfg.SoundID{cfg.SoundLand, cfg.SoundRamp, cfg.SoundTrick, cfg.SoundGrab, cfg.SoundHit} {
		PlaySFX(r.e, id)
	}

	got := DrainSFX(r.e)
	if len(got) != cfg.Audio.MaxSFXPerFrame {
		t.Errorf("Expected %d queued sounds, got %d", cfg.Audio.MaxSFXPerFrame, len(got))
	}
	if got[0] != cfg.SoundJump || got[1] != cfg.SoundLand {
		t.Errorf("Expected duplicate jump to be dropped, got %v", got)
	}
	if again := DrainSFX(r.e); len(again) != 0 {
		t.Errorf("Expected an empty queue after draining, got %v", again)
	}
}

func TestSFXVolumeAppliesToNewWorlds(t *testing.T) {
	defer SetSFXVolume(cfg.Audio.DefaultSFXVol)

	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"quiet", 0.25, 0.25},
		{"above max", 3, 1},
		{"below zero", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetSFXVolume(tt.volume)
			r := newRunner(t, 1)
			if got := GetOrCreateAudio(r.e).SFXVolume; got != tt.want {
				t.Errorf("Expected volume %.2f, got %.2f", tt.want, got)
			}
		})
	}
}

func TestLandingSquashEases(t *testing.T) {
	r := newRunner(t, 1).quiet()
	if got := TakeSnapshot(r.e).Player.Squash; got != 0 {
		t.Fatalf("Expected no squash before the first landing, got %.2f", got)
	}

	r.press(cfg.ActionJump)
	r.stepUntilGrounded(60)
	if got := TakeSnapshot(r.e).Player.Squash; got != 1 {
		t.Errorf("Expected full squash at touchdown, got %.2f", got)
	}

	half := cfg.Player.SquashFrames / 2
	r.step(half)
	want := 1 - float64(half)/float64(cfg.Player.SquashFrames)
	if got := TakeSnapshot(r.e).Player.Squash; got != want {
		t.Errorf("Expected squash %.2f after %d frames, got %.2f", want, half, got)
	}

	r.step(cfg.Player.SquashFrames)
	if got := TakeSnapshot(r.e).Player.Squash; got != 0 {
		t.Errorf("Expected squash to settle, got %.2f", got)
	}
}

func TestTacoDespawnsOffScreen(t *testing.T) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)
	tests := []struct {
		name  string
		speed float64
	}{
		{"past the right edge", cfg.Taco.SpeedX},
		{"below the street", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(t, 1).quiet()
			taco := factory.CreateTaco(r.e, cfg.Player.StartX, cfg.Physics.GroundY)
			components.Velocity.Get(taco).X = tt.speed

			for i := 0; i < 400; i++ {
				pos := *components.Position.Get(taco)
				vel := *components.Velocity.Get(taco)
				r.step(1)
				if count(r.e, tags.Taco) > 0 {
					continue
				}
				x, y := pos.X+vel.X, pos.Y+vel.Y
				if x <= width+cfg.Taco.MaxXPad && y <= height+cfg.Taco.MaxYPad {
					t.Fatalf("Taco removed on screen at (%.1f, %.1f)", x, y)
				}
				return
			}
			t.Fatal("Expected the taco to leave the screen")
		})
	}
}

func TestFrogWraps(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	frog := factory.CreateFrog(e)

	UpdateFrog(e)
	data := components.Frog.Get(frog)
	if data.X != cfg.Frog.StartX+cfg.Frog.Speed || data.Tick != 1 {
		t.Errorf("Expected frog at %.0f on tick 1, got %.0f on tick %d", cfg.Frog.StartX+cfg.Frog.Speed, data.X, data.Tick)
	}

	data.X = float64(cfg.C.Width) + cfg.Frog.WrapPad
	UpdateFrog(e)
	if data.X != -cfg.Frog.WrapPad {
		t.Errorf("Expected frog to wrap to %.0f, got %.0f", -cfg.Frog.WrapPad, data.X)
	}

	f := FrogSnapshot(e)
	if f == nil {
		t.Fatal("Expected a frog frame")
	}
	if f.Bounce < -cfg.Frog.BounceAmp || f.Bounce > cfg.Frog.BounceAmp {
		t.Errorf("Bounce %.2f outside ±%.0f", f.Bounce, cfg.Frog.BounceAmp)
	}
}

func TestFrogSnapshotOutsideFrogWorld(t *testing.T) {
	r := newRunner(t, 1)
	if FrogSnapshot(r.e) != nil {
		t.Error("Expected no frog frame in a runner world")
	}
}
