package systems

import (
	"testing"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi/features/math"
)

func TestOverlaps(t *testing.T) {
	box := cfg.Rect{X: 0, Y: -10, W: 10, H: 10}
	tests := []struct {
		name string
		b    math.Vec2
		want bool
	}{
		{"same spot", math.NewVec2(0, 0), true},
		{"partial", math.NewVec2(5, -5), true},
		{"touching right edge", math.NewVec2(10, 0), false},
		{"touching top edge", math.NewVec2(0, -10), false},
		{"apart", math.NewVec2(40, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(math.NewVec2(0, 0), box, tt.b, box); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHazardHitCostsLife(t *testing.T) {
	r := newRunner(t, 1).quiet()
	hazard := r.hazardOnPlayer()
	startX := components.Position.Get(hazard).X

	r.step(1)

	p, s := r.player()
	if s.Lives != cfg.Session.StartLives-1 {
		t.Fatalf("Expected %d lives after a hit, got %d", cfg.Session.StartLives-1, s.Lives)
	}
	if p.HurtTimer != cfg.Player.HurtFrames {
		t.Errorf("Expected hurt timer %d, got %d", cfg.Player.HurtFrames, p.HurtTimer)
	}
	wantX := startX - s.Speed - cfg.Hazard.Knockback
	if got := components.Position.Get(hazard).X; got != wantX {
		t.Errorf("Expected hazard knocked back to %.1f, got %.1f", wantX, got)
	}
	if !hasSound(DrainSFX(r.e), cfg.SoundHit) {
		t.Error("Expected hit sound")
	}
	if cam, ok := components.Camera.First(r.e.World); !ok || !cam.HasComponent(components.ScreenShake) {
		t.Error("Expected the hit to shake the camera")
	}
	if n := count(r.e, tags.Particle); n == 0 {
		t.Error("Expected hit sparks")
	}
}

func TestHurtTurtleIsInvulnerable(t *testing.T) {
	r := newRunner(t, 1).quiet()
	r.hazardOnPlayer()
	r.step(1)

	r.hazardOnPlayer()
	r.step(1)

	if _, s := r.player(); s.Lives != cfg.Session.StartLives-1 {
		t.Errorf("Expected a single life lost while hurt, got %d lives", s.Lives)
	}
}

func TestRisingTurtleIsNotHit(t *testing.T) {
	r := newRunner(t, 1).quiet()
	entry, _ := playerEntry(r.e)
	components.Velocity.Get(entry).Y = -8
	components.Player.Get(entry).Grounded = false

	r.hazardOnPlayer()
	r.step(1)

	if _, s := r.player(); s.Lives != cfg.Session.StartLives {
		t.Errorf("Expected no damage while launching upward, got %d lives", s.Lives)
	}
}

func TestHazardPassedOnce(t *testing.T) {
	r := newRunner(t, 1).quiet()
	factory.CreateHazard(r.e, cfg.Player.StartX+200, cfg.Physics.GroundY+cfg.Hazard.GroundOffset, 38, 44, cfg.HazardBarrier)

	// Keep the turtle invulnerable while the hazard scrolls through it
	entry, _ := playerEntry(r.e)
	for i := 0; i < 120; i++ {
		components.Player.Get(entry).HurtTimer = 10
		r.step(1)
	}

	if _, s := r.player(); s.Score != cfg.Score.HazardPassed {
		t.Errorf("Expected pass bonus %d exactly once, got score %d", cfg.Score.HazardPassed, s.Score)
	}
}

func TestHazardDespawnsOffScreen(t *testing.T) {
	r := newRunner(t, 1).quiet()
	factory.CreateHazard(r.e, cfg.Hazard.DespawnX+3, cfg.Physics.GroundY, 38, 44, cfg.HazardCone)

	r.step(1)

	if n := count(r.e, tags.Hazard); n != 0 {
		t.Errorf("Expected hazard past the left edge to be removed, %d remain", n)
	}
}

func TestThreeHitsEndTheRun(t *testing.T) {
	r := newRunner(t, 1).quiet()
	entry, _ := playerEntry(r.e)

	for i := 0; i < cfg.Session.StartLives; i++ {
		components.Player.Get(entry).HurtTimer = 0
		r.hazardOnPlayer()
		r.step(1)
	}

	_, s := r.player()
	if s.Lives != 0 {
		t.Fatalf("Expected 0 lives, got %d", s.Lives)
	}
	if s.Mode != cfg.ModeGameOver {
		t.Fatalf("Expected game over, got %v", s.Mode)
	}

	tick, distance := s.Tick, s.Distance
	r.step(20)
	if s.Tick != tick || s.Distance != distance {
		t.Error("Expected the world to freeze after game over")
	}

	score := s.Score
	r.press(cfg.ActionJump)
	r.press(cfg.ActionSpin)
	if p, _ := r.player(); !p.Grounded || p.SpinTimer != 0 || s.Score != score {
		t.Error("Expected gameplay actions to be ignored after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	r := newRunner(t, 1).quiet()
	s := r.session()
	s.Score = 999
	s.Level = 3
	s.Lives = 1
	r.hazardOnPlayer()
	r.step(1)
	if s.Mode != cfg.ModeGameOver {
		t.Fatalf("Expected game over, got %v", s.Mode)
	}

	r.press(cfg.ActionRestart)

	s = r.session()
	if s.Mode != cfg.ModeRunning || s.Level != 1 || s.Lives != cfg.Session.StartLives || s.Score != 0 {
		t.Errorf("Expected a fresh level-one run, got mode %v level %d lives %d score %d",
			s.Mode, s.Level, s.Lives, s.Score)
	}
	for _, c := range []struct {
		name string
		n    int
	}{
		{"hazards", count(r.e, tags.Hazard)},
		{"ramps", count(r.e, tags.Ramp)},
		{"tacos", count(r.e, tags.Taco)},
		{"particles", count(r.e, tags.Particle)},
	} {
		if c.n != 0 {
			t.Errorf("Expected no %s after restart, got %d", c.name, c.n)
		}
	}
	if track := GetTrack(r.e); track.NextHazardAt != cfg.Hazard.FirstAt || track.NextRampAt != cfg.Ramp.FirstAt {
		t.Errorf("Expected spawn thresholds %.0f/%.0f, got %.0f/%.0f",
			cfg.Hazard.FirstAt, cfg.Ramp.FirstAt, track.NextHazardAt, track.NextRampAt)
	}
	if b := r.boss(); b.Active || b.HP != cfg.Boss.HP {
		t.Errorf("Expected an inactive full-health boss, got active=%v hp=%d", b.Active, b.HP)
	}
}
