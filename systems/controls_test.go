package systems

import (
	"testing"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/tags"
)

func TestJumpStaysAboveGround(t *testing.T) {
	r := newRunner(t, 1).quiet()

	r.press(cfg.ActionJump)
	p, _ := r.player()
	if p.Grounded {
		t.Fatal("Expected turtle to leave the ground after jumping")
	}
	if !hasSound(DrainSFX(r.e), cfg.SoundJump) {
		t.Error("Expected jump sound to be queued")
	}

	for i := 0; i < 120; i++ {
		r.step(1)
		if y := r.playerY(); y > cfg.Physics.GroundY {
			t.Fatalf("frame %d: turtle y %.2f below ground %.2f", i, y, cfg.Physics.GroundY)
		}
	}
	if p, _ := r.player(); !p.Grounded {
		t.Error("Expected turtle to be back on the ground")
	}
}

func TestJumpIgnoredInAir(t *testing.T) {
	r := newRunner(t, 1).quiet()
	r.press(cfg.ActionJump)
	r.step(5)

	r.press(cfg.ActionJump)

	entry, _ := playerEntry(r.e)
	vy := components.Velocity.Get(entry).Y
	if vy <= cfg.Player.JumpSpeed+cfg.Physics.Gravity {
		t.Errorf("Expected mid-air jump to be ignored, vertical speed was reset to %.2f", vy)
	}
}

func TestTricksRequireAir(t *testing.T) {
	r := newRunner(t, 1).quiet()

	r.press(cfg.ActionSpin, cfg.ActionFlip, cfg.ActionGrabNose)

	p, s := r.player()
	if s.Score != 0 || s.Combo != 0 {
		t.Errorf("Expected grounded tricks to be ignored, got score %d combo %d", s.Score, s.Combo)
	}
	if p.SpinTimer != 0 || p.FlipTimer != 0 || p.GrabTimer != 0 {
		t.Error("Expected no trick timers on the ground")
	}
}

func TestTrickScoring(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		points int
		grab   string
	}{
		{"spin", cfg.ActionSpin, cfg.Tricks.SpinPoints, ""},
		{"flip", cfg.ActionFlip, cfg.Tricks.FlipPoints, ""},
		{"nosegrab", cfg.ActionGrabNose, 65, "Nosegrab"},
		{"melon", cfg.ActionGrabMelon, 75, "Melon"},
		{"japan", cfg.ActionGrabJapan, 85, "Japan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(t, 1).quiet()
			r.press(cfg.ActionJump)
			r.press(tt.action)

			p, s := r.player()
			if s.Score != tt.points {
				t.Errorf("Expected score %d, got %d", tt.points, s.Score)
			}
			if s.Combo != 1 {
				t.Errorf("Expected combo 1, got %d", s.Combo)
			}
			if tt.grab != "" && p.GrabName != tt.grab {
				t.Errorf("Expected grab name %q, got %q", tt.grab, p.GrabName)
			}
		})
	}
}

func TestTrickGuardedByTimer(t *testing.T) {
	r := newRunner(t, 1).quiet()
	r.press(cfg.ActionJump)

	r.press(cfg.ActionSpin)
	r.step(1)
	r.press(cfg.ActionSpin)
	r.step(1)
	r.press(cfg.ActionGrabMelon)
	r.step(1)
	r.press(cfg.ActionGrabJapan)

	_, s := r.player()
	want := cfg.Tricks.SpinPoints + cfg.Tricks.Grabs[cfg.GrabMelon].Points
	if s.Score != want {
		t.Errorf("Expected repeated tricks to be ignored while their timer runs: score %d, got %d", want, s.Score)
	}
	if s.Combo != 2 {
		t.Errorf("Expected combo 2, got %d", s.Combo)
	}
}

func TestLandingBonusPaidOnce(t *testing.T) {
	r := newRunner(t, 1).quiet()
	r.press(cfg.ActionJump)
	// Late in the jump so the spin is still running on touchdown
	r.step(30)
	r.press(cfg.ActionSpin)
	r.stepUntilGrounded(60)

	_, s := r.player()
	want := cfg.Tricks.SpinPoints + cfg.Score.LandingBonus
	if s.Score != want {
		t.Errorf("Expected score %d after landing, got %d", want, s.Score)
	}
	if s.Combo != 0 {
		t.Errorf("Expected landing to reset combo, got %d", s.Combo)
	}

	r.step(30)
	if _, s := r.player(); s.Score != want {
		t.Errorf("Landing bonus paid more than once: score %d", s.Score)
	}
}

func TestNoLandingBonusAfterTrickExpires(t *testing.T) {
	r := newRunner(t, 1).quiet()
	r.press(cfg.ActionJump)
	r.press(cfg.ActionSpin)
	r.stepUntilGrounded(60)

	_, s := r.player()
	if s.Score != cfg.Tricks.SpinPoints {
		t.Errorf("Expected only spin points (%d), got %d", cfg.Tricks.SpinPoints, s.Score)
	}
	if s.Combo != 1 {
		t.Errorf("Expected combo to carry over without a bonus, got %d", s.Combo)
	}
}

func TestThrowOnlyInBossChase(t *testing.T) {
	r := newRunner(t, 1).quiet()

	r.press(cfg.ActionThrow)
	if n := count(r.e, tags.Taco); n != 0 {
		t.Fatalf("Expected no taco while running, got %d", n)
	}

	StartBossPhase(r.e)
	r.press(cfg.ActionThrow)
	if n := count(r.e, tags.Taco); n != 1 {
		t.Fatalf("Expected one taco in boss chase, got %d", n)
	}

	// Cooldown blocks an immediate second throw
	r.step(1)
	r.press(cfg.ActionThrow)
	if n := count(r.e, tags.Taco); n != 1 {
		t.Errorf("Expected throw cooldown to block a second taco, got %d", n)
	}
}
