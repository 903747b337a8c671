package systems

import (
	"math"
	"reflect"
	"testing"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/automoto/skateturtle/tags"
)

// invulnerable runs n frames with damage switched off, recording every snapshot.
func (r *runner) invulnerable(n int, each func(f *snapshot.Frame)) {
	entry, _ := playerEntry(r.e)
	for i := 0; i < n; i++ {
		components.Player.Get(entry).HurtTimer = 2
		r.step(1)
		if each != nil {
			each(TakeSnapshot(r.e))
		}
	}
}

func TestSpawnerIsDeterministic(t *testing.T) {
	play := func(seed int64) []*snapshot.Frame {
		r := newRunner(t, seed)
		var frames []*snapshot.Frame
		r.invulnerable(400, func(f *snapshot.Frame) {
			frames = append(frames, f)
		})
		return frames
	}

	a, b := play(42), play(42)
	for i := range a {
		if !reflect.DeepEqual(a[i].Hazards, b[i].Hazards) || !reflect.DeepEqual(a[i].Ramps, b[i].Ramps) {
			t.Fatalf("frame %d: same seed produced different tracks", i)
		}
		if !reflect.DeepEqual(a[i].Particles, b[i].Particles) {
			t.Fatalf("frame %d: same seed produced different particles", i)
		}
	}
}

func TestFirstHazardSpawnsAtThreshold(t *testing.T) {
	r := newRunner(t, 7)
	s := r.session()

	frames := 0
	for count(r.e, tags.Hazard) == 0 && frames < 100 {
		r.step(1)
		frames++
	}

	if s.Distance < cfg.Hazard.FirstAt || s.Distance-s.Speed >= cfg.Hazard.FirstAt {
		t.Errorf("Expected first hazard when distance crosses %.0f, spawned at %.0f", cfg.Hazard.FirstAt, s.Distance)
	}

	f := TakeSnapshot(r.e)
	h := f.Hazards[0]
	width := float64(cfg.C.Width)
	if h.X < width+cfg.Hazard.SpawnMinX-s.Speed || h.X > width+cfg.Hazard.SpawnMaxX {
		t.Errorf("Expected hazard to enter from the right edge, got x=%.1f", h.X)
	}
	if h.Y != cfg.Physics.GroundY+cfg.Hazard.GroundOffset {
		t.Errorf("Expected hazard on the ground, got y=%.1f", h.Y)
	}
	track := GetTrack(r.e)
	gap := track.NextHazardAt - cfg.Hazard.FirstAt
	minGap := cfg.Hazard.SpacingMin - cfg.Hazard.LevelSpacing
	maxGap := cfg.Hazard.SpacingMax - cfg.Hazard.LevelSpacing
	if gap < minGap || gap > maxGap {
		t.Errorf("Expected next hazard %.0f-%.0f further on, got %.1f", minGap, maxGap, gap)
	}
}

func TestSpacingShrinksWithLevel(t *testing.T) {
	// gaps after the first spawn of each kind, for a fixed seed
	gaps := func(level int) (float64, float64) {
		r := newRunner(t, 7)
		r.session().Level = level
		track := GetTrack(r.e)
		track.NextHazardAt = 0
		track.NextRampAt = 0
		r.step(1)
		return track.NextHazardAt, track.NextRampAt
	}

	baseHazard, baseRamp := gaps(1)
	tests := []struct {
		name  string
		level int
	}{
		{"level 1", 1},
		{"level 5", 5},
		{"level 10", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hazard, ramp := gaps(tt.level)
			shrink := float64(tt.level - 1)

			wantHazard := baseHazard - shrink*cfg.Hazard.LevelSpacing
			if math.Abs(hazard-wantHazard) > 1e-9 {
				t.Errorf("Expected hazard gap %.2f, got %.2f", wantHazard, hazard)
			}
			lo := cfg.Hazard.SpacingMin - float64(tt.level)*cfg.Hazard.LevelSpacing
			hi := cfg.Hazard.SpacingMax - float64(tt.level)*cfg.Hazard.LevelSpacing
			if hazard < lo || hazard > hi {
				t.Errorf("Expected hazard gap in %.0f-%.0f, got %.2f", lo, hi, hazard)
			}

			wantRamp := baseRamp - shrink*cfg.Ramp.LevelSpacing
			if math.Abs(ramp-wantRamp) > 1e-9 {
				t.Errorf("Expected ramp gap %.2f, got %.2f", wantRamp, ramp)
			}
			lo = cfg.Ramp.SpacingMin - float64(tt.level)*cfg.Ramp.LevelSpacing
			hi = cfg.Ramp.SpacingMax - float64(tt.level)*cfg.Ramp.LevelSpacing
			if ramp < lo || ramp > hi {
				t.Errorf("Expected ramp gap in %.0f-%.0f, got %.2f", lo, hi, ramp)
			}
		})
	}
}

func TestTrackStaysBounded(t *testing.T) {
	r := newRunner(t, 99)
	worst := map[string]int{}
	r.invulnerable(3000, func(f *snapshot.Frame) {
		worst["hazards"] = max(worst["hazards"], len(f.Hazards))
		worst["ramps"] = max(worst["ramps"], len(f.Ramps))
		worst["particles"] = max(worst["particles"], len(f.Particles))
		worst["tacos"] = max(worst["tacos"], len(f.Tacos))
	})

	limits := map[string]int{"hazards": 10, "ramps": 5, "particles": 200, "tacos": 4}
	for name, limit := range limits {
		if worst[name] > limit {
			t.Errorf("Expected at most %d %s on the street, saw %d", limit, name, worst[name])
		}
	}
}
