package systems

import (
	"testing"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// script feeds actions to the input system one frame at a time.
type script struct {
	next []cfg.ActionID
}

func (s *script) press(ids ...cfg.ActionID) {
	s.next = append(s.next, ids...)
}

func (s *script) poll(pressed *[cfg.ActionCount]bool) (components.InputMethod, bool) {
	if len(s.next) == 0 {
		return components.InputKeyboard, false
	}
	for _, id := range s.next {
		pressed[id] = true
	}
	s.next = s.next[:0]
	return components.InputKeyboard, true
}

type runner struct {
	t      *testing.T
	e      *ecs.ECS
	script *script
}

func newRunner(t *testing.T, seed int64) *runner {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRunnerWorld(e, seed)
	s := &script{}
	AddRunnerSystems(e, NewInputSystem(s.poll), nil)
	return &runner{t: t, e: e, script: s}
}

// quiet pushes the spawn thresholds out of reach so only hand-placed obstacles exist.
func (r *runner) quiet() *runner {
	track := GetTrack(r.e)
	track.NextHazardAt = 1e12
	track.NextRampAt = 1e12
	return r
}

func (r *runner) step(n int) {
	for i := 0; i < n; i++ {
		r.e.Update()
	}
}

// press holds ids for exactly one frame.
func (r *runner) press(ids ...cfg.ActionID) {
	r.script.press(ids...)
	r.e.Update()
}

func (r *runner) session() *components.SessionData {
	return GetSession(r.e)
}

func (r *runner) player() (*components.PlayerData, *components.SessionData) {
	entry, ok := playerEntry(r.e)
	if !ok {
		r.t.Fatal("no player entity")
	}
	return components.Player.Get(entry), r.session()
}

func (r *runner) playerY() float64 {
	entry, _ := playerEntry(r.e)
	return components.Position.Get(entry).Y
}

func (r *runner) boss() *components.BossData {
	entry, ok := bossEntry(r.e)
	if !ok {
		r.t.Fatal("no boss entity")
	}
	return components.Boss.Get(entry)
}

// stepUntilGrounded steps until the turtle lands, failing after limit frames.
func (r *runner) stepUntilGrounded(limit int) {
	r.t.Helper()
	for i := 0; i < limit; i++ {
		r.e.Update()
		if p, _ := r.player(); p.Grounded {
			return
		}
	}
	r.t.Fatalf("turtle still airborne after %d frames", limit)
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// hazardOnPlayer drops a cone right where the turtle will be after this frame's scroll.
func (r *runner) hazardOnPlayer() *donburi.Entry {
	return factory.CreateHazard(r.e, cfg.Player.StartX-20, cfg.Physics.GroundY+cfg.Hazard.GroundOffset, 44, 58, cfg.HazardCone)
}

func hasSound(sounds []cfg.SoundID, want cfg.SoundID) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}
