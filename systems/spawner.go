package systems

import (
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner advances the level distance and drops hazards and ramps
// in from the right edge each time a spawn threshold is crossed.
func UpdateSpawner(e *ecs.ECS) {
	session := GetSession(e)
	track := GetTrack(e)
	if session == nil || track == nil {
		return
	}

	session.Distance += session.Speed
	width := float64(cfg.C.Width)
	ground := cfg.Physics.GroundY
	rng := track.Rand
	level := float64(session.Level)

	if session.Distance >= track.NextHazardAt {
		hc := cfg.Hazard
		h := factory.Pick(rng, hc.Heights)
		x := width + factory.Between(rng, hc.SpawnMinX, hc.SpawnMaxX)
		w := factory.Pick(rng, hc.Widths)
		kind := cfg.HazardBarrier
		if rng.Float64() < hc.ConeChance {
			kind = cfg.HazardCone
		}
		factory.CreateHazard(e, x, ground+hc.GroundOffset, w, h, kind)
		track.NextHazardAt += factory.Between(rng, hc.SpacingMin, hc.SpacingMax) - level*hc.LevelSpacing
	}

	if session.Distance >= track.NextRampAt {
		rc := cfg.Ramp
		x := width + factory.Between(rng, rc.SpawnMinX, rc.SpawnMaxX)
		w := factory.Pick(rng, rc.Widths)
		h := factory.Pick(rng, rc.Heights)
		factory.CreateRamp(e, x, ground+rc.GroundOffset, w, h)
		track.NextRampAt += factory.Between(rng, rc.SpacingMin, rc.SpacingMax) - level*rc.LevelSpacing
	}
}
