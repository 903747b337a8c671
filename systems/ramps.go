package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRamps scrolls ramps and launches the turtle when it rolls onto one.
func UpdateRamps(e *ecs.ECS) {
	session := GetSession(e)
	pEntry, ok := playerEntry(e)
	if session == nil || !ok {
		return
	}
	player := components.Player.Get(pEntry)
	ppos := components.Position.Get(pEntry)
	pvel := components.Velocity.Get(pEntry)
	reach := cfg.Player.RampReach

	var toRemove []*donburi.Entry
	for _, entry := range newestFirst(e, tags.Ramp, rampSeq) {
		ramp := components.Ramp.Get(entry)
		pos := components.Position.Get(entry)
		obj := components.Object.Get(entry)

		pos.X -= session.Speed
		obj.Follow(pos.X, pos.Y, factory.RampBox(ramp))

		onRamp := player.Grounded &&
			pvel.Y == 0 &&
			obj.Check(0, 0, tags.ResolvPlayer) != nil &&
			ppos.X+reach > pos.X &&
			ppos.X-reach < pos.X+ramp.W

		if onRamp {
			pvel.Y = cfg.Ramp.LaunchSpeed - float64(session.Level)*cfg.Ramp.LevelLaunch
			player.Grounded = false
			session.Score += cfg.Score.RampLaunch
			factory.SpawnSparks(e, ppos.X+30, ppos.Y-8, cfg.Sparks.RampColor, cfg.Sparks.RampCount)
			PlaySFX(e, cfg.SoundRamp)
		}

		if pos.X+ramp.W < cfg.Ramp.DespawnX {
			toRemove = append(toRemove, entry)
		}
	}

	for _, entry := range toRemove {
		destroy(e, entry)
	}
}
