package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the turtle's vertical motion and resolves landings.
func UpdatePhysics(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	session := GetSession(e)
	if !ok || session == nil {
		return
	}
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)
	vel := components.Velocity.Get(entry)

	vel.Y += cfg.Physics.Gravity
	pos.Y += vel.Y

	ground := cfg.Physics.GroundY
	if pos.Y >= ground {
		if !player.Grounded && landingPaysBonus(player) {
			session.Score += cfg.Score.LandingBonus
			session.Combo = 0
			factory.SpawnSparks(e, pos.X+20, pos.Y+8, cfg.Sparks.LandingColor, cfg.Sparks.LandingCount)
			PlaySFX(e, cfg.SoundLand)
		}
		if !player.Grounded {
			player.LandedTick = session.Tick
		}
		pos.Y = ground
		vel.Y = 0
		player.Grounded = true
		player.SpinTimer = 0
		player.FlipTimer = 0
		player.GrabTimer = 0
		player.GrabName = ""
	} else {
		player.Grounded = false
	}

	components.Object.Get(entry).Follow(pos.X, pos.Y, cfg.Player.Collider)
}

// landingPaysBonus reports whether a trick timer is still running on touchdown.
// A timer that has not fully run out counts.
func landingPaysBonus(p *components.PlayerData) bool {
	if p.SpinTimer > 0 || p.FlipTimer > 0 {
		return true
	}
	return cfg.Tricks.LandingCountsGrab && p.GrabTimer > 0
}
