package systems

import (
	"math"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers counts down the frame timers and advances the scroll offsets.
func UpdateTimers(e *ecs.ECS) {
	session := GetSession(e)
	track := GetTrack(e)
	if session == nil || track == nil {
		return
	}

	session.Tick++
	track.BgShift += session.Speed * cfg.Session.BgShiftFactor
	track.StripeOffset = math.Mod(track.StripeOffset+session.Speed, cfg.Session.StripePeriod)

	if track.TacoCooldown > 0 {
		track.TacoCooldown--
	}
	if session.MessageTimer > 0 {
		session.MessageTimer--
	}
	if entry, ok := playerEntry(e); ok {
		player := components.Player.Get(entry)
		if player.HurtTimer > 0 {
			player.HurtTimer--
		}
	}
}
