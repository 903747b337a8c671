package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Overlaps tests two anchored boxes for strict overlap. Touching edges do not overlap.
func Overlaps(a math.Vec2, ab cfg.Rect, b math.Vec2, bb cfg.Rect) bool {
	ax, ay := a.X+ab.X, a.Y+ab.Y
	bx, by := b.X+bb.X, b.Y+bb.Y
	return ax < bx+bb.W &&
		ax+ab.W > bx &&
		ay < by+bb.H &&
		ay+ab.H > by
}

// damagePlayer costs the turtle a life and starts its invulnerability window.
// Reaching zero lives ends the run.
func damagePlayer(e *ecs.ECS) {
	session := GetSession(e)
	entry, ok := playerEntry(e)
	if session == nil || !ok {
		return
	}
	player := components.Player.Get(entry)

	player.HurtTimer = cfg.Player.HurtFrames
	if session.Lives > 0 {
		session.Lives--
	}
	session.Combo = 0

	TriggerScreenShake(e, cfg.ScreenShake.DamageIntensity, cfg.ScreenShake.DamageDuration)
	PlaySFX(e, cfg.SoundHit)

	if session.Lives <= 0 {
		session.Mode = cfg.ModeGameOver
		PlaySFX(e, cfg.SoundGameOver)
	}
}

// hitSparks bursts red sparks off the turtle.
func hitSparks(e *ecs.ECS) {
	if entry, ok := playerEntry(e); ok {
		pos := components.Position.Get(entry)
		factory.SpawnSparks(e, pos.X-12, pos.Y-24, cfg.Sparks.HitColor, cfg.Sparks.HitCount)
	}
}
