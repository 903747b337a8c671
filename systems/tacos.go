package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTacos flies thrown tacos and applies boss hits.
func UpdateTacos(e *ecs.ECS) {
	bEntry, hasBoss := bossEntry(e)
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	var tacos []*donburi.Entry
	tags.Taco.Each(e.World, func(entry *donburi.Entry) {
		tacos = append(tacos, entry)
	})

	var toRemove []*donburi.Entry
	for _, entry := range tacos {
		taco := components.Taco.Get(entry)
		pos := components.Position.Get(entry)
		vel := components.Velocity.Get(entry)

		pos.X += vel.X
		pos.Y += vel.Y
		vel.Y += cfg.Physics.TacoGravity
		taco.Rotation += cfg.Taco.SpinStep
		components.Object.Get(entry).Follow(pos.X, pos.Y, cfg.Taco.Box)

		if hasBoss && tacoHitsBoss(entry, bEntry) {
			toRemove = append(toRemove, entry)
			hitBoss(e, bEntry)
			continue
		}

		if pos.X > width+cfg.Taco.MaxXPad || pos.Y > height+cfg.Taco.MaxYPad {
			toRemove = append(toRemove, entry)
		}
	}

	for _, entry := range toRemove {
		destroy(e, entry)
	}
}

func tacoHitsBoss(taco, bEntry *donburi.Entry) bool {
	boss := components.Boss.Get(bEntry)
	if !boss.Active {
		return false
	}
	if components.Object.Get(taco).Check(0, 0, tags.ResolvBoss) == nil {
		return false
	}
	return Overlaps(
		*components.Position.Get(taco), cfg.Taco.Box,
		*components.Position.Get(bEntry), cfg.Boss.TacoBox,
	)
}

// hitBoss takes one hit point off the boss and ends the level when none remain.
func hitBoss(e *ecs.ECS, bEntry *donburi.Entry) {
	boss := components.Boss.Get(bEntry)
	pos := components.Position.Get(bEntry)

	if boss.HP > 0 {
		boss.HP--
	}
	boss.HitFlash = cfg.Boss.HitFlash
	factory.SpawnSparks(e, pos.X-12, pos.Y-40, cfg.Sparks.BossHitColor, cfg.Sparks.BossHitCount)
	TriggerScreenShake(e, cfg.ScreenShake.BossHitIntensity, cfg.ScreenShake.BossHitDuration)
	PlaySFX(e, cfg.SoundBossHit)

	if boss.HP > 0 {
		return
	}

	boss.Active = false
	session := GetSession(e)
	if session != nil {
		session.Mode = cfg.ModeLevelClear
		session.MessageTimer = cfg.Session.ClearMessage
		session.Score += cfg.Score.BossClear
	}
	factory.SpawnSparks(e, pos.X, pos.Y-40, cfg.Sparks.BossClearColor, cfg.Sparks.BossClearCount)
	showBanner(e, cfg.Banner.ClearY)
	PlaySFX(e, cfg.SoundBossDefeat)
}
