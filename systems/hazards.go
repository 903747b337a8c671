package systems

import (
	"slices"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards scrolls hazards, scores the ones the turtle clears and
// applies damage for the ones it runs into.
func UpdateHazards(e *ecs.ECS) {
	session := GetSession(e)
	pEntry, ok := playerEntry(e)
	if session == nil || !ok {
		return
	}
	player := components.Player.Get(pEntry)
	ppos := components.Position.Get(pEntry)
	pvel := components.Velocity.Get(pEntry)
	passLine := ppos.X - cfg.Player.Width*cfg.Player.PassLineFactor

	var toRemove []*donburi.Entry
	for _, entry := range newestFirst(e, tags.Hazard, hazardSeq) {
		hazard := components.Hazard.Get(entry)
		pos := components.Position.Get(entry)
		obj := components.Object.Get(entry)
		box := factory.HazardBox(hazard)

		pos.X -= session.Speed
		obj.Follow(pos.X, pos.Y, box)

		if !hazard.Passed && pos.X+hazard.W < passLine {
			hazard.Passed = true
			session.Score += cfg.Score.HazardPassed
		}

		if player.HurtTimer <= 0 &&
			pvel.Y >= cfg.Player.LaunchImmunitySpeed &&
			obj.Check(0, 0, tags.ResolvPlayer) != nil &&
			Overlaps(*ppos, cfg.Player.HazardBox, *pos, box) {
			damagePlayer(e)
			pos.X -= cfg.Hazard.Knockback
			obj.Follow(pos.X, pos.Y, box)
			hitSparks(e)
		}

		if pos.X < cfg.Hazard.DespawnX {
			toRemove = append(toRemove, entry)
		}
	}

	for _, entry := range toRemove {
		destroy(e, entry)
	}
}

func hazardSeq(entry *donburi.Entry) int {
	return components.Hazard.Get(entry).Seq
}

func rampSeq(entry *donburi.Entry) int {
	return components.Ramp.Get(entry).Seq
}

// newestFirst collects the tagged entries ordered by descending spawn sequence.
func newestFirst(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag], seq func(*donburi.Entry) int) []*donburi.Entry {
	var entries []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return seq(b) - seq(a)
	})
	return entries
}
