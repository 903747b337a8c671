package systems

import (
	"math"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss closes the boss in on the turtle, then hovers in place.
// Touching the turtle costs a life and shoves the boss back.
func UpdateBoss(e *ecs.ECS) {
	entry, ok := bossEntry(e)
	session := GetSession(e)
	if !ok || session == nil {
		return
	}
	boss := components.Boss.Get(entry)
	if !boss.Active {
		return
	}
	pos := components.Position.Get(entry)
	obj := components.Object.Get(entry)

	pEntry, ok := playerEntry(e)
	if !ok {
		return
	}
	ppos := components.Position.Get(pEntry)
	player := components.Player.Get(pEntry)

	bc := cfg.Boss
	if pos.X > ppos.X+bc.LeadX {
		pos.X += math.Max(-session.Speed*bc.ApproachScale, -bc.MaxApproach)
	} else {
		pos.X += math.Sin(float64(session.Tick)*bc.HoverFreq) * bc.HoverAmp
	}

	if boss.HitFlash > 0 {
		boss.HitFlash--
	}

	obj.Follow(pos.X, pos.Y, bc.Collider)

	if player.HurtTimer > 0 || obj.Check(0, 0, tags.ResolvPlayer) == nil {
		return
	}
	if Overlaps(*ppos, cfg.Player.BossBox, *pos, bc.TouchBox) {
		damagePlayer(e)
		pos.X += bc.ContactPush
		obj.Follow(pos.X, pos.Y, bc.Collider)
	}
}
