package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateProgress moves the session along running -> boss-chase and level-clear -> running.
func UpdateProgress(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}

	switch session.Mode {
	case cfg.ModeRunning:
		if session.Distance >= session.Target {
			StartBossPhase(e)
		}
	case cfg.ModeLevelClear:
		if session.MessageTimer <= 0 {
			StartNextLevel(e)
		}
	}
}

// StartBossPhase trims the track to its newest obstacles and sends the boss in.
func StartBossPhase(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}
	session.Mode = cfg.ModeBossChase

	if entry, ok := bossEntry(e); ok {
		boss := components.Boss.Get(entry)
		boss.Active = true
		boss.HP = cfg.Boss.HP
		boss.HitFlash = 0
		placeBossHome(entry)
	}

	keepNewest(e, tags.Hazard, hazardSeq, cfg.Hazard.KeepOnBoss)
	keepNewest(e, tags.Ramp, rampSeq, cfg.Ramp.KeepOnBoss)

	showBanner(e, cfg.Banner.BossY)
}

// StartNextLevel raises the target and speed and clears the street.
func StartNextLevel(e *ecs.ECS) {
	session := GetSession(e)
	track := GetTrack(e)
	if session == nil || track == nil {
		return
	}

	session.Level++
	session.Mode = cfg.ModeRunning
	session.Distance = 0
	session.Target += cfg.Session.TargetStep
	session.Speed += cfg.Session.SpeedStep
	track.NextHazardAt = cfg.Hazard.FirstAt
	track.NextRampAt = cfg.Ramp.NextLevelAt

	destroyAll(e, tags.Hazard)
	destroyAll(e, tags.Ramp)
	destroyAll(e, tags.Taco)

	hideBanner(e)
}

// ResetSession puts every entity and session field back to a fresh level-one run.
// The RNG stream carries on, so a restarted run differs from the first.
func ResetSession(e *ecs.ECS) {
	session := GetSession(e)
	track := GetTrack(e)
	if session == nil || track == nil {
		return
	}

	*session = factory.NewSession()

	rng, seq := track.Rand, track.SpawnSeq
	*track = components.TrackData{
		NextHazardAt: cfg.Hazard.FirstAt,
		NextRampAt:   cfg.Ramp.FirstAt,
		SpawnSeq:     seq,
		Rand:         rng,
	}

	if entry, ok := bossEntry(e); ok {
		components.Boss.SetValue(entry, components.BossData{HP: cfg.Boss.HP})
		placeBossHome(entry)
	}

	if entry, ok := playerEntry(e); ok {
		components.Player.SetValue(entry, components.PlayerData{Grounded: true})
		pos := components.Position.Get(entry)
		*pos = math.NewVec2(cfg.Player.StartX, cfg.Physics.GroundY)
		*components.Velocity.Get(entry) = math.NewVec2(0, 0)
		components.Object.Get(entry).Follow(pos.X, pos.Y, cfg.Player.Collider)
	}

	destroyAll(e, tags.Hazard)
	destroyAll(e, tags.Ramp)
	destroyAll(e, tags.Taco)
	destroyAll(e, tags.Particle)

	hideBanner(e)
}

func placeBossHome(entry *donburi.Entry) {
	x, y := factory.BossHome()
	pos := components.Position.Get(entry)
	*pos = math.NewVec2(x, y)
	components.Object.Get(entry).Follow(x, y, cfg.Boss.Collider)
}

// keepNewest destroys all but the n most recently spawned entries of tag.
func keepNewest(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag], seq func(*donburi.Entry) int, n int) {
	entries := newestFirst(e, tag, seq)
	if len(entries) <= n {
		return
	}
	for _, entry := range entries[n:] {
		destroy(e, entry)
	}
}
