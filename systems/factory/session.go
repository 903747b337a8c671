package factory

import (
	"math/rand"

	"github.com/automoto/skateturtle/archetypes"
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the session/track singleton with a level-one run.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, NewSession())
	components.Track.SetValue(session, components.TrackData{
		NextHazardAt: cfg.Hazard.FirstAt,
		NextRampAt:   cfg.Ramp.FirstAt,
		Rand:         rand.New(rand.NewSource(seed)),
	})
	return session
}

// NewSession returns the session values of a fresh run.
func NewSession() components.SessionData {
	return components.SessionData{
		Mode:   cfg.ModeRunning,
		Level:  1,
		Target: cfg.Session.StartTarget,
		Speed:  cfg.Session.StartSpeed,
		Lives:  cfg.Session.StartLives,
	}
}

// CreateBanner creates the slide-in banner singleton.
func CreateBanner(ecs *ecs.ECS) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(banner, components.BannerData{
		Tween: gween.New(cfg.Banner.StartY, cfg.Banner.BossY, cfg.Banner.Duration, ease.OutBack),
		Y:     cfg.Banner.StartY,
	})
	return banner
}
