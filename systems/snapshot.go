package systems

import (
	"slices"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/snapshot"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TakeSnapshot copies the runner state into a frame. Obstacles are ordered
// oldest first so newer ones draw on top.
func TakeSnapshot(e *ecs.ECS) *snapshot.Frame {
	f := &snapshot.Frame{}

	if session := GetSession(e); session != nil {
		f.Mode = session.Mode
		f.Level = session.Level
		f.Score = session.Score
		f.Combo = session.Combo
		f.Lives = session.Lives
		f.Distance = session.Distance
		f.Target = session.Target
		f.Speed = session.Speed
		f.MessageTimer = session.MessageTimer
		f.Tick = session.Tick
	}
	if track := GetTrack(e); track != nil {
		f.BgShift = track.BgShift
		f.StripeOffset = track.StripeOffset
	}
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		f.CameraX, f.CameraY = camera.Offset.X, camera.Offset.Y
	}
	f.Paused = GetOrCreatePause(e).IsPaused

	if entry, ok := playerEntry(e); ok {
		p := components.Player.Get(entry)
		pos := components.Position.Get(entry)
		f.Player = snapshot.Player{
			X:         pos.X,
			Y:         pos.Y,
			W:         cfg.Player.Width,
			H:         cfg.Player.Height,
			Grounded:  p.Grounded,
			Spinning:  p.SpinTimer > 0,
			Flipping:  p.FlipTimer > 0,
			SpinAngle: p.SpinAngle,
			FlipAngle: p.FlipAngle,
			GrabName:  p.GrabName,
			GrabTimer: p.GrabTimer,
			HurtTimer: p.HurtTimer,
			Squash:    landingSquash(p, f.Tick),
		}
	}

	if entry, ok := bossEntry(e); ok {
		b := components.Boss.Get(entry)
		pos := components.Position.Get(entry)
		f.Boss = snapshot.Boss{
			Active:   b.Active,
			X:        pos.X,
			Y:        pos.Y,
			HP:       b.HP,
			MaxHP:    cfg.Boss.HP,
			HitFlash: b.HitFlash,
		}
	}

	hazards := newestFirst(e, tags.Hazard, hazardSeq)
	slices.Reverse(hazards)
	for _, entry := range hazards {
		h := components.Hazard.Get(entry)
		pos := components.Position.Get(entry)
		f.Hazards = append(f.Hazards, snapshot.Hazard{X: pos.X, Y: pos.Y, W: h.W, H: h.H, Kind: h.Kind})
	}

	ramps := newestFirst(e, tags.Ramp, rampSeq)
	slices.Reverse(ramps)
	for _, entry := range ramps {
		r := components.Ramp.Get(entry)
		pos := components.Position.Get(entry)
		f.Ramps = append(f.Ramps, snapshot.Ramp{X: pos.X, Y: pos.Y, W: r.W, H: r.H})
	}

	tags.Taco.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		f.Tacos = append(f.Tacos, snapshot.Taco{X: pos.X, Y: pos.Y, Rotation: components.Taco.Get(entry).Rotation})
	})

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		pos := components.Position.Get(entry)
		f.Particles = append(f.Particles, snapshot.Particle{X: pos.X, Y: pos.Y, Size: p.Size, Life: p.Life, Color: p.Color})
	})

	if entry, ok := components.Banner.First(e.World); ok {
		banner := components.Banner.Get(entry)
		f.Banner = snapshot.Banner{Visible: banner.Shown, Y: float64(banner.Y)}
		switch f.Mode {
		case cfg.ModeBossChase:
			f.Banner.Text = cfg.HUD.BossMessage
		case cfg.ModeLevelClear:
			f.Banner.Text = cfg.HUD.ClearMessage
		default:
			f.Banner.Visible = false
		}
	}

	return f
}

func landingSquash(p *components.PlayerData, tick int) float64 {
	frames := cfg.Player.SquashFrames
	elapsed := tick - p.LandedTick
	if !p.Grounded || p.LandedTick == 0 || frames <= 0 || elapsed >= frames {
		return 0
	}
	return 1 - float64(elapsed)/float64(frames)
}
