package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls turns this frame's action presses into jumps, tricks, throws and restarts.
// Actions that are not valid in the current state are ignored.
func UpdateControls(e *ecs.ECS) {
	session := GetSession(e)
	entry, ok := playerEntry(e)
	if session == nil || !ok {
		return
	}
	input := GetOrCreateInput(e)
	player := components.Player.Get(entry)
	vel := components.Velocity.Get(entry)

	if session.Mode == cfg.ModeGameOver {
		if GetAction(input, cfg.ActionRestart).JustPressed {
			ResetSession(e)
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	if GetAction(input, cfg.ActionJump).JustPressed && player.Grounded {
		vel.Y = cfg.Player.JumpSpeed
		player.Grounded = false
		PlaySFX(e, cfg.SoundJump)
	}

	if !player.Grounded {
		if GetAction(input, cfg.ActionSpin).JustPressed {
			doSpin(e, session, player)
		}
		if GetAction(input, cfg.ActionFlip).JustPressed {
			doFlip(e, session, player)
		}
		for _, action := range []cfg.ActionID{cfg.ActionGrabNose, cfg.ActionGrabMelon, cfg.ActionGrabJapan} {
			if GetAction(input, action).JustPressed {
				doGrab(e, session, player, cfg.GrabForAction[action])
			}
		}
	}

	if GetAction(input, cfg.ActionThrow).JustPressed && session.Mode == cfg.ModeBossChase {
		throwTaco(e)
	}
}

func doSpin(e *ecs.ECS, session *components.SessionData, player *components.PlayerData) {
	if player.SpinTimer > 0 {
		return
	}
	player.SpinTimer = cfg.Tricks.SpinFrames
	session.Score += cfg.Tricks.SpinPoints
	session.Combo++
	PlaySFX(e, cfg.SoundTrick)
}

func doFlip(e *ecs.ECS, session *components.SessionData, player *components.PlayerData) {
	if player.FlipTimer > 0 {
		return
	}
	player.FlipTimer = cfg.Tricks.FlipFrames
	session.Score += cfg.Tricks.FlipPoints
	session.Combo++
	PlaySFX(e, cfg.SoundTrick)
}

func doGrab(e *ecs.ECS, session *components.SessionData, player *components.PlayerData, id cfg.GrabID) {
	if player.GrabTimer > 0 {
		return
	}
	grab := cfg.Tricks.Grabs[id]
	player.GrabTimer = cfg.Tricks.GrabFrames
	player.GrabName = grab.Name
	session.Score += grab.Points
	session.Combo++

	if entry, ok := playerEntry(e); ok {
		pos := components.Position.Get(entry)
		factory.SpawnSparks(e, pos.X+14, pos.Y-58, cfg.Sparks.GrabColor, cfg.Sparks.GrabCount)
	}
	PlaySFX(e, cfg.SoundGrab)
}

func throwTaco(e *ecs.ECS) {
	track := GetTrack(e)
	entry, ok := playerEntry(e)
	if track == nil || !ok || track.TacoCooldown > 0 {
		return
	}
	track.TacoCooldown = cfg.Taco.Cooldown
	pos := components.Position.Get(entry)
	factory.CreateTaco(e, pos.X, pos.Y)
	PlaySFX(e, cfg.SoundThrow)
}
