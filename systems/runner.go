package systems

import (
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi/ecs"
)

var (
	active      = []cfg.GameMode{cfg.ModeRunning, cfg.ModeBossChase, cfg.ModeLevelClear}
	onStreet    = []cfg.GameMode{cfg.ModeRunning, cfg.ModeBossChase}
	runningOnly = []cfg.GameMode{cfg.ModeRunning}
	chaseOnly   = []cfg.GameMode{cfg.ModeBossChase}
)

// AddRunnerSystems registers the runner frame in order. input feeds actions;
// a nil audio system leaves queued effects for DrainSFX.
func AddRunnerSystems(e *ecs.ECS, input ecs.System, audio ecs.System) {
	if audio != nil {
		// Audio runs first, even when paused, and plays what the previous frame queued
		e.AddSystem(audio)
	}

	// Systems that always run
	e.AddSystem(input)
	e.AddSystem(UpdatePause)

	// Controls see game-over too, to accept restart
	e.AddSystem(WithPauseCheck(UpdateControls))

	e.AddSystem(gameplay(UpdateTimers, active...))
	e.AddSystem(gameplay(UpdatePhysics, active...))
	e.AddSystem(gameplay(UpdateTricks, active...))
	e.AddSystem(gameplay(UpdateSpawner, runningOnly...))
	e.AddSystem(gameplay(UpdateBoss, chaseOnly...))
	e.AddSystem(gameplay(UpdateHazards, onStreet...))
	e.AddSystem(gameplay(UpdateRamps, onStreet...))
	e.AddSystem(gameplay(UpdateParticles, active...))
	e.AddSystem(gameplay(UpdateTacos, active...))
	e.AddSystem(gameplay(UpdateProgress, active...))
	e.AddSystem(gameplay(UpdateBanner, active...))
	e.AddSystem(WithPauseCheck(UpdateCamera))
}

func gameplay(system ecs.System, modes ...cfg.GameMode) ecs.System {
	return WithPauseCheck(WithModes(system, modes...))
}
