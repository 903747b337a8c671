package systems

import (
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTricks runs the trick timers down and turns the board while they run.
func UpdateTricks(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	player := components.Player.Get(entry)

	if player.SpinTimer > 0 {
		player.SpinTimer--
		player.SpinAngle += cfg.Tricks.SpinStep
	}
	if player.FlipTimer > 0 {
		player.FlipTimer--
		player.FlipAngle += cfg.Tricks.FlipStep
	}
	if player.GrabTimer > 0 {
		player.GrabTimer--
	}
}
