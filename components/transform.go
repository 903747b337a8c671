package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the entity anchor in screen space.
// For the turtle, hazards and ramps it is the bottom edge; for tacos and sparks the center.
var Position = donburi.NewComponentType[math.Vec2]()

// Velocity is applied to Position once per frame.
var Velocity = donburi.NewComponentType[math.Vec2]()
