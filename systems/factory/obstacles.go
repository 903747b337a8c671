package factory

import (
	"github.com/automoto/skateturtle/archetypes"
	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateHazard places a hazard whose bottom-left corner is (x, y).
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64, kind cfg.HazardKind) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	components.Position.SetValue(hazard, math.NewVec2(x, y))
	components.Hazard.SetValue(hazard, components.HazardData{
		W:    w,
		H:    h,
		Kind: kind,
		Seq:  nextSeq(ecs),
	})

	obj := resolv.NewObject(x, y-h, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return hazard
}

// CreateRamp places a ramp whose bottom-left corner is (x, y).
func CreateRamp(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ramp := archetypes.Ramp.Spawn(ecs)

	components.Position.SetValue(ramp, math.NewVec2(x, y))
	components.Ramp.SetValue(ramp, components.RampData{
		W:   w,
		H:   h,
		Seq: nextSeq(ecs),
	})

	obj := resolv.NewObject(x, y-h, w, h, tags.ResolvRamp)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ramp
	components.Object.SetValue(ramp, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ramp
}

// RampBox is the collider rectangle of a ramp relative to its anchor.
func RampBox(r *components.RampData) cfg.Rect {
	return cfg.Rect{X: 0, Y: -r.H, W: r.W, H: r.H}
}

// HazardBox is the hit-box of a hazard relative to its anchor.
func HazardBox(h *components.HazardData) cfg.Rect {
	return cfg.Rect{X: 0, Y: -h.H, W: h.W, H: h.H}
}

func nextSeq(ecs *ecs.ECS) int {
	e, ok := components.Track.First(ecs.World)
	if !ok {
		return 0
	}
	track := components.Track.Get(e)
	track.SpawnSeq++
	return track.SpawnSeq
}
