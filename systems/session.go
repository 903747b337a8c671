package systems

import (
	"slices"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithModes wraps a system so it only runs while the session is in one of modes.
// The mode is read when the system is called, so a transition earlier in the
// frame affects every system after it.
func WithModes(system ecs.System, modes ...cfg.GameMode) ecs.System {
	return func(e *ecs.ECS) {
		session := GetSession(e)
		if session == nil || !slices.Contains(modes, session.Mode) {
			return
		}
		system(e)
	}
}

// GetSession returns the session singleton, or nil outside a runner world.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetTrack returns the spawner/scroll singleton, or nil outside a runner world.
func GetTrack(e *ecs.ECS) *components.TrackData {
	entry, ok := components.Track.First(e.World)
	if !ok {
		return nil
	}
	return components.Track.Get(entry)
}

// playerEntry returns the turtle entry.
func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// bossEntry returns the boss entry.
func bossEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Boss.First(e.World)
}

// destroy removes an entity and its collider.
func destroy(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

// destroyAll removes every entity matching the tag, collecting first so the
// query is never mutated while it is iterated.
func destroyAll(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var toRemove []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		destroy(e, entry)
	}
}
