package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// GameMode is the session mode. Exactly one is active at a time.
type GameMode int

const (
	ModeRunning GameMode = iota
	ModeBossChase
	ModeLevelClear
	ModeGameOver
)

func (m GameMode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeBossChase:
		return "boss-chase"
	case ModeLevelClear:
		return "level-clear"
	case ModeGameOver:
		return "game-over"
	}
	return "unknown"
}

// HazardKind is the hazard variant
type HazardKind int

const (
	HazardCone HazardKind = iota
	HazardBarrier
)

func (k HazardKind) String() string {
	if k == HazardCone {
		return "cone"
	}
	return "barrier"
}

// GrabID names one of the three grabs
type GrabID int

const (
	GrabNose GrabID = iota
	GrabMelon
	GrabJapan
)
