package components

import (
	cfg "github.com/automoto/skateturtle/config"
	"github.com/yohamta/donburi"
)

// SessionData is the run state shared by every system (singleton).
type SessionData struct {
	Mode         cfg.GameMode
	Level        int
	Distance     float64
	Target       float64
	Score        int
	Combo        int
	Speed        float64
	Lives        int
	MessageTimer int
	Tick         int
}

var Session = donburi.NewComponentType[SessionData]()
