package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuTitle
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitRequested  bool // set when the player picks Title Screen; the scene consumes it
}

var Pause = donburi.NewComponentType[PauseData]()
