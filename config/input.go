package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionSpin
	ActionFlip
	ActionGrabNose
	ActionGrabMelon
	ActionGrabJapan
	ActionThrow
	ActionRestart
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys, buttons and terminal runes bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Runes                  []rune // terminal frontend
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Frames a terminal key press stays held; terminals report no key-up
	TerminalHoldFrames int
}

// Input is the global input configuration
var Input InputConfig

// GrabForAction maps grab actions to their grab
var GrabForAction = map[ActionID]GrabID{
	ActionGrabNose:  GrabNose,
	ActionGrabMelon: GrabMelon,
	ActionGrabJapan: GrabJapan,
}

func init() {
	Input = InputConfig{
		TerminalHoldFrames: 1,
		Bindings: map[ActionID]InputBinding{
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
				Runes: []rune{' '},
			},
			ActionSpin: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
				Runes: []rune{'q', 'Q'},
			},
			ActionFlip: {
				Keys: []ebiten.Key{ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
				Runes: []rune{'w', 'W'},
			},
			ActionGrabNose: {
				Keys: []ebiten.Key{ebiten.KeyA},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
				Runes: []rune{'a', 'A'},
			},
			ActionGrabMelon: {
				Keys: []ebiten.Key{ebiten.KeyS},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
				Runes: []rune{'s', 'S'},
			},
			ActionGrabJapan: {
				Keys: []ebiten.Key{ebiten.KeyD},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
				Runes: []rune{'d', 'D'},
			},
			ActionThrow: {
				Keys: []ebiten.Key{ebiten.KeyF},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
				Runes: []rune{'f', 'F'},
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
				Runes: []rune{'r', 'R'},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
				Runes: []rune{'p', 'P'},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
				Runes: []rune{'k'},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
				Runes: []rune{'j'},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
				Runes: []rune{'\r', '\n'},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
