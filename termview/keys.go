package termview

import (
	"sync"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses but never releases, so a press is held
// for cfg.Input.TerminalHoldFrames polls and then let go.
type Keys struct {
	mu   sync.Mutex
	held [cfg.ActionCount]int
}

var keyActions = map[tcell.Key]cfg.ActionID{
	tcell.KeyEscape:     cfg.ActionPause,
	tcell.KeyEnter:      cfg.ActionMenuSelect,
	tcell.KeyUp:         cfg.ActionMenuUp,
	tcell.KeyDown:       cfg.ActionMenuDown,
	tcell.KeyBackspace:  cfg.ActionMenuBack,
	tcell.KeyBackspace2: cfg.ActionMenuBack,
}

// Lookup maps a key event to its action.
func Lookup(ev *tcell.EventKey) (cfg.ActionID, bool) {
	if ev.Key() != tcell.KeyRune {
		id, ok := keyActions[ev.Key()]
		return id, ok
	}
	for id, binding := range cfg.Input.Bindings {
		for _, r := range binding.Runes {
			if r == ev.Rune() {
				return id, true
			}
		}
	}
	return cfg.ActionNone, false
}

// Press records a key event. It is safe to call from the event goroutine.
func (k *Keys) Press(ev *tcell.EventKey) bool {
	id, ok := Lookup(ev)
	if !ok {
		return false
	}
	hold := cfg.Input.TerminalHoldFrames
	if hold < 1 {
		hold = 1
	}
	k.mu.Lock()
	k.held[id] = hold
	k.mu.Unlock()
	return true
}

// Poll is a systems.Poller.
func (k *Keys) Poll(pressed *[cfg.ActionCount]bool) (components.InputMethod, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var active bool
	for id := range k.held {
		if k.held[id] > 0 {
			pressed[id] = true
			k.held[id]--
			active = true
		}
	}
	return components.InputTerminal, active
}
