package termview

import (
	"testing"

	"github.com/automoto/skateturtle/components"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/gdamore/tcell/v2"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want cfg.ActionID
		ok   bool
	}{
		{"space jumps", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), cfg.ActionJump, true},
		{"upper Q spins", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), cfg.ActionSpin, true},
		{"f throws", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), cfg.ActionThrow, true},
		{"escape pauses", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), cfg.ActionPause, true},
		{"enter selects", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), cfg.ActionMenuSelect, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), cfg.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Lookup() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeysHoldThenRelease(t *testing.T) {
	var k Keys
	if !k.Press(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("Press should accept a bound key")
	}

	hold := cfg.Input.TerminalHoldFrames
	if hold < 1 {
		hold = 1
	}
	for i := 0; i < hold; i++ {
		var pressed [cfg.ActionCount]bool
		method, ok := k.Poll(&pressed)
		if !ok || !pressed[cfg.ActionJump] {
			t.Fatalf("poll %d: jump should still be held", i)
		}
		if method != components.InputTerminal {
			t.Errorf("Expected terminal input method, got %v", method)
		}
	}

	var pressed [cfg.ActionCount]bool
	if _, ok := k.Poll(&pressed); ok || pressed[cfg.ActionJump] {
		t.Error("Jump should be released after the hold expires")
	}
}
