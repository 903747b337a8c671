package snapshot

import "testing"

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		target   float64
		want     float64
	}{
		{"start", 0, 2400, 0},
		{"halfway", 1200, 2400, 0.5},
		{"overshoot", 2500, 2400, 1},
		{"negative", -10, 2400, 0},
		{"no target", 100, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Frame{Distance: tt.distance, Target: tt.target}
			if got := f.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComboMultiplier(t *testing.T) {
	for combo, want := range map[int]int{0: 1, 1: 1, 4: 4} {
		f := &Frame{Combo: combo}
		if got := f.ComboMultiplier(); got != want {
			t.Errorf("ComboMultiplier() with combo %d = %d, want %d", combo, got, want)
		}
	}
}
