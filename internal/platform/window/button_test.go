package window

import (
	"image"
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestButtonVisible(t *testing.T) {
	tests := []struct {
		phase core.Phase
		want  []ButtonKind
	}{
		{core.PhaseNotStarted, []ButtonKind{ButtonStart}},
		{core.PhaseRunning, []ButtonKind{ButtonPause}},
		{core.PhasePaused, []ButtonKind{ButtonContinue, ButtonRestart}},
		{core.PhaseOver, []ButtonKind{ButtonRestart}},
	}

	for _, tc := range tests {
		var got []ButtonKind
		for _, b := range buttons {
			if b.visible(tc.phase) {
				got = append(got, b.Kind)
			}
		}
		if len(got) != len(tc.want) {
			t.Errorf("phase %v: visible = %v, expected %v", tc.phase, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("phase %v: visible = %v, expected %v", tc.phase, got, tc.want)
				break
			}
		}
	}
}

func TestButtonAt(t *testing.T) {
	startSlot := image.Pt(50, 30)
	pauseSlot := image.Pt(170, 30)
	restartSlot := image.Pt(280, 30)

	tests := []struct {
		name       string
		phase      core.Phase
		pt         image.Point
		wantOK     bool
		wantKind   ButtonKind
		wantAction core.Action
	}{
		{"start before the round", core.PhaseNotStarted, startSlot, true, ButtonStart, core.ActionStart},
		{"restart hidden before the round", core.PhaseNotStarted, restartSlot, false, 0, 0},
		{"start hidden while running", core.PhaseRunning, startSlot, false, 0, 0},
		{"pause while running", core.PhaseRunning, pauseSlot, true, ButtonPause, core.ActionPause},
		{"continue while paused", core.PhasePaused, pauseSlot, true, ButtonContinue, core.ActionPause},
		{"restart while paused", core.PhasePaused, restartSlot, true, ButtonRestart, core.ActionRestart},
		{"restart after game over", core.PhaseOver, restartSlot, true, ButtonRestart, core.ActionRestart},
		{"pause hidden after game over", core.PhaseOver, pauseSlot, false, 0, 0},
		{"gap between buttons", core.PhasePaused, image.Pt(115, 30), false, 0, 0},
		{"below the row", core.PhaseNotStarted, image.Pt(50, 60), false, 0, 0},
		{"top left corner is inside", core.PhaseNotStarted, image.Pt(10, 10), true, ButtonStart, core.ActionStart},
		{"right edge is outside", core.PhaseNotStarted, image.Pt(110, 30), false, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := buttonAt(tc.phase, tc.pt)
			if ok != tc.wantOK {
				t.Fatalf("buttonAt() ok = %v, expected %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if b.Kind != tc.wantKind || b.Action != tc.wantAction {
				t.Errorf("buttonAt() = %v/%v, expected %v/%v", b.Kind, b.Action, tc.wantKind, tc.wantAction)
			}
		})
	}
}
