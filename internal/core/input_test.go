package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionConfirm)
	f.Set(ActionUndo)
	if !f.Has(ActionConfirm) || !f.Has(ActionUndo) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionAuto) {
		t.Error("Has should be false for actions never set")
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("after Clear, frame has %d actions", len(f.Actions))
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionAuto, "Auto"},
		{ActionNewGame, "NewGame"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
