package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFire)
	f.Release(ActionLeft)

	if !f.Has(ActionFire) {
		t.Error("Has(Fire) should be true")
	}
	if !f.Released(ActionLeft) {
		t.Error("Released(Left) should be true")
	}
	if f.Has(ActionLeft) {
		t.Error("a release is not a press")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionFire) || !clone.Released(ActionLeft) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) || f.Released(ActionFire) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionFire, "Fire"},
		{ActionHard, "Hard"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
	if !ActionUp.IsMovement() || ActionFire.IsMovement() {
		t.Error("IsMovement() misclassifies actions")
	}
}
