package core

import "testing"

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJudge)
	f.Set(ActionRise)
	f.Set(ActionNone)
	f.Set(ActionJudge)

	got := f.Actions()
	expected := []Action{ActionJudge, ActionRise, ActionJudge}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	if !f.Has(ActionRise) {
		t.Error("Has(ActionRise) should be true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRise)
	clone := f.Clone()

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if clone.Len() != 1 || !clone.Has(ActionRise) {
		t.Error("Clone should not be affected by clearing the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionRise:  "Rise",
		ActionJudge: "Judge",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, expected := range tests {
		if got := a.String(); got != expected {
			t.Errorf("%d.String() = %q, expected %q", int(a), got, expected)
		}
	}
}
