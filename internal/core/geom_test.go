package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, want 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	inside := [][2]int{{2, 3}, {11, 7}, {5, 5}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("expected (%d,%d) inside %+v", p[0], p[1], r)
		}
	}

	outside := [][2]int{{1, 3}, {2, 2}, {12, 3}, {2, 8}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("expected (%d,%d) outside %+v", p[0], p[1], r)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d", got)
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v", got)
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs wrong")
	}
	if AbsF(-1.25) != 1.25 {
		t.Error("AbsF wrong")
	}
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Error("Min wrong")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max wrong")
	}
}
