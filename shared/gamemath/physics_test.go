package gamemath

import "testing"

func TestWalkDelta(t *testing.T) {
	tests := []struct {
		name       string
		facingLeft bool
		left       bool
		right      bool
		expected   float64
	}{
		{"Facing right, hold right walks forward", false, false, true, 10},
		{"Facing right, hold left walks back", false, true, false, -5},
		{"Facing left, hold left walks forward", true, true, false, -10},
		{"Facing left, hold right walks back", true, false, true, 5},
		{"Neutral", false, false, false, 0},
		{"Both held", true, true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WalkDelta(tt.facingLeft, tt.left, tt.right, 10, 5)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFacesLeft(t *testing.T) {
	if !FacesLeft(100, 50) {
		t.Error("Expected fighter right of opponent to face left")
	}
	if FacesLeft(50, 100) {
		t.Error("Expected fighter left of opponent to face right")
	}
	if !FacesLeft(70, 70) {
		t.Error("Expected overlapping fighters to count as right of opponent")
	}
}

func TestClampFloat(t *testing.T) {
	if got := ClampFloat(-3, 0, 10); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := ClampFloat(12, 0, 10); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
	if got := ClampFloat(4, 0, 10); got != 4 {
		t.Errorf("Expected 4, got %v", got)
	}
}
