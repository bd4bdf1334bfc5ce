package inputs

import "testing"

func TestDirectionArrow(t *testing.T) {
	tests := []struct {
		buttons  []Button
		expected string
	}{
		{nil, " "},
		{[]Button{Left}, "←"},
		{[]Button{Left, Up}, "↖"},
		{[]Button{Left, Down}, "↙"},
		{[]Button{Right}, "→"},
		{[]Button{Right, Up}, "↗"},
		{[]Button{Right, Down}, "↘"},
		{[]Button{Down}, "↓"},
		{[]Button{Up}, "↑"},
		{[]Button{Punch, Kick}, " "},
	}

	for _, tt := range tests {
		if got := DirectionArrow(StateOf(tt.buttons...)); got != tt.expected {
			t.Errorf("%v: expected %q, got %q", tt.buttons, tt.expected, got)
		}
	}
}

func TestAttackLetters(t *testing.T) {
	tests := []struct {
		buttons  []Button
		expected string
	}{
		{nil, ""},
		{[]Button{Dust, Punch}, "PD"},
		{[]Button{Heavy, Slash, Kick, Punch, Dust}, "PKSHD"},
		{[]Button{Left, MacroPK}, ""},
	}

	for _, tt := range tests {
		if got := AttackLetters(StateOf(tt.buttons...)); got != tt.expected {
			t.Errorf("%v: expected %q, got %q", tt.buttons, tt.expected, got)
		}
	}
}

func TestTrace(t *testing.T) {
	h := NewHistory(0)
	h.Append(Segment{StateOf(), 0, 4})
	h.Append(Segment{StateOf(Right, Down, Punch, Kick, MacroPK), 4, 6})
	h.Append(Segment{StateOf(Left), 6, 7})

	lines := Trace(h)
	expected := []string{"←  1", "↘ PK 2", "   4"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d", len(expected), len(lines))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestSegmentLabel(t *testing.T) {
	seg := Segment{StateOf(Right, Down, Punch, Kick, MacroPK), 4, 6}
	if got := SegmentLabel(seg); got != "PK 2" {
		t.Errorf("Expected %q, got %q", "PK 2", got)
	}
	if got := FormatSegment(seg); got != "↘ PK 2" {
		t.Errorf("Expected %q, got %q", "↘ PK 2", got)
	}
}
