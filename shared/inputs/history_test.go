package inputs

import (
	"errors"
	"strings"
	"testing"
)

func TestHistoryAppendMerges(t *testing.T) {
	h := NewHistory(0)
	h.Append(Segment{StateOf(Punch), 1, 2})
	h.Append(Segment{StateOf(Punch), 2, 3})

	if h.Len() != 1 {
		t.Fatalf("Expected 1 segment after merge, got %d", h.Len())
	}
	latest, _ := h.Latest()
	expected := Segment{StateOf(Punch), 1, 3}
	if latest != expected {
		t.Errorf("Expected %+v, got %+v", expected, latest)
	}

	h.Append(Segment{StateOf(Kick), 3, 4})
	if h.Len() != 2 {
		t.Fatalf("Expected 2 segments, got %d", h.Len())
	}
	latest, _ = h.Latest()
	expected = Segment{StateOf(Kick), 3, 4}
	if latest != expected {
		t.Errorf("Expected %+v, got %+v", expected, latest)
	}
}

func TestHistoryAppendKeepsLaterEnd(t *testing.T) {
	h := NewHistory(0)
	h.Append(Segment{StateOf(Up), 0, 10})
	// A stale, shorter segment with the same buttons must not shrink the run.
	h.Append(Segment{StateOf(Up), 4, 5})

	latest, _ := h.Latest()
	if latest.End != 10 {
		t.Errorf("Expected end 10, got %d", latest.End)
	}
}

func TestHistoryMergedDurationIsSum(t *testing.T) {
	h := NewHistory(0)
	h.Append(Segment{StateOf(Down), 0, 3})
	h.Append(Segment{StateOf(Down), 3, 8})

	latest, _ := h.Latest()
	if latest.Duration() != 8 {
		t.Errorf("Expected duration 8, got %d", latest.Duration())
	}
}

func TestHistoryCapacity(t *testing.T) {
	h := NewHistory(DefaultCapacity)
	for i := 0; i < 35; i++ {
		// Alternate so no two neighbours merge.
		b := Punch
		if i%2 == 1 {
			b = Kick
		}
		h.Append(Segment{StateOf(b), i, i + 1})
		if h.Len() > DefaultCapacity {
			t.Fatalf("History grew to %d segments, cap is %d", h.Len(), DefaultCapacity)
		}
	}

	if h.Len() != DefaultCapacity {
		t.Fatalf("Expected %d segments, got %d", DefaultCapacity, h.Len())
	}
	start, end, ok := h.Span()
	if !ok || start != 5 || end != 35 {
		t.Errorf("Expected span [5,35), got [%d,%d) ok=%v", start, end, ok)
	}

	// Segment #1 covered frame 0 and has been evicted.
	if _, err := h.Lookup(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for evicted frame, got %v", err)
	}
	if _, err := h.Lookup(5); err != nil {
		t.Errorf("Expected frame 5 to be retained, got %v", err)
	}
}

func TestHistoryCapacityIgnoresDuration(t *testing.T) {
	h := NewHistory(3)
	h.Append(Segment{StateOf(Heavy), 0, 1})
	for f := 1; f < 10000; f++ {
		h.Append(Segment{StateOf(Heavy), f, f + 1})
	}
	if h.Len() != 1 {
		t.Fatalf("Expected a single long segment, got %d", h.Len())
	}
	buttons, err := h.Lookup(0)
	if err != nil {
		t.Fatalf("Expected frame 0 to be retained, got %v", err)
	}
	if buttons != StateOf(Heavy) {
		t.Errorf("Expected Heavy, got %v", buttons.Held())
	}
}

func TestHistoryLookup(t *testing.T) {
	h := NewHistory(0)
	h.Append(Segment{StateOf(Punch), 5, 7})
	// History never has a gap in normal use; build one on purpose.
	h.Append(Segment{StateOf(Kick), 10, 15})
	h.Append(Segment{StateOf(Slash), 15, 50})

	tests := []struct {
		name     string
		frame    int
		expected ButtonState
		err      error
		message  string
	}{
		{"First segment start", 5, StateOf(Punch), nil, ""},
		{"First segment last frame", 6, StateOf(Punch), nil, ""},
		{"Boundary belongs to later segment", 15, StateOf(Slash), nil, ""},
		{"Middle segment", 12, StateOf(Kick), nil, ""},
		{"Before history", 2, ButtonState{}, ErrOutOfRange, "frame number 2 < earliest input start frame 5"},
		{"In gap", 7, ButtonState{}, ErrGapNotFound, "frame number 7 not found in inputs"},
		{"At end", 50, ButtonState{}, ErrOutOfRange, "frame number 50 >= latest input end frame 50"},
		{"Past end", 100, ButtonState{}, ErrOutOfRange, "frame number 100 >= latest input end frame 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Lookup(tt.frame)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if got != tt.expected {
					t.Errorf("Expected %v, got %v", tt.expected.Held(), got.Held())
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected %v, got %v", tt.err, err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected message containing %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestHistoryLookupEmpty(t *testing.T) {
	h := NewHistory(0)
	if _, err := h.Lookup(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange on empty history, got %v", err)
	}
	if _, _, ok := h.Span(); ok {
		t.Error("Expected no span on empty history")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	frames := [][]string{
		{}, {}, {"z"}, {"z"}, {"z", "7"}, {"7", "9"}, {"7", "9"},
		{"f"}, {"f"}, {"f"}, {"8"}, {"8", "9"}, {"8", "9"}, {}, {"j", "space"},
	}

	h := NewHistory(0)
	expected := make([]ButtonState, len(frames))
	for f, keys := range frames {
		seg := Resolve(keys, testBinds, testMacros, f)
		expected[f] = seg.Buttons
		h.Append(seg)
	}

	for f := range frames {
		got, err := h.Lookup(f)
		if err != nil {
			t.Fatalf("frame %d: unexpected error %v", f, err)
		}
		if got != expected[f] {
			t.Errorf("frame %d: expected %v, got %v", f, expected[f].Held(), got.Held())
		}
	}
}

func TestHistoryRecentIsNewestFirst(t *testing.T) {
	h := NewHistory(0)
	h.Append(Segment{StateOf(Punch), 0, 1})
	h.Append(Segment{StateOf(Kick), 1, 2})
	h.Append(Segment{StateOf(Slash), 2, 3})

	recent := h.Recent()
	if len(recent) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(recent))
	}
	if recent[0].Start != 2 || recent[2].Start != 0 {
		t.Errorf("Expected newest first, got starts %d..%d", recent[0].Start, recent[2].Start)
	}

	// Mutating the copy leaves the history untouched.
	recent[0].End = 99
	if latest, _ := h.Latest(); latest.End != 3 {
		t.Errorf("Expected history end 3, got %d", latest.End)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Expected empty history after reset, got %d", h.Len())
	}
}
