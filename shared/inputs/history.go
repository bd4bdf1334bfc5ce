package inputs

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of segments a History keeps before evicting.
const DefaultCapacity = 30

var (
	ErrOutOfRange  = errors.New("frame outside recorded input history")
	ErrGapNotFound = errors.New("frame not covered by any input segment")
)

// Segment is a run of consecutive frames that share one ButtonState.
type Segment struct {
	Buttons ButtonState
	Start   int // first frame, inclusive
	End     int // frame the buttons changed on, exclusive
}

// Duration is the number of frames the segment covers.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Contains reports whether frame lies in [Start, End).
func (s Segment) Contains(frame int) bool {
	return frame >= s.Start && frame < s.End
}

// extendTo returns a copy whose End is the later of the two ends.
func (s Segment) extendTo(end int) Segment {
	if end > s.End {
		s.End = end
	}
	return s
}

// History is one player's run-length compressed input timeline.
// Eviction is by segment count: a held state keeps its single segment no
// matter how long it lasts.
//
// Frames passed to Append must increase monotonically; History does not sort.
type History struct {
	segments []Segment
	capacity int
}

// NewHistory returns an empty History. A capacity <= 0 uses DefaultCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		segments: make([]Segment, 0, capacity+1),
		capacity: capacity,
	}
}

// Append records seg. If it carries the same buttons as the latest segment
// the latest segment grows instead of a new one being added. The oldest
// segments are dropped once the capacity is exceeded.
func (h *History) Append(seg Segment) {
	if n := len(h.segments); n > 0 && h.segments[n-1].Buttons == seg.Buttons {
		h.segments[n-1] = h.segments[n-1].extendTo(seg.End)
	} else {
		h.segments = append(h.segments, seg)
	}

	if excess := len(h.segments) - h.capacity; excess > 0 {
		// Compact in place so the backing array stays at capacity+1.
		n := copy(h.segments, h.segments[excess:])
		clear(h.segments[n:])
		h.segments = h.segments[:n]
	}
}

// Lookup returns the buttons held on frame.
func (h *History) Lookup(frame int) (ButtonState, error) {
	if len(h.segments) == 0 {
		return ButtonState{}, fmt.Errorf("frame number %d, history is empty: %w", frame, ErrOutOfRange)
	}
	first, last := h.segments[0], h.segments[len(h.segments)-1]
	if frame < first.Start {
		return ButtonState{}, fmt.Errorf("frame number %d < earliest input start frame %d: %w", frame, first.Start, ErrOutOfRange)
	}
	if frame >= last.End {
		return ButtonState{}, fmt.Errorf("frame number %d >= latest input end frame %d: %w", frame, last.End, ErrOutOfRange)
	}

	// Newest first: if segments ever overlapped, the most recent wins.
	for i := len(h.segments) - 1; i >= 0; i-- {
		if h.segments[i].Contains(frame) {
			return h.segments[i].Buttons, nil
		}
	}

	return ButtonState{}, fmt.Errorf("frame number %d not found in inputs: %w", frame, ErrGapNotFound)
}

// Len returns the number of retained segments.
func (h *History) Len() int {
	return len(h.segments)
}

// Capacity returns the maximum number of retained segments.
func (h *History) Capacity() int {
	return h.capacity
}

// Span returns the covered frame range [start, end).
func (h *History) Span() (start, end int, ok bool) {
	if len(h.segments) == 0 {
		return 0, 0, false
	}
	return h.segments[0].Start, h.segments[len(h.segments)-1].End, true
}

// Latest returns the most recent segment.
func (h *History) Latest() (Segment, bool) {
	if len(h.segments) == 0 {
		return Segment{}, false
	}
	return h.segments[len(h.segments)-1], true
}

// Recent returns a copy of the retained segments, newest first.
func (h *History) Recent() []Segment {
	out := make([]Segment, len(h.segments))
	for i, seg := range h.segments {
		out[len(h.segments)-1-i] = seg
	}
	return out
}

// Reset drops every segment, keeping the capacity.
func (h *History) Reset() {
	clear(h.segments)
	h.segments = h.segments[:0]
}
