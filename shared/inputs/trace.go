package inputs

import (
	"strconv"
	"strings"
)

// attackLetters is the fixed display order of the attack buttons.
var attackLetters = []struct {
	button Button
	letter byte
}{
	{Punch, 'P'},
	{Kick, 'K'},
	{Slash, 'S'},
	{Heavy, 'H'},
	{Dust, 'D'},
}

// DirectionArrow returns the compass arrow for the held directions, or a
// single space for neutral. The state is expected to be SOCD-cleaned.
func DirectionArrow(s ButtonState) string {
	switch {
	case s[Left] && s[Up]:
		return "↖"
	case s[Left] && s[Down]:
		return "↙"
	case s[Left]:
		return "←"
	case s[Right] && s[Up]:
		return "↗"
	case s[Right] && s[Down]:
		return "↘"
	case s[Right]:
		return "→"
	case s[Down]:
		return "↓"
	case s[Up]:
		return "↑"
	default:
		return " "
	}
}

// AttackLetters returns the letters of the held attack buttons in P K S H D order.
func AttackLetters(s ButtonState) string {
	var b strings.Builder
	for _, a := range attackLetters {
		if s[a.button] {
			b.WriteByte(a.letter)
		}
	}
	return b.String()
}

// SegmentLabel renders the part of a trace line after the arrow:
// "<letters> <duration>".
func SegmentLabel(seg Segment) string {
	return AttackLetters(seg.Buttons) + " " + strconv.Itoa(seg.Duration())
}

// FormatSegment renders a segment as "<arrow> <letters> <duration>".
func FormatSegment(seg Segment) string {
	return DirectionArrow(seg.Buttons) + " " + SegmentLabel(seg)
}

// Trace formats every retained segment of h, newest first.
func Trace(h *History) []string {
	recent := h.Recent()
	lines := make([]string, len(recent))
	for i, seg := range recent {
		lines[i] = FormatSegment(seg)
	}
	return lines
}
