package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// keyID identifies a physical terminal key. Runes are folded to lower case so
// Shift does not change which button a key produces.
type keyID struct {
	key  tcell.Key
	char rune
}

func keyOf(ev *tcell.EventKey) keyID {
	if ev.Key() == tcell.KeyRune {
		return keyID{key: tcell.KeyRune, char: unicode.ToLower(ev.Rune())}
	}
	return keyID{key: ev.Key()}
}

func runeKey(r rune) keyID {
	return keyID{key: tcell.KeyRune, char: r}
}

// defaultHoldWindow outlasts the usual ~500ms delay before a terminal starts
// auto-repeating a held key, so a hold is not split at its first repeat.
const defaultHoldWindow = 600 * time.Millisecond

// holdTracker approximates held keys from key events. Terminals report
// presses and auto-repeats but never releases, so a key counts as held until
// window has passed without another event for it.
type holdTracker struct {
	window   time.Duration
	lastSeen map[keyID]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window:   window,
		lastSeen: make(map[keyID]time.Time),
	}
}

func (h *holdTracker) press(k keyID, at time.Time) {
	h.lastSeen[k] = at
}

// held appends the keys still held at now to dst and forgets expired ones.
func (h *holdTracker) held(dst []keyID, now time.Time) []keyID {
	for k, at := range h.lastSeen {
		if now.Sub(at) > h.window {
			delete(h.lastSeen, k)
			continue
		}
		dst = append(dst, k)
	}
	return dst
}
