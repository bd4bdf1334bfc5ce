package inputs

import (
	"errors"
	"fmt"
)

var (
	ErrNotMacro       = errors.New("macro table key is not a macro button")
	ErrMacroOfMacro   = errors.New("macro expands to a non-primitive button")
	ErrEmptyExpansion = errors.New("macro expands to nothing")
)

// Keybinds maps a physical key identifier to the Button it produces.
// K is whatever the input backend reports: ebiten.Key, a terminal rune, etc.
type Keybinds[K comparable] map[K]Button

// MacroTable maps a macro Button to the ordered primitives it presses.
type MacroTable map[Button][]Button

// Validate checks that every key is a macro and every member a primitive.
func (m MacroTable) Validate() error {
	for macro, expansion := range m {
		if !macro.IsMacro() {
			return fmt.Errorf("%v: %w", macro, ErrNotMacro)
		}
		if len(expansion) == 0 {
			return fmt.Errorf("%v: %w", macro, ErrEmptyExpansion)
		}
		for _, b := range expansion {
			if !b.IsPrimitive() {
				return fmt.Errorf("%v -> %v: %w", macro, b, ErrMacroOfMacro)
			}
		}
	}
	return nil
}

// Resolve turns the keys held on one frame into a one-frame Segment.
// Keybinds are expanded first, then macros, then SOCD cleaning runs on the
// fully expanded state. Keys with no binding are ignored.
func Resolve[K comparable](held []K, binds Keybinds[K], macros MacroTable, frame int) Segment {
	var state ButtonState

	for _, key := range held {
		if b, ok := binds[key]; ok && b.Valid() {
			state[b] = true
		}
	}

	// Walk macros in enumeration order so expansion never depends on map order.
	for macro := firstMacro; macro < ButtonCount; macro++ {
		if !state[macro] {
			continue
		}
		for _, b := range macros[macro] {
			if b.IsPrimitive() {
				state[b] = true
			}
		}
	}

	return Segment{
		Buttons: CleanSOCD(state),
		Start:   frame,
		End:     frame + 1,
	}
}

// CleanSOCD resolves simultaneous opposite cardinal directions.
// Left+Right becomes horizontal neutral and Up+Down becomes vertical neutral.
// This is the only policy; last-input priority and up-priority are not offered.
func CleanSOCD(s ButtonState) ButtonState {
	if s[Left] && s[Right] {
		s[Left] = false
		s[Right] = false
	}
	if s[Up] && s[Down] {
		s[Up] = false
		s[Down] = false
	}
	return s
}

// DefaultMacros returns the standard macro set: PK, PD, PKS and PKSH.
func DefaultMacros() MacroTable {
	return MacroTable{
		MacroPK:   {Punch, Kick},
		MacroPD:   {Punch, Dust},
		MacroPKS:  {Punch, Kick, Slash},
		MacroPKSH: {Punch, Kick, Slash, Heavy},
	}
}
