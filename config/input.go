package config

import (
	"fmt"

	"github.com/automoto/fightinput/shared/inputs"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSlot identifies a player's side of the match
type PlayerSlot int

const (
	P1 PlayerSlot = iota
	P2
	PlayerSlotCount // Must be last - used for array sizing
)

func (s PlayerSlot) String() string {
	switch s {
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return fmt.Sprintf("P%d", int(s)+1)
	}
}

// KeyLayouts holds the keybinding tables available to each slot.
// Index 0 is the layout used at session start; the rest can be cycled
// through at runtime with the layout debug key.
var KeyLayouts [PlayerSlotCount][]inputs.Keybinds[ebiten.Key]

// Macros expands each macro button into the primitives it presses
var Macros inputs.MacroTable

// DebugKeyConfig holds the keys for runtime debug toggles
type DebugKeyConfig struct {
	CycleP1Layout ebiten.Key
	CycleP2Layout ebiten.Key
	ToggleFPS     ebiten.Key
	ToggleCollide ebiten.Key
	Hurt          ebiten.Key // Debug: damage both fighters
}

var DebugKeys DebugKeyConfig

func init() {
	Macros = inputs.DefaultMacros()
	if err := Macros.Validate(); err != nil {
		panic("invalid macro table: " + err.Error())
	}

	KeyLayouts[P1] = []inputs.Keybinds[ebiten.Key]{
		{
			ebiten.KeyDigit7: inputs.Left,
			ebiten.KeyDigit8: inputs.Down,
			ebiten.KeyDigit9: inputs.Right,
			ebiten.KeySpace:  inputs.Up,
			ebiten.KeyZ:      inputs.Punch,
			ebiten.KeyX:      inputs.Kick,
			ebiten.KeyC:      inputs.Slash,
			ebiten.KeyV:      inputs.Heavy,
			ebiten.KeyD:      inputs.Dust,
			ebiten.KeyF:      inputs.MacroPKS,
			ebiten.KeyG:      inputs.MacroPK,
			ebiten.KeyH:      inputs.MacroPD,
			ebiten.KeyJ:      inputs.MacroPKSH,
		},
		// WASD layout for keyboards without a comfortable 7-8-9 row
		{
			ebiten.KeyA: inputs.Left,
			ebiten.KeyS: inputs.Down,
			ebiten.KeyD: inputs.Right,
			ebiten.KeyW: inputs.Up,
			ebiten.KeyU: inputs.Punch,
			ebiten.KeyI: inputs.Kick,
			ebiten.KeyO: inputs.Slash,
			ebiten.KeyP: inputs.Heavy,
			ebiten.KeyK: inputs.Dust,
			ebiten.KeyJ: inputs.MacroPKS,
			ebiten.KeyL: inputs.MacroPK,
		},
	}

	KeyLayouts[P2] = []inputs.Keybinds[ebiten.Key]{
		{
			ebiten.KeyArrowLeft:  inputs.Left,
			ebiten.KeyArrowDown:  inputs.Down,
			ebiten.KeyArrowRight: inputs.Right,
			ebiten.KeyArrowUp:    inputs.Up,
			ebiten.KeyDigit1:     inputs.Punch,
			ebiten.KeyDigit2:     inputs.Kick,
			ebiten.KeyDigit3:     inputs.Slash,
			ebiten.KeyDigit4:     inputs.Heavy,
			ebiten.KeyDigit5:     inputs.Dust,
			ebiten.KeyDigit6:     inputs.MacroPKS,
			ebiten.KeyQ:          inputs.MacroPK,
			ebiten.KeyR:          inputs.MacroPD,
			ebiten.KeyE:          inputs.MacroPKSH,
		},
		// Numpad layout
		{
			ebiten.KeyNumpad4:        inputs.Left,
			ebiten.KeyNumpad5:        inputs.Down,
			ebiten.KeyNumpad6:        inputs.Right,
			ebiten.KeyNumpad8:        inputs.Up,
			ebiten.KeyNumpad1:        inputs.Punch,
			ebiten.KeyNumpad2:        inputs.Kick,
			ebiten.KeyNumpad3:        inputs.Slash,
			ebiten.KeyNumpad0:        inputs.Heavy,
			ebiten.KeyNumpadDecimal:  inputs.Dust,
			ebiten.KeyNumpadEnter:    inputs.MacroPKS,
			ebiten.KeyNumpadAdd:      inputs.MacroPK,
			ebiten.KeyNumpadSubtract: inputs.MacroPD,
		},
	}

	DebugKeys = DebugKeyConfig{
		CycleP1Layout: ebiten.KeyF1,
		CycleP2Layout: ebiten.KeyF2,
		ToggleFPS:     ebiten.KeyF3,
		ToggleCollide: ebiten.KeyF4,
		Hurt:          ebiten.KeyF5,
	}
}

// Layout returns layout index i for slot, wrapping around the available layouts.
func Layout(slot PlayerSlot, i int) inputs.Keybinds[ebiten.Key] {
	layouts := KeyLayouts[slot]
	return layouts[i%len(layouts)]
}
