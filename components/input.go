package components

import (
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/shared/inputs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PlayerInputData binds a player slot to its keybinding table and input history.
// Keybinds may be swapped between frames; History lives for the whole session.
type PlayerInputData struct {
	Slot     cfg.PlayerSlot
	Layout   int                         // Index into cfg.KeyLayouts[Slot]
	Keybinds inputs.Keybinds[ebiten.Key] // Active table, passed to the resolver each frame
	History  *inputs.History             // Run-length compressed per-frame button states
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
