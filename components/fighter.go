package components

import (
	cfg "github.com/automoto/fightinput/config"
	"github.com/yohamta/donburi"
)

// FighterData holds a fighter's facing and movement tuning.
type FighterData struct {
	Slot              cfg.PlayerSlot
	FacingLeft        bool
	ForwardWalkSpeed  float64
	BackwardWalkSpeed float64
	Opponent          *donburi.Entry
}

var Fighter = donburi.NewComponentType[FighterData]()
