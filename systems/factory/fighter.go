package factory

import (
	"github.com/automoto/fightinput/archetypes"
	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/shared/inputs"
	"github.com/automoto/fightinput/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the fighter for slot with an empty input history.
// P1 starts at the left edge of the stage and P2 at the right.
func CreateFighter(ecs *ecs.ECS, slot cfg.PlayerSlot) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	w, h := cfg.Fighter.Width, cfg.Fighter.Height
	centerX := cfg.Fighter.SpawnInset
	if slot == cfg.P2 {
		centerX = float64(cfg.C.Width) - cfg.Fighter.SpawnInset
	}
	bottomY := float64(cfg.C.Height) - cfg.Fighter.FloorInset

	obj := resolv.NewObject(centerX-w/2, bottomY-h, w, h, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		Slot:              slot,
		FacingLeft:        slot == cfg.P2,
		ForwardWalkSpeed:  cfg.Fighter.ForwardWalkSpeed,
		BackwardWalkSpeed: cfg.Fighter.BackwardWalkSpeed,
	})
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{
		Slot:     slot,
		Layout:   0,
		Keybinds: cfg.Layout(slot, 0),
		History:  inputs.NewHistory(cfg.History.Capacity),
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.MaxHP,
		Max:     cfg.Fighter.MaxHP,
	})
	components.HealthBar.SetValue(fighter, components.HealthBarData{
		Displayed: float64(cfg.Fighter.MaxHP),
		Target:    cfg.Fighter.MaxHP,
	})

	return fighter
}

// PairOpponents points each fighter at the other. Deferred until both exist.
func PairOpponents(a, b *donburi.Entry) {
	components.Fighter.Get(a).Opponent = b
	components.Fighter.Get(b).Opponent = a
}
