package systems

import (
	"fmt"

	"github.com/automoto/fightinput/components"
	"github.com/automoto/fightinput/shared/gamemath"
	"github.com/automoto/fightinput/shared/inputs"
	"github.com/automoto/fightinput/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters moves every fighter using the buttons recorded for the
// current frame. A history lookup failure stops the match rather than
// treating the frame as neutral.
func UpdateFighters(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	if match == nil || match.Err != nil {
		return
	}

	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		if match.Err != nil {
			return
		}
		fighter := components.Fighter.Get(entry)

		buttons, err := FrameButtons(entry, match.CurrentFrame)
		if err != nil {
			match.Fail(fmt.Errorf("%v update: %w", fighter.Slot, err))
			return
		}

		if buttons.Pressed(inputs.Left) || buttons.Pressed(inputs.Right) {
			walk(entry, fighter, buttons)
		}
		faceOpponent(entry, fighter)
	})
}

func walk(entry *donburi.Entry, fighter *components.FighterData, buttons inputs.ButtonState) {
	obj := components.Object.Get(entry)

	dx := gamemath.WalkDelta(fighter.FacingLeft,
		buttons.Pressed(inputs.Left), buttons.Pressed(inputs.Right),
		fighter.ForwardWalkSpeed, fighter.BackwardWalkSpeed)
	if dx == 0 {
		return
	}

	// Stop flush against the stage walls
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			dx = contact.X()
		}
	}
	obj.X += dx
	obj.Update()
}

// faceOpponent turns the fighter toward its opponent.
func faceOpponent(entry *donburi.Entry, fighter *components.FighterData) {
	if fighter.Opponent == nil || !fighter.Opponent.Valid() {
		return
	}
	self := components.Object.Get(entry)
	other := components.Object.Get(fighter.Opponent)
	fighter.FacingLeft = gamemath.FacesLeft(self.X+self.W/2, other.X+other.W/2)
}
