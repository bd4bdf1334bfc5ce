package systems

import (
	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/shared/inputs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KeySource reports keyboard state for the current frame.
type KeySource interface {
	AppendPressedKeys(dst []ebiten.Key) []ebiten.Key
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) AppendPressedKeys(dst []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(dst)
}

func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Keys is the key source polled by the input systems. Tests replace it.
var Keys KeySource = ebitenKeys{}

// Reusable slice for pressed keys to avoid allocations
var pressedKeys []ebiten.Key

// UpdateInput polls held keys once and records the resolved buttons in each
// player's history for the current frame.
// Must run BEFORE UpdateFighters in the system order.
func UpdateInput(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	if match == nil || match.Err != nil {
		return
	}

	pressedKeys = Keys.AppendPressedKeys(pressedKeys[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		seg := inputs.Resolve(pressedKeys, input.Keybinds, cfg.Macros, match.CurrentFrame)
		input.History.Append(seg)
	})
}

// GetMatch returns the match singleton, or nil before the scene spawns it.
func GetMatch(ecs *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// FrameButtons returns the buttons a fighter held on frame.
func FrameButtons(entry *donburi.Entry, frame int) (inputs.ButtonState, error) {
	return components.PlayerInput.Get(entry).History.Lookup(frame)
}
