package systems

import (
	"log"

	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// debugDamage is the HP removed from both fighters by the hurt debug key.
const debugDamage = 10

// UpdateSettings handles the debug keys: keybinding layout swaps, overlay
// toggles and test damage. Runs before UpdateInput so a swapped layout
// applies to the same frame.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)

	if Keys.IsKeyJustPressed(cfg.DebugKeys.ToggleFPS) {
		settings.ShowFPS = !settings.ShowFPS
	}
	if Keys.IsKeyJustPressed(cfg.DebugKeys.ToggleCollide) {
		settings.ShowColliders = !settings.ShowColliders
	}
	if Keys.IsKeyJustPressed(cfg.DebugKeys.CycleP1Layout) {
		CycleLayout(ecs, cfg.P1)
	}
	if Keys.IsKeyJustPressed(cfg.DebugKeys.CycleP2Layout) {
		CycleLayout(ecs, cfg.P2)
	}
	if Keys.IsKeyJustPressed(cfg.DebugKeys.Hurt) {
		tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
			ApplyDamage(e, debugDamage)
		})
	}
}

// CycleLayout switches slot to its next keybinding layout. History is kept.
func CycleLayout(ecs *ecs.ECS, slot cfg.PlayerSlot) {
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		if input.Slot != slot {
			return
		}
		input.Layout = (input.Layout + 1) % len(cfg.KeyLayouts[slot])
		input.Keybinds = cfg.Layout(slot, input.Layout)
		log.Printf("%v keybinds switched to layout %d", slot, input.Layout)
	})
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ShowFPS:       cfg.Debug.ShowFPS,
			ShowColliders: cfg.Debug.ShowColliders,
		})
	}
	return components.Settings.Get(entry)
}
