package systems

import (
	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyDamage lowers a fighter's HP, clamped to [0, Max].
func ApplyDamage(entry *donburi.Entry, amount int) {
	hp := components.Health.Get(entry)
	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
}

// UpdateHealthBars eases each displayed HP value toward the fighter's real HP.
func UpdateHealthBars(ecs *ecs.ECS) {
	dt := 1 / float32(cfg.C.FrameRate)

	components.HealthBar.Each(ecs.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		bar := components.HealthBar.Get(entry)

		if hp.Current != bar.Target {
			// Restart from wherever the bar is now so a second hit mid-drain stays smooth
			bar.Tween = gween.New(float32(bar.Displayed), float32(hp.Current), cfg.HUD.DrainSeconds, ease.OutQuad)
			bar.Target = hp.Current
		}
		if bar.Tween == nil {
			return
		}

		current, finished := bar.Tween.Update(dt)
		bar.Displayed = float64(current)
		if finished {
			bar.Displayed = float64(bar.Target)
			bar.Tween = nil
		}
	})
}
