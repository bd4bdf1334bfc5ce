package systems

import (
	"fmt"

	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/fonts"
	"github.com/automoto/fightinput/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the round timer and both health bars.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if match := GetMatch(ecs); match != nil {
		drawRoundTimer(screen, match)
	}

	components.HealthBar.Each(ecs.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		hp := components.Health.Get(entry)
		bar := components.HealthBar.Get(entry)
		drawHealthBar(screen, fighter.Slot, healthRatio(bar.Displayed, hp.Max))
	})
}

// healthRatio is the filled fraction of a health bar, in [0, 1].
func healthRatio(displayed float64, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	return gamemath.ClampFloat(displayed/float64(maxHP), 0, 1)
}

func drawRoundTimer(screen *ebiten.Image, match *components.MatchData) {
	face := fonts.Timer.Get()
	timeStr := fmt.Sprintf("%.0f", match.RoundTimer)

	bounds := text.BoundString(face, timeStr) //nolint:staticcheck // TODO: migrate to text/v2
	x := cfg.C.Width/2 - bounds.Dx()/2
	y := int(cfg.HUD.TimerY) - bounds.Min.Y
	text.Draw(screen, timeStr, face, x, y, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
}

// drawHealthBar draws one half-screen bar. Each bar drains toward its
// player's outer edge: P1's remaining HP hugs the centre from the left, P2's
// from the right.
func drawHealthBar(screen *ebiten.Image, slot cfg.PlayerSlot, ratio float64) {
	barLength := float32(cfg.C.Width) / 2
	barHeight := float32(cfg.HUD.HealthBarHeight)
	current := barLength * float32(ratio)

	var barX float32
	if slot == cfg.P2 {
		barX = barLength
	}

	// Missing HP
	vector.FillRect(screen, barX, 0, barLength, barHeight, cfg.White, false)

	if slot == cfg.P1 {
		vector.FillRect(screen, barX+barLength-current, 0, current, barHeight, cfg.Red, false)
		return
	}
	vector.FillRect(screen, barX, 0, current, barHeight, cfg.Blue, false)
}
