package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)

	if settings.ShowFPS {
		fps := fmt.Sprintf("%dFPS", int(ebiten.ActualFPS()))
		ebitenutil.DebugPrintAt(screen, fps, 5, cfg.C.Height-20)
	}

	if !settings.ShowColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.Color(cfg.Cyan)
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.Grey
		} else if obj.HasTags(tags.ResolvFighter) {
			c = cfg.Yellow
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
