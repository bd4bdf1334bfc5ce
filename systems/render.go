package systems

import (
	"image/color"

	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// facingMarkWidth is the width of the strip that shows which way a fighter faces.
const facingMarkWidth = 6

var fighterColors = [cfg.PlayerSlotCount]color.RGBA{
	cfg.P1: cfg.Red,
	cfg.P2: cfg.Blue,
}

// DrawFighters draws each fighter as a filled box with a light strip on the
// side it is facing.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		obj := components.Object.Get(entry)

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, h, fighterColors[fighter.Slot], false)

		markX := x + w - facingMarkWidth
		if fighter.FacingLeft {
			markX = x
		}
		vector.FillRect(screen, markX, y, facingMarkWidth, h/4, cfg.White, false)
	})
}
