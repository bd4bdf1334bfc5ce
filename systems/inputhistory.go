package systems

import (
	"fmt"
	"math"

	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/fonts"
	"github.com/automoto/fightinput/shared/inputs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Trace arrows are drawn as vectors: the Go font has no diagonal arrow glyphs.
const (
	arrowSize  = 10 // length of the arrow, in pixels
	arrowHead  = 4  // length of each arrowhead stroke
	arrowWidth = 1.5
	arrowCell  = arrowSize + 6 // horizontal space reserved before the label
)

// DrawInputHistory prints each player's retained input segments, newest at
// the top. P1's column is on the left edge and P2's on the right.
func DrawInputHistory(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Trace.Get()
	labelFace := fonts.Small.Get()

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		x := traceColumn(input.Slot)

		label := fmt.Sprintf("%v layout %d", input.Slot, input.Layout)
		text.Draw(screen, label, labelFace, int(x), int(cfg.History.TopMargin), cfg.Grey) //nolint:staticcheck // TODO: migrate to text/v2

		for i, seg := range input.History.Recent() {
			y := cfg.History.TopMargin + cfg.History.LineHeight*float64(i+1)
			if dx, dy, ok := arrowDirection(seg.Buttons); ok {
				drawArrow(screen, float32(x)+arrowSize/2, float32(y)-arrowSize/2, dx, dy)
			}
			text.Draw(screen, inputs.SegmentLabel(seg), face, int(x)+arrowCell, int(y), cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
		}
	})
}

// arrowDirection returns the unit screen-space direction (y down) of the held
// directions. ok is false for neutral.
func arrowDirection(s inputs.ButtonState) (dx, dy float32, ok bool) {
	if s.Pressed(inputs.Left) {
		dx = -1
	} else if s.Pressed(inputs.Right) {
		dx = 1
	}
	if s.Pressed(inputs.Up) {
		dy = -1
	} else if s.Pressed(inputs.Down) {
		dy = 1
	}
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}
	return dx, dy, true
}

// drawArrow strokes an arrow centred on (cx, cy) pointing along (dx, dy).
func drawArrow(screen *ebiten.Image, cx, cy, dx, dy float32) {
	half := float32(arrowSize) / 2
	tipX, tipY := cx+dx*half, cy+dy*half
	vector.StrokeLine(screen, cx-dx*half, cy-dy*half, tipX, tipY, arrowWidth, cfg.White, true)

	// Head strokes run back from the tip at 45 degrees either side of the shaft.
	const c = math.Sqrt2 / 2
	for _, side := range []float32{-1, 1} {
		hx := -dx*c - side*dy*c
		hy := -dy*c + side*dx*c
		vector.StrokeLine(screen, tipX, tipY, tipX+hx*arrowHead, tipY+hy*arrowHead, arrowWidth, cfg.White, true)
	}
}

func traceColumn(slot cfg.PlayerSlot) float64 {
	if slot == cfg.P1 {
		return cfg.History.P1X
	}
	return float64(cfg.C.Width) - cfg.History.P2Inset
}
