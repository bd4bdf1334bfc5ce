package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/systems"
	"github.com/automoto/fightinput/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FightScene runs one two-player match on a flat stage.
type FightScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewFightScene() *FightScene {
	return &FightScene{}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)
	if fs.Err() != nil {
		return
	}
	fs.ecs.Update()
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// Err returns the failure that stopped the match, if any.
func (fs *FightScene) Err() error {
	if fs.ecs == nil {
		return nil
	}
	if match := systems.GetMatch(fs.ecs); match != nil {
		return match.Err
	}
	return nil
}

func (fs *FightScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Per frame: read input, record it, then act on it. UpdateMatch advances
	// the frame counter and must stay last.
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateFighters)
	ecs.AddSystem(systems.UpdateHealthBars)
	ecs.AddSystem(systems.UpdateMatch)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawInputHistory)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	fs.ecs = ecs

	factory.CreateMatch(fs.ecs)
	factory.CreateSpace(fs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateStageBounds(fs.ecs, float64(cfg.C.Width), float64(cfg.C.Height))

	p1 := factory.CreateFighter(fs.ecs, cfg.P1)
	p2 := factory.CreateFighter(fs.ecs, cfg.P2)
	factory.PairOpponents(p1, p2)
}
