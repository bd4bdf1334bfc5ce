package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/fonts"
	"github.com/automoto/fightinput/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Err() error
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewFightScene(),
	}
}

// Update steps the scene one frame. A scene failure ends the run.
func (g *Game) Update() error {
	g.scene.Update()
	return g.scene.Err()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.Trace, goregular.TTF, 14); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.Timer, goregular.TTF, 36); err != nil {
		return err
	}
	return fonts.LoadFont(fonts.Small, goregular.TTF)
}

func main() {
	flag.BoolVar(&config.Debug.ShowFPS, "fps", config.Debug.ShowFPS, "Show the FPS counter")
	flag.BoolVar(&config.Debug.ShowColliders, "debug", config.Debug.ShowColliders, "Draw collision boxes")
	flag.Parse()

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.FrameRate)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
