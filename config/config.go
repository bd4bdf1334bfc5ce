package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	FrameRate int // simulation frames per second (TPS)
	Title     string
}

// FighterConfig contains fighter placement and movement values
type FighterConfig struct {
	// Combat
	MaxHP int

	// Movement (pixels per frame)
	ForwardWalkSpeed  float64
	BackwardWalkSpeed float64

	// Placement
	SpawnInset float64 // Horizontal distance from the stage edge at round start
	FloorInset float64 // Distance from the bottom of the window to the fighters' feet

	// Dimensions
	Width  float64
	Height float64
}

// RoundConfig contains round timing values
type RoundConfig struct {
	StartingTimer float64 // seconds
}

// HistoryConfig controls input history retention and the on-screen trace
type HistoryConfig struct {
	Capacity   int     // segments retained per player
	LineHeight float64 // pixels between trace rows
	P1X        float64 // trace column for P1
	P2Inset    float64 // trace column for P2, measured from the right edge
	TopMargin  float64
}

// HUDConfig contains timer and health bar layout
type HUDConfig struct {
	HealthBarHeight float64
	TimerY          float64
	DrainSeconds    float32 // Duration of the health bar drain tween
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowFPS       bool
	ShowColliders bool
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Round RoundConfig
var History HistoryConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Grey   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:     640,
		Height:    480,
		FrameRate: 60,
		Title:     "fightinput",
	}

	// Placeholder values until fighters are loaded from character data
	Fighter = FighterConfig{
		MaxHP:             200,
		ForwardWalkSpeed:  10,
		BackwardWalkSpeed: 5,
		SpawnInset:        50,
		FloorInset:        50,
		Width:             32,
		Height:            64,
	}

	Round = RoundConfig{
		StartingTimer: 99.0,
	}

	History = HistoryConfig{
		Capacity:   30,
		LineHeight: 15,
		P1X:        10,
		P2Inset:    80,
		TopMargin:  25,
	}

	HUD = HUDConfig{
		HealthBarHeight: 20,
		TimerY:          25,
		DrainSeconds:    0.4,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowFPS:       true,
		ShowColliders: false,
	}
}
