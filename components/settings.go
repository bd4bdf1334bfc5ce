package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime debug toggles
type SettingsData struct {
	ShowFPS       bool
	ShowColliders bool
}

var Settings = donburi.NewComponentType[SettingsData]()
