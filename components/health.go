package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// HealthBarData drives the displayed HP toward the real value.
type HealthBarData struct {
	Displayed float64
	Target    int          // HP value the running tween ends on
	Tween     *gween.Tween // nil when the bar is at rest
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
