package systems

import (
	cfg "github.com/automoto/fightinput/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch ticks the round timer and advances the frame counter.
// Must run LAST so every other system sees the same frame number.
func UpdateMatch(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	if match == nil || match.Err != nil {
		return
	}

	// TODO: round end (timeout, KO) once rounds are scored
	match.RoundTimer -= 1.0 / float64(cfg.C.FrameRate)
	if match.RoundTimer < 0 {
		match.RoundTimer = 0
	}

	match.CurrentFrame++
}
