package factory

import (
	"github.com/automoto/fightinput/archetypes"
	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton at frame 0 with a full round timer.
func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		CurrentFrame: 0,
		RoundTimer:   cfg.Round.StartingTimer,
	})
	return match
}
