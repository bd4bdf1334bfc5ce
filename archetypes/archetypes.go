package archetypes

import (
	"github.com/automoto/fightinput/components"
	cfg "github.com/automoto/fightinput/config"
	"github.com/automoto/fightinput/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.PlayerInput,
		components.Object,
		components.Health,
		components.HealthBar,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
