package factory

import (
	"github.com/automoto/fightinput/archetypes"
	"github.com/automoto/fightinput/components"
	"github.com/automoto/fightinput/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid stage boundary the fighters cannot walk through.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// StageWallThickness is the width of each stage boundary wall.
const StageWallThickness = 16

// CreateStageBounds walls off both sides of a width x height stage. The walls
// sit inside the stage because resolv only tracks objects within the space.
func CreateStageBounds(ecs *ecs.ECS, width, height float64) {
	CreateWall(ecs, 0, 0, StageWallThickness, height)
	CreateWall(ecs, width-StageWallThickness, 0, StageWallThickness, height)
}
