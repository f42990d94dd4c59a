package game

import (
	"github.com/unitoftime/tilelevel/engine/tilemap"
)

// Player tags the entity spawned on the level's player marker
type Player struct {
	Cell tilemap.Position
}

// Enemy tags an entity spawned on an enemy tile
type Enemy struct {
	Cell tilemap.Position
	Type tilemap.TileType
}

// Transform is an entity's position in pixels
type Transform struct {
	X, Y float64
}
