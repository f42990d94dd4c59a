package tilemap

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Empty TileType = iota
	PlayerSpawn
	Ground
	Wall
	Water
	Grass
	Enemy
)

var tileNames = map[TileType]string{
	Empty: "empty",
	PlayerSpawn: "player_spawn",
	Ground: "ground",
	Wall: "wall",
	Water: "water",
	Grass: "grass",
	Enemy: "enemy",
}

func (t TileType) String() string {
	name, ok := tileNames[t]
	if !ok {
		return fmt.Sprintf("TileType(%d)", int(t))
	}
	return name
}

// Resolve returns the code whose texture is used to draw t.
// The player marker is drawn as plain ground; it is consumed by spawning.
func (t TileType) Resolve() TileType {
	if t == PlayerSpawn {
		return Ground
	}
	return t
}

// ParseTileType accepts a tile name ("ground") or a non-negative code ("2")
func ParseTileType(name string) (TileType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range tileNames {
		if n == name {
			return t, nil
		}
	}
	code, err := strconv.Atoi(name)
	if err != nil || code < 0 {
		return Empty, fmt.Errorf("tilemap: unknown tile name %q", name)
	}
	return TileType(code), nil
}
