package level

import (
	"errors"

	"github.com/unitoftime/ecs"

	"github.com/unitoftime/tilelevel/engine/tilemap"
	"github.com/unitoftime/tilelevel/game"
)

// DefaultCellSize is used for cells whose texture is not loaded
const DefaultCellSize = 16

var ErrNoSpawn = errors.New("level: tilemap has no player spawn")

// cellCenter is the pixel centre of a cell, sized by the texture that draws it
func (l *Level) cellCenter(cell tilemap.Position, code tilemap.TileType) game.Transform {
	w, h := DefaultCellSize, DefaultCellSize
	tex, ok := l.catalog.Get(code.Resolve())
	if ok {
		w, h = tex.Width(), tex.Height()
	}
	return game.Transform{
		X: float64(cell.X*w) + float64(w)/2,
		Y: float64(cell.Y*h) + float64(h)/2,
	}
}

// SpawnPlayer creates the player entity on the player marker
func (l *Level) SpawnPlayer(world *ecs.World) (ecs.Id, error) {
	cell, ok, err := l.LookupTilePosition(tilemap.PlayerSpawn)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoSpawn
	}

	id := world.NewId()
	ecs.Write(world, id,
		ecs.C(game.Player{Cell: cell}),
		ecs.C(l.cellCenter(cell, tilemap.PlayerSpawn)),
	)
	return id, nil
}

// SpawnEnemies creates one entity per enemy tile, in row-major order
func (l *Level) SpawnEnemies(world *ecs.World) ([]ecs.Id, error) {
	t := l.tilemap
	ids := make([]ecs.Id, 0)
	for y := 0; y < t.Height(); y++ {
		row, err := t.Row(y)
		if err != nil {
			return nil, err
		}
		for x, code := range row {
			if code != tilemap.Enemy { continue }

			cell := tilemap.Position{X: x, Y: y}
			id := world.NewId()
			ecs.Write(world, id,
				ecs.C(game.Enemy{Cell: cell, Type: code}),
				ecs.C(l.cellCenter(cell, code)),
			)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Populate returns a new world holding the entities of the current map.
// A map without a player marker gives a world with only enemies.
func (l *Level) Populate() (*ecs.World, error) {
	world := ecs.NewWorld()
	_, err := l.SpawnPlayer(world)
	if err != nil && !errors.Is(err, ErrNoSpawn) {
		return nil, err
	}
	_, err = l.SpawnEnemies(world)
	if err != nil {
		return nil, err
	}
	return world, nil
}
