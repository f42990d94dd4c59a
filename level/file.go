package level

import (
	"fmt"
	"path"

	"github.com/rs/zerolog/log"

	"github.com/unitoftime/tilelevel/engine/asset"
	"github.com/unitoftime/tilelevel/engine/tilemap"
)

type levelFile struct {
	Width int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Tiles [][]int `json:"tiles" yaml:"tiles"`
}

// FileLoader reads a fixed level from a YAML or JSON file.
// Width and height default to the size of the tile rows when left out.
type FileLoader struct {
	Load *asset.Load
	Path string
}

func (f FileLoader) LoadRandomLevel() (*tilemap.Tilemap, error) {
	dat := levelFile{}

	var err error
	switch path.Ext(f.Path) {
	case ".json":
		err = f.Load.Json(f.Path, &dat)
	default:
		err = f.Load.Yaml(f.Path, &dat)
	}
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", f.Path, err)
	}

	if dat.Height == 0 {
		dat.Height = len(dat.Tiles)
	}
	if dat.Width == 0 && len(dat.Tiles) > 0 {
		dat.Width = len(dat.Tiles[0])
	}

	tiles := make([][]tilemap.TileType, len(dat.Tiles))
	for y, row := range dat.Tiles {
		if row == nil { continue }
		tiles[y] = make([]tilemap.TileType, len(row))
		for x, v := range row {
			tiles[y][x] = tilemap.TileType(v)
		}
	}

	log.Debug().Str("path", f.Path).Int("width", dat.Width).Int("height", dat.Height).Msg("Read level file")
	return tilemap.New(dat.Width, dat.Height, tiles), nil
}
