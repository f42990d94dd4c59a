package render

import (
	"github.com/rs/zerolog/log"

	"github.com/unitoftime/tilelevel/engine/tilemap"
)

// Texture is a drawable handle owned by whoever loaded it. Sizes are in pixels.
type Texture interface {
	Width() int
	Height() int
}

// AssetLoader supplies textures keyed by the tile code they draw
type AssetLoader interface {
	LoadMapTextures() (map[tilemap.TileType]Texture, error)
	LoadEnemyTexture() (tilemap.TileType, Texture, error)
}

// Catalog maps tile codes to textures. It never releases the textures it holds.
type Catalog struct {
	textures map[tilemap.TileType]Texture
}

func NewCatalog() *Catalog {
	return &Catalog{
		textures: make(map[tilemap.TileType]Texture),
	}
}

// Register adds or replaces the texture for code. A nil texture removes it.
func (c *Catalog) Register(code tilemap.TileType, tex Texture) {
	if tex == nil {
		delete(c.textures, code)
		return
	}
	if _, ok := c.textures[code]; ok {
		log.Debug().Stringer("code", code).Msg("Replacing texture")
	}
	c.textures[code] = tex
}

func (c *Catalog) Get(code tilemap.TileType) (Texture, bool) {
	tex, ok := c.textures[code]
	return tex, ok
}

func (c *Catalog) Len() int {
	return len(c.textures)
}

func (c *Catalog) Clear() {
	c.textures = make(map[tilemap.TileType]Texture)
}

func (c *Catalog) LoadMapTextures(loader AssetLoader) (map[tilemap.TileType]Texture, error) {
	textures, err := loader.LoadMapTextures()
	if err != nil {
		return nil, err
	}

	for code, tex := range textures {
		c.Register(code, tex)
	}
	log.Debug().Int("count", len(textures)).Msg("Loaded map textures")
	return textures, nil
}

func (c *Catalog) LoadEnemyTexture(loader AssetLoader) (tilemap.TileType, Texture, error) {
	code, tex, err := loader.LoadEnemyTexture()
	if err != nil {
		return tilemap.Empty, nil, err
	}

	c.Register(code, tex)
	log.Debug().Stringer("code", code).Msg("Loaded enemy texture")
	return code, tex, nil
}
