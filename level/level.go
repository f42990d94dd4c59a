package level

import (
	"github.com/rs/zerolog/log"

	"github.com/unitoftime/tilelevel/engine/render"
	"github.com/unitoftime/tilelevel/engine/tilemap"
)

// Generator produces a populated tilemap. It may be called again to regenerate.
type Generator interface {
	LoadRandomLevel() (*tilemap.Tilemap, error)
}

type Option func(*Level)

func WithPolicy(policy render.PositionPolicy) Option {
	return func(l *Level) {
		l.renderer.Policy = policy
	}
}

func WithDepths(background, tile float32) Option {
	return func(l *Level) {
		l.renderer.BackgroundDepth = background
		l.renderer.TileDepth = tile
	}
}

// Level owns a tilemap and the textures used to draw it.
// Assets and the rasterizer are borrowed from the host.
type Level struct {
	tilemap *tilemap.Tilemap
	catalog *render.Catalog
	renderer *render.TilemapRender

	assets render.AssetLoader
	raster render.Rasterizer
}

func New(assets render.AssetLoader, raster render.Rasterizer, opts ...Option) *Level {
	l := &Level{
		tilemap: tilemap.NewEmpty(),
		catalog: render.NewCatalog(),
		renderer: render.NewTilemapRender(render.LegacyStalePosition),
		assets: assets,
		raster: raster,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Level) Tilemap() *tilemap.Tilemap {
	return l.tilemap
}

func (l *Level) Catalog() *render.Catalog {
	return l.catalog
}

func (l *Level) Renderer() *render.TilemapRender {
	return l.renderer
}

// LoadTileMap replaces the current tilemap with a freshly generated one
func (l *Level) LoadTileMap(gen Generator) error {
	tmap, err := gen.LoadRandomLevel()
	if err != nil {
		return err
	}
	if tmap == nil {
		tmap = tilemap.NewEmpty()
	}

	l.tilemap = tmap
	log.Debug().Int("width", tmap.Width()).Int("height", tmap.Height()).Msg("Loaded tilemap")
	return nil
}

func (l *Level) LoadMapTextures() error {
	_, err := l.catalog.LoadMapTextures(l.assets)
	return err
}

func (l *Level) LoadEnemyTexture() error {
	_, _, err := l.catalog.LoadEnemyTexture(l.assets)
	return err
}

// FindTilePosition returns the first cell holding code, scanning rows top to
// bottom and each row left to right. The origin is returned when nothing
// matches, so use LookupTilePosition to tell that apart from a match at (0,0).
func (l *Level) FindTilePosition(code tilemap.TileType) (tilemap.Position, error) {
	pos, _, err := l.LookupTilePosition(code)
	return pos, err
}

// LookupTilePosition is FindTilePosition with an explicit found flag
func (l *Level) LookupTilePosition(code tilemap.TileType) (tilemap.Position, bool, error) {
	t := l.tilemap
	for y := 0; y < t.Height(); y++ {
		row, err := t.Row(y)
		if err != nil {
			return tilemap.Position{}, false, err
		}

		for x := 0; x < t.Width(); x++ {
			if row[x] == code {
				return tilemap.Position{X: x, Y: y}, true, nil
			}
		}
	}
	return tilemap.Position{}, false, nil
}

// Draw submits one frame of the tilemap to the rasterizer
func (l *Level) Draw() error {
	return l.renderer.Draw(l.tilemap, l.catalog, l.raster)
}

// Close forgets every texture. The textures stay owned by the asset loader.
func (l *Level) Close() {
	l.catalog.Clear()
}
