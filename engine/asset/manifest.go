package asset

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/unitoftime/tilelevel/engine/render"
	"github.com/unitoftime/tilelevel/engine/tilemap"
)

// Manifest lists which image frame draws each tile code.
// Tile keys are tile names ("ground") or codes ("7"). When Spritesheet is
// empty, frame names are image paths.
type Manifest struct {
	Spritesheet string `yaml:"spritesheet"`
	Tiles map[string]string `yaml:"tiles"`
	Enemy EnemyEntry `yaml:"enemy"`
}

type EnemyEntry struct {
	Code string `yaml:"code"`
	Frame string `yaml:"frame"`
}

func (load *Load) Manifest(path string) (Manifest, error) {
	manifest := Manifest{}
	err := load.Yaml(path, &manifest)
	if err != nil {
		return Manifest{}, fmt.Errorf("asset: reading manifest %s: %w", path, err)
	}
	return manifest, nil
}

// TextureManager loads the textures named by a manifest
type TextureManager struct {
	load *Load
	manifest Manifest
	sheet *Spritesheet
	images map[string]*Texture
}

func NewTextureManager(load *Load, manifest Manifest) *TextureManager {
	return &TextureManager{
		load: load,
		manifest: manifest,
		images: make(map[string]*Texture),
	}
}

func (m *TextureManager) texture(frame string) (*Texture, error) {
	if m.manifest.Spritesheet == "" {
		tex, ok := m.images[frame]
		if ok {
			return tex, nil
		}
		img, err := m.load.Image(frame)
		if err != nil {
			return nil, err
		}
		tex = NewTexture(frame, img)
		m.images[frame] = tex
		return tex, nil
	}

	if m.sheet == nil {
		sheet, err := m.load.Spritesheet(m.manifest.Spritesheet)
		if err != nil {
			return nil, err
		}
		m.sheet = sheet
	}
	return m.sheet.Get(frame)
}

func (m *TextureManager) LoadMapTextures() (map[tilemap.TileType]render.Texture, error) {
	textures := make(map[tilemap.TileType]render.Texture, len(m.manifest.Tiles))
	for name, frame := range m.manifest.Tiles {
		code, err := tilemap.ParseTileType(name)
		if err != nil {
			return nil, err
		}
		tex, err := m.texture(frame)
		if err != nil {
			return nil, err
		}
		textures[code] = tex
	}
	log.Debug().Int("count", len(textures)).Str("sheet", m.manifest.Spritesheet).Msg("Loaded manifest textures")
	return textures, nil
}

func (m *TextureManager) LoadEnemyTexture() (tilemap.TileType, render.Texture, error) {
	if m.manifest.Enemy.Frame == "" {
		return tilemap.Empty, nil, fmt.Errorf("asset: manifest has no enemy frame")
	}

	code := tilemap.Enemy
	if m.manifest.Enemy.Code != "" {
		var err error
		code, err = tilemap.ParseTileType(m.manifest.Enemy.Code)
		if err != nil {
			return tilemap.Empty, nil, err
		}
	}

	tex, err := m.texture(m.manifest.Enemy.Frame)
	if err != nil {
		return tilemap.Empty, nil, err
	}
	return code, tex, nil
}
