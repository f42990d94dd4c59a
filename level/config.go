package level

import (
	"github.com/unitoftime/tilelevel/engine/asset"
	"github.com/unitoftime/tilelevel/engine/render"
)

// Config is the host configuration shared by the command line tools
type Config struct {
	Assets string `yaml:"assets"`
	Manifest string `yaml:"manifest"`
	Level string `yaml:"level"`
	Policy string `yaml:"policy"`
	BackgroundDepth float32 `yaml:"backgroundDepth"`
	TileDepth float32 `yaml:"tileDepth"`
	Generator NoiseConfig `yaml:"generator"`
}

func DefaultConfig() Config {
	return Config{
		Assets: ".",
		Manifest: "manifest.yaml",
		Policy: render.LegacyStalePosition.String(),
		BackgroundDepth: render.DefaultBackgroundDepth,
		TileDepth: render.DefaultTileDepth,
		Generator: DefaultNoiseConfig(),
	}
}

// LoadConfig reads path over the defaults
func LoadConfig(load *asset.Load, path string) (Config, error) {
	config := DefaultConfig()
	err := load.Yaml(path, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// NewGenerator returns a file loader when a level file is configured and a noise generator otherwise
func (c Config) NewGenerator(load *asset.Load) Generator {
	if c.Level != "" {
		return FileLoader{Load: load, Path: c.Level}
	}
	return NewNoiseGenerator(c.Generator)
}

func (c Config) Options() ([]Option, error) {
	policy, err := render.ParsePositionPolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithPolicy(policy),
		WithDepths(c.BackgroundDepth, c.TileDepth),
	}, nil
}
