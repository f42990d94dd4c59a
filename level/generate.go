package level

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"github.com/ungerik/go3d/float64/vec2"

	"github.com/unitoftime/tilelevel/engine/pgen"
	"github.com/unitoftime/tilelevel/engine/tilemap"
)

type NoiseConfig struct {
	Seed int64 `yaml:"seed"`
	Width int `yaml:"width"`
	Height int `yaml:"height"`
	Exponent float64 `yaml:"exponent"`
	IslandExponent float64 `yaml:"islandExponent"`
	WaterLevel float64 `yaml:"waterLevel"`
	BeachLevel float64 `yaml:"beachLevel"`
	WallLevel float64 `yaml:"wallLevel"`
	Enemies int `yaml:"enemies"`
	PathPoints int `yaml:"pathPoints"`
	PathVariation float64 `yaml:"pathVariation"`
	Octaves []pgen.Octave `yaml:"-"`
}

func DefaultNoiseConfig() NoiseConfig {
	waterLevel := 0.5
	return NoiseConfig{
		Seed: 12345,
		Width: 64,
		Height: 48,
		Exponent: 0.8,
		IslandExponent: 2.0,
		WaterLevel: waterLevel,
		BeachLevel: waterLevel + 0.1,
		WallLevel: waterLevel + 0.3,
		Enemies: 5,
		PathPoints: 8,
		PathVariation: 4,
		Octaves: pgen.DefaultOctaves,
	}
}

// NoiseGenerator builds island levels: water, beach ground, grass and walls
// from layered noise, with a ground path carved from the player spawn at the
// centre out to a goal and enemies placed along it.
type NoiseGenerator struct {
	Config NoiseConfig
	generation int64
}

func NewNoiseGenerator(config NoiseConfig) *NoiseGenerator {
	if config.Octaves == nil {
		config.Octaves = pgen.DefaultOctaves
	}
	return &NoiseGenerator{Config: config}
}

// LoadRandomLevel returns a new level each call. The sequence of levels is fixed by the seed.
func (g *NoiseGenerator) LoadRandomLevel() (*tilemap.Tilemap, error) {
	cfg := g.Config
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("level: invalid generator size %dx%d", cfg.Width, cfg.Height)
	}

	seed := cfg.Seed + g.generation
	g.generation++
	rng := rand.New(rand.NewSource(seed))

	terrain := pgen.NewNoiseMap(seed, cfg.Octaves, cfg.Exponent)
	tiles := make([][]tilemap.TileType, cfg.Height)
	for y := range tiles {
		tiles[y] = make([]tilemap.TileType, cfg.Width)
		for x := range tiles[y] {
			height := pgen.Island(terrain.Get(x, y), x, y, cfg.Width, cfg.Height, cfg.IslandExponent)

			if height < cfg.WaterLevel {
				tiles[y][x] = tilemap.Water
			} else if height < cfg.BeachLevel {
				tiles[y][x] = tilemap.Ground
			} else if height < cfg.WallLevel {
				tiles[y][x] = tilemap.Grass
			} else {
				tiles[y][x] = tilemap.Wall
			}
		}
	}

	spawn := tilemap.Position{X: cfg.Width / 2, Y: cfg.Height / 2}
	path := carvePath(rng, tiles, spawn, cfg)
	tiles[spawn.Y][spawn.X] = tilemap.PlayerSpawn

	placed := placeEnemies(rng, tiles, path, cfg.Enemies)

	log.Debug().
		Int64("seed", seed).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("path", len(path)).
		Int("enemies", placed).
		Msg("Generated level")

	return tilemap.New(cfg.Width, cfg.Height, tiles), nil
}

// carvePath lays ground from start to a random goal and returns the carved cells in order
func carvePath(rng *rand.Rand, tiles [][]tilemap.TileType, start tilemap.Position, cfg NoiseConfig) []tilemap.Position {
	radius := math.Min(float64(cfg.Width), float64(cfg.Height)) / 3
	angle := rng.Float64() * 2 * math.Pi

	from := vec2.T{float64(start.X), float64(start.Y)}
	to := vec2.T{
		from[0] + radius*math.Cos(angle),
		from[1] + radius*math.Sin(angle),
	}

	points := pgen.Path(rng, from, to, cfg.PathPoints, cfg.PathVariation)

	carved := make([]tilemap.Position, 0)
	seen := make(map[tilemap.Position]bool)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		steps := int(math.Ceil(math.Max(math.Abs(b[0]-a[0]), math.Abs(b[1]-a[1]))))
		if steps < 1 {
			steps = 1
		}
		for s := 0; s <= steps; s++ {
			p := vec2.Interpolate(&a, &b, float64(s)/float64(steps))
			cell := clampCell(p, cfg.Width, cfg.Height)
			if seen[cell] { continue }
			seen[cell] = true
			tiles[cell.Y][cell.X] = tilemap.Ground
			carved = append(carved, cell)
		}
	}
	return carved
}

func clampCell(p vec2.T, width, height int) tilemap.Position {
	x := int(math.Round(p[0]))
	y := int(math.Round(p[1]))
	if x < 0 { x = 0 }
	if y < 0 { y = 0 }
	if x >= width { x = width - 1 }
	if y >= height { y = height - 1 }
	return tilemap.Position{X: x, Y: y}
}

// placeEnemies puts up to n enemies on distinct ground cells of path
func placeEnemies(rng *rand.Rand, tiles [][]tilemap.TileType, path []tilemap.Position, n int) int {
	candidates := make([]tilemap.Position, 0, len(path))
	for _, cell := range path {
		if tiles[cell.Y][cell.X] == tilemap.Ground {
			candidates = append(candidates, cell)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	placed := 0
	for _, cell := range candidates {
		if placed >= n { break }
		tiles[cell.Y][cell.X] = tilemap.Enemy
		placed++
	}
	return placed
}
