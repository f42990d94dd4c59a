package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unitoftime/ecs"

	"github.com/unitoftime/tilelevel/engine/asset"
	"github.com/unitoftime/tilelevel/engine/render"
	"github.com/unitoftime/tilelevel/engine/tilemap"
	"github.com/unitoftime/tilelevel/level"
)

var configPath = flag.String("config", "", "yaml config `file`")
var levelPath = flag.String("level", "", "load this level file (relative to the assets dir) instead of generating one")
var seed = flag.Int64("seed", 0, "generator seed, 0 keeps the configured seed")
var size = flag.String("size", "", "generated level size as `WxH`")
var out = flag.String("out", "", "render the level to this png `file`")
var assetsDir = flag.String("assets", "", "assets directory")
var policy = flag.String("policy", "", "background position policy (legacy or current)")
var verbose = flag.Bool("v", false, "debug logging")

var glyphs = map[tilemap.TileType]byte{
	tilemap.Empty: ' ',
	tilemap.PlayerSpawn: '@',
	tilemap.Ground: '.',
	tilemap.Wall: '#',
	tilemap.Water: '~',
	tilemap.Grass: '"',
	tilemap.Enemy: 'e',
}

func check(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("levelgen")
	}
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	config := loadConfig()

	load := asset.NewLoad(os.DirFS(config.Assets))
	generator := config.NewGenerator(load)

	if *out == "" {
		t, err := generator.LoadRandomLevel()
		check(err)
		check(printLevel(os.Stdout, t))
		return
	}

	check(renderLevel(load, config, generator, *out))
}

func loadConfig() level.Config {
	config := level.DefaultConfig()
	if *configPath != "" {
		load := asset.NewLoad(os.DirFS(filepath.Dir(*configPath)))
		var err error
		config, err = level.LoadConfig(load, filepath.Base(*configPath))
		check(err)
	}

	if *assetsDir != "" {
		config.Assets = *assetsDir
	}
	if *levelPath != "" {
		config.Level = *levelPath
	}
	if *seed != 0 {
		config.Generator.Seed = *seed
	}
	if *policy != "" {
		config.Policy = *policy
	}
	if *size != "" {
		var w, h int
		_, err := fmt.Sscanf(*size, "%dx%d", &w, &h)
		if err != nil {
			check(fmt.Errorf("bad size %q: %w", *size, err))
		}
		config.Generator.Width = w
		config.Generator.Height = h
	}
	return config
}

func printLevel(f *os.File, t *tilemap.Tilemap) error {
	w := bufio.NewWriter(f)
	for y := 0; y < t.Height(); y++ {
		row, err := t.Row(y)
		if err != nil {
			return err
		}
		for _, code := range row {
			g, ok := glyphs[code]
			if !ok {
				g = '?'
			}
			w.WriteByte(g)
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

func renderLevel(load *asset.Load, config level.Config, generator level.Generator, path string) error {
	manifest, err := load.Manifest(config.Manifest)
	if err != nil {
		return err
	}
	textures := asset.NewTextureManager(load, manifest)

	opts, err := config.Options()
	if err != nil {
		return err
	}

	raster := render.NewImageRasterizer(image.Rectangle{})
	l := level.New(textures, raster, opts...)
	defer l.Close()

	err = l.LoadTileMap(generator)
	if err != nil {
		return err
	}
	err = l.LoadMapTextures()
	if err != nil {
		return err
	}
	err = l.LoadEnemyTexture()
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	player, err := l.SpawnPlayer(world)
	if err != nil {
		log.Warn().Err(err).Msg("No player spawn")
	} else {
		cell, _ := l.FindTilePosition(tilemap.PlayerSpawn)
		log.Info().Interface("id", player).Int("x", cell.X).Int("y", cell.Y).Msg("Spawned player")
	}
	enemies, err := l.SpawnEnemies(world)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(enemies)).Msg("Spawned enemies")

	raster.Resize(l.Renderer().FrameBounds(l.Tilemap(), l.Catalog()))
	err = l.Draw()
	if err != nil {
		return err
	}
	log.Debug().Int("commands", len(raster.Commands())).Msg("Rasterizing")
	frame := raster.Present()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	err = png.Encode(f, frame)
	if err != nil {
		return err
	}
	log.Info().Str("file", path).Stringer("bounds", frame.Bounds()).Msg("Wrote level image")
	return nil
}
