package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unitoftime/ecs"
	flowasset "github.com/unitoftime/flow/asset"
	"github.com/unitoftime/glitch"
	"github.com/unitoftime/glitch/shaders"

	"github.com/unitoftime/tilelevel/engine/asset"
	"github.com/unitoftime/tilelevel/engine/render/glitchdraw"
	"github.com/unitoftime/tilelevel/game"
	"github.com/unitoftime/tilelevel/level"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

var configPath = flag.String("config", "", "yaml config `file`")
var smooth = flag.Bool("smooth", false, "smooth texture filtering")
var verbose = flag.Bool("v", false, "debug logging")

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	glitch.Run(launch)
}

// loadConfig reads the config file over the defaults
func loadConfig() level.Config {
	config := level.DefaultConfig()
	if *configPath == "" {
		return config
	}
	load := flowasset.NewLoad(os.DirFS(filepath.Dir(*configPath)))
	err := load.Yaml(filepath.Base(*configPath), &config)
	check(err)
	return config
}

func launch() {
	config := loadConfig()

	win, err := glitch.NewWindow(1280, 720, "Level Viewer", glitch.WindowConfig{
		Vsync: true,
	})
	check(err)

	shader, err := glitch.NewShader(shaders.SpriteShader)
	check(err)
	pass := glitch.NewRenderPass(shader)

	load := asset.NewLoad(os.DirFS(config.Assets))
	manifest, err := load.Manifest(config.Manifest)
	check(err)
	textures := asset.NewTextureManager(load, manifest)

	opts, err := config.Options()
	check(err)
	raster := glitchdraw.NewRasterizer(pass, *smooth)
	l := level.New(textures, raster, opts...)
	defer l.Close()

	generator := config.NewGenerator(load)
	check(l.LoadTileMap(generator))
	check(l.LoadMapTextures())
	check(l.LoadEnemyTexture())

	world := populate(l)

	camera := glitch.NewCameraOrtho()
	camera.SetOrtho2D(win.Bounds())
	camera.SetView2D(0, 0, 1.0, 1.0)

	quit := ecs.Signal{}
	quit.Set(false)

	scheduler := ecs.NewScheduler()
	scheduler.AppendInput(
		ecs.System{"Regenerate", func(dt time.Duration) {
			if win.JustPressed(glitch.KeySpace) {
				err := l.LoadTileMap(generator)
				if err != nil {
					log.Error().Err(err).Msg("Failed to regenerate level")
					return
				}
				world = populate(l)
			}
		}},
		ecs.System{"Quit", func(dt time.Duration) {
			if win.JustPressed(glitch.KeyEscape) {
				quit.Set(true)
			}
		}},
	)

	scheduler.AppendRender(
		ecs.System{"Draw", func(dt time.Duration) {
			pass.Clear()
			err := l.Draw()
			if err != nil {
				log.Error().Err(err).Msg("Failed to draw level")
			}

			glitch.Clear(win, glitch.Black)

			camera.SetOrtho2D(win.Bounds())
			camera.SetView2D(0, 0, 1.0, 1.0)
			pass.SetUniform("projection", camera.Projection)
			pass.SetUniform("view", camera.View)
			pass.Draw(win)

			win.Update()
		}},
	)

	scheduler.Run(&quit)
	log.Debug().Int("players", world.Count(game.Player{})).Msg("Viewer closed")
}

// populate spawns the level's entities into a fresh world
func populate(l *level.Level) *ecs.World {
	world, err := l.Populate()
	check(err)
	log.Info().
		Int("players", world.Count(game.Player{})).
		Int("enemies", world.Count(game.Enemy{})).
		Msg("Spawned entities")
	return world
}
