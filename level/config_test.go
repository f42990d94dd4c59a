package level

import (
	"testing"
	"testing/fstest"

	"github.com/unitoftime/tilelevel/engine/asset"
	"github.com/unitoftime/tilelevel/engine/render"
)

func TestLoadConfig(t *testing.T) {
	load := asset.NewLoad(fstest.MapFS{
		"config.yaml": {Data: []byte(`
policy: current
generator:
  seed: 99
  width: 20
`)},
	})

	config, err := LoadConfig(load, "config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if config.Generator.Seed != 99 || config.Generator.Width != 20 {
		t.Errorf("generator = %+v", config.Generator)
	}
	if config.Generator.Height != DefaultNoiseConfig().Height {
		t.Errorf("unset fields should keep their defaults, height = %d", config.Generator.Height)
	}
	if config.Manifest != "manifest.yaml" {
		t.Errorf("manifest = %q", config.Manifest)
	}

	opts, err := config.Options()
	if err != nil {
		t.Fatal(err)
	}
	l := New(&stubAssets{}, &recorder{}, opts...)
	if l.Renderer().Policy != render.CurrentPosition {
		t.Errorf("policy = %v, want current", l.Renderer().Policy)
	}
	if l.Renderer().BackgroundDepth != render.DefaultBackgroundDepth {
		t.Errorf("background depth = %v", l.Renderer().BackgroundDepth)
	}
}

func TestConfigBadPolicy(t *testing.T) {
	config := DefaultConfig()
	config.Policy = "sideways"
	if _, err := config.Options(); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

func TestConfigGenerator(t *testing.T) {
	config := DefaultConfig()
	if _, ok := config.NewGenerator(nil).(*NoiseGenerator); !ok {
		t.Error("expected a noise generator by default")
	}
	config.Level = "level.yaml"
	if _, ok := config.NewGenerator(nil).(FileLoader); !ok {
		t.Error("expected a file loader when a level file is set")
	}
}
