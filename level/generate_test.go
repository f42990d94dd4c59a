package level

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unitoftime/tilelevel/engine/tilemap"
)

func rows(t *testing.T, m *tilemap.Tilemap) [][]tilemap.TileType {
	t.Helper()
	out := make([][]tilemap.TileType, m.Height())
	for y := range out {
		row, err := m.Row(y)
		if err != nil {
			t.Fatal(err)
		}
		out[y] = row
	}
	return out
}

func TestNoiseGeneratorDeterministic(t *testing.T) {
	cfg := DefaultNoiseConfig()
	cfg.Width, cfg.Height = 32, 24

	a, err := NewNoiseGenerator(cfg).LoadRandomLevel()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewNoiseGenerator(cfg).LoadRandomLevel()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows(t, a), rows(t, b)); diff != "" {
		t.Errorf("same seed produced different levels:\n%s", diff)
	}
}

func TestNoiseGeneratorLevels(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := DefaultNoiseConfig()
		cfg.Seed = seed
		cfg.Width, cfg.Height = 40, 30
		gen := NewNoiseGenerator(cfg)

		tmap, err := gen.LoadRandomLevel()
		if err != nil {
			t.Fatal(err)
		}
		if tmap.Width() != 40 || tmap.Height() != 30 {
			t.Fatalf("seed=%d: size %dx%d", seed, tmap.Width(), tmap.Height())
		}
		if err := tmap.Validate(); err != nil {
			t.Fatalf("seed=%d: generated map is malformed: %v", seed, err)
		}
		if n := tmap.Count(tilemap.PlayerSpawn); n != 1 {
			t.Fatalf("seed=%d: %d player spawns, want 1", seed, n)
		}
		if n := tmap.Count(tilemap.Enemy); n > cfg.Enemies {
			t.Fatalf("seed=%d: %d enemies, want at most %d", seed, n, cfg.Enemies)
		}

		l := New(&stubAssets{}, &recorder{})
		if err := l.LoadTileMap(gen); err != nil {
			t.Fatal(err)
		}
		pos, err := l.FindTilePosition(tilemap.PlayerSpawn)
		if err != nil {
			t.Fatal(err)
		}
		if pos != (tilemap.Position{X: 20, Y: 15}) {
			t.Errorf("seed=%d: spawn at %v, want the centre", seed, pos)
		}
	}
}

func TestNoiseGeneratorRegenerates(t *testing.T) {
	cfg := DefaultNoiseConfig()
	cfg.Width, cfg.Height = 32, 24
	gen := NewNoiseGenerator(cfg)

	a, _ := gen.LoadRandomLevel()
	b, _ := gen.LoadRandomLevel()
	if cmp.Equal(rows(t, a), rows(t, b)) {
		t.Error("calling the generator again should produce a new level")
	}
}

func TestNoiseGeneratorInvalidSize(t *testing.T) {
	cfg := DefaultNoiseConfig()
	cfg.Width = 0
	if _, err := NewNoiseGenerator(cfg).LoadRandomLevel(); err == nil {
		t.Error("expected an error for a zero width")
	}
}
