package level

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/unitoftime/tilelevel/engine/asset"
	"github.com/unitoftime/tilelevel/engine/tilemap"
)

var levelFS = fstest.MapFS{
	"level.yaml": {Data: []byte(`
tiles:
  - [0, 1, 2]
  - [3, 4, 6]
`)},
	"level.json": {Data: []byte(`{"width": 2, "height": 2, "tiles": [[2, 2], [2]]}`)},
	"broken.yaml": {Data: []byte("tiles: [[0, 1")},
}

func TestFileLoaderYaml(t *testing.T) {
	loader := FileLoader{Load: asset.NewLoad(levelFS), Path: "level.yaml"}
	tmap, err := loader.LoadRandomLevel()
	if err != nil {
		t.Fatal(err)
	}
	if tmap.Width() != 3 || tmap.Height() != 2 {
		t.Fatalf("size %dx%d, want 3x2", tmap.Width(), tmap.Height())
	}
	want := [][]tilemap.TileType{
		{tilemap.Empty, tilemap.PlayerSpawn, tilemap.Ground},
		{tilemap.Wall, tilemap.Water, tilemap.Enemy},
	}
	if diff := cmp.Diff(want, rows(t, tmap)); diff != "" {
		t.Errorf("tiles mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoaderKeepsMalformedRows(t *testing.T) {
	loader := FileLoader{Load: asset.NewLoad(levelFS), Path: "level.json"}
	l := New(&stubAssets{}, &recorder{})
	if err := l.LoadTileMap(loader); err != nil {
		t.Fatal(err)
	}

	_, err := l.FindTilePosition(tilemap.PlayerSpawn)
	var malformed *tilemap.MalformedMapError
	if !errors.As(err, &malformed) || malformed.Row != 1 {
		t.Fatalf("expected the short row to be reported, got %v", err)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	for _, p := range []string{"missing.yaml", "broken.yaml"} {
		loader := FileLoader{Load: asset.NewLoad(levelFS), Path: p}
		if _, err := loader.LoadRandomLevel(); err == nil {
			t.Errorf("%s: expected an error", p)
		}
	}
}
