package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/unitoftime/tilelevel/engine/tilemap"
)

// PositionPolicy picks where the background layer of a cell is drawn
type PositionPolicy uint8

const (
	// LegacyStalePosition draws a cell's background at the position computed
	// for the last tile drawn in this pass (the origin before any tile is drawn).
	LegacyStalePosition PositionPolicy = iota

	// CurrentPosition draws a cell's background at that cell, sized by the background texture.
	CurrentPosition
)

func (p PositionPolicy) String() string {
	switch p {
	case LegacyStalePosition:
		return "legacy"
	case CurrentPosition:
		return "current"
	}
	return fmt.Sprintf("PositionPolicy(%d)", uint8(p))
}

func ParsePositionPolicy(s string) (PositionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return LegacyStalePosition, nil
	case "current":
		return CurrentPosition, nil
	}
	return LegacyStalePosition, fmt.Errorf("render: unknown position policy %q", s)
}

const (
	DefaultBackgroundDepth float32 = 0.8
	DefaultTileDepth float32 = 0
)

// DegenerateMapError is returned when drawing a map without a usable size
type DegenerateMapError struct {
	Width, Height int
}

func (e *DegenerateMapError) Error() string {
	return fmt.Sprintf("render: map has no valid dimensions (%dx%d)", e.Width, e.Height)
}

type TilemapRender struct {
	Policy PositionPolicy
	BackgroundDepth float32
	TileDepth float32
	Background tilemap.TileType

	batch *Batch
}

func NewTilemapRender(policy PositionPolicy) *TilemapRender {
	return &TilemapRender{
		Policy: policy,
		BackgroundDepth: DefaultBackgroundDepth,
		TileDepth: DefaultTileDepth,
		Background: tilemap.Ground,
		batch: NewBatch(),
	}
}

func (r *TilemapRender) Clear() {
	r.batch.Clear()
}

// Batch queues the draw commands for one pass over t.
// On error the queued commands from this pass are dropped.
func (r *TilemapRender) Batch(t *tilemap.Tilemap, catalog *Catalog) error {
	if t.Width() <= 0 || t.Height() <= 0 {
		return &DegenerateMapError{t.Width(), t.Height()}
	}

	background, hasBackground := catalog.Get(r.Background)

	var last Vec2
	for y := 0; y < t.Height(); y++ {
		row, err := t.Row(y)
		if err != nil {
			r.batch.Clear()
			return err
		}

		for x := 0; x < t.Width(); x++ {
			if hasBackground {
				pos := last
				if r.Policy == CurrentPosition {
					pos = cellPosition(x, y, background)
				}
				r.batch.Add(NewCommand(background, pos, r.BackgroundDepth))
			}

			tex, ok := catalog.Get(row[x].Resolve())
			if !ok { continue }

			last = cellPosition(x, y, tex)
			r.batch.Add(NewCommand(tex, last, r.TileDepth))
		}
	}
	return nil
}

// Draw batches t and submits the pass to raster. Nothing is submitted if the pass fails.
func (r *TilemapRender) Draw(t *tilemap.Tilemap, catalog *Catalog, raster Rasterizer) error {
	r.Clear()
	err := r.Batch(t, catalog)
	if err != nil {
		return err
	}
	r.batch.Flush(raster)
	return nil
}

func cellPosition(x, y int, tex Texture) Vec2 {
	return Vec2{
		X: float64(x * tex.Width()),
		Y: float64(y * tex.Height()),
	}
}

// FrameBounds returns the pixel rectangle a pass over t can cover.
// Malformed rows and cells without a texture do not contribute.
func (r *TilemapRender) FrameBounds(t *tilemap.Tilemap, catalog *Catalog) image.Rectangle {
	background, hasBackground := catalog.Get(r.Background)

	var bounds image.Rectangle
	for y := 0; y < t.Height(); y++ {
		row, err := t.Row(y)
		if err != nil { continue }
		for x, code := range row {
			if hasBackground {
				bounds = bounds.Union(cellRect(x, y, background))
			}
			tex, ok := catalog.Get(code.Resolve())
			if !ok { continue }
			bounds = bounds.Union(cellRect(x, y, tex))
		}
	}
	return bounds
}

func cellRect(x, y int, tex Texture) image.Rectangle {
	w, h := tex.Width(), tex.Height()
	return image.Rect(x*w, y*h, (x+1)*w, (y+1)*h)
}
