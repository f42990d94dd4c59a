package tilemap

import (
	"fmt"
)

type TileType int

type Position struct {
	X, Y int
}

// Tilemap is a row-major grid of tile codes with a declared size.
// The declared size is trusted by readers and checked row by row with Row.
type Tilemap struct {
	width, height int
	tiles [][]TileType
}

func New(width, height int, tiles [][]TileType) *Tilemap {
	return &Tilemap{
		width: width,
		height: height,
		tiles: tiles,
	}
}

// NewEmpty returns the inert 0x0 map a level starts with
func NewEmpty() *Tilemap {
	return &Tilemap{}
}

// Fill returns a well formed width x height map where every cell is t
func Fill(width, height int, t TileType) *Tilemap {
	tiles := make([][]TileType, height)
	for y := range tiles {
		tiles[y] = make([]TileType, width)
		for x := range tiles[y] {
			tiles[y][x] = t
		}
	}
	return New(width, height, tiles)
}

func (t *Tilemap) Width() int {
	return t.width
}

func (t *Tilemap) Height() int {
	return t.height
}

// Row returns row y after checking that it exists and matches the declared width
func (t *Tilemap) Row(y int) ([]TileType, error) {
	if y < 0 || y >= len(t.tiles) || t.tiles[y] == nil {
		return nil, &MalformedMapError{Row: y, Width: t.width, Missing: true}
	}

	row := t.tiles[y]
	if len(row) != t.width {
		return nil, &MalformedMapError{Row: y, Len: len(row), Width: t.width}
	}
	return row, nil
}

func (t *Tilemap) Get(x, y int) (TileType, bool) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Empty, false
	}
	row, err := t.Row(y)
	if err != nil {
		return Empty, false
	}
	return row[x], true
}

// Validate checks every declared row
func (t *Tilemap) Validate() error {
	for y := 0; y < t.height; y++ {
		_, err := t.Row(y)
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns how many cells hold t. Malformed rows are skipped.
func (t *Tilemap) Count(tt TileType) int {
	n := 0
	for y := 0; y < t.height; y++ {
		row, err := t.Row(y)
		if err != nil { continue }
		for _, v := range row {
			if v == tt {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy, keeping malformed rows as they are
func (t *Tilemap) Clone() *Tilemap {
	var tiles [][]TileType
	if t.tiles != nil {
		tiles = make([][]TileType, len(t.tiles))
		for y, row := range t.tiles {
			if row == nil { continue }
			tiles[y] = append([]TileType(nil), row...)
		}
	}
	return New(t.width, t.height, tiles)
}

// MalformedMapError reports a row that is missing or whose length differs from the map width
type MalformedMapError struct {
	Row int
	Len int
	Width int
	Missing bool
}

func (e *MalformedMapError) Error() string {
	if e.Missing {
		return fmt.Sprintf("tilemap: row %d is missing (width %d)", e.Row, e.Width)
	}
	return fmt.Sprintf("tilemap: row %d has length %d, expected width %d", e.Row, e.Len, e.Width)
}
