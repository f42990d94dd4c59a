package pgen

import (
	"math/rand"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
)

func TestNoiseMapDeterministic(t *testing.T) {
	a := NewNoiseMap(7, DefaultOctaves, 0.8)
	b := NewNoiseMap(7, DefaultOctaves, 0.8)
	for i := 0; i < 50; i++ {
		if a.Get(i, i*3) != b.Get(i, i*3) {
			t.Fatalf("same seed gave different heights at %d", i)
		}
	}
}

func TestNoiseMapRange(t *testing.T) {
	n := NewNoiseMap(1, DefaultOctaves, 1)
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			h := n.Get(x, y)
			if h < 0 || h > 1 {
				t.Fatalf("height %f at (%d,%d) out of range", h, x, y)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	in := []Octave{{Freq: 0.1, Scale: 2}, {Freq: 0.2, Scale: 6}}
	out := Normalize(in)
	if out[0].Scale != 0.25 || out[1].Scale != 0.75 {
		t.Errorf("scales = %v, %v", out[0].Scale, out[1].Scale)
	}
	if out[0].Freq != 0.1 || out[1].Freq != 0.2 {
		t.Errorf("frequencies changed: %v", out)
	}
	if in[0].Scale != 2 {
		t.Errorf("input octaves were modified")
	}
}

func TestNoiseMapUnnormalizedOctaves(t *testing.T) {
	n := NewNoiseMap(4, []Octave{{Freq: 0.05, Scale: 3}, {Freq: 0.1, Scale: 5}}, 1)
	for x := 0; x < 30; x++ {
		h := n.Get(x, 2*x)
		if h < 0 || h > 1 {
			t.Fatalf("height %f at x=%d out of range", h, x)
		}
	}
}

func TestIslandCenterIsHighest(t *testing.T) {
	center := Island(0.5, 50, 50, 100, 100, 2)
	edge := Island(0.5, 0, 0, 100, 100, 2)
	if center <= edge {
		t.Errorf("center %f should be higher than edge %f", center, edge)
	}
}

func TestPathEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	start := vec2.T{0, 0}
	end := vec2.T{10, 0}
	path := Path(rng, start, end, 8, 2)

	if len(path) != 8 {
		t.Fatalf("len = %d, want 8", len(path))
	}
	if path[0] != start {
		t.Errorf("path should start at %v, got %v", start, path[0])
	}
	if path[len(path)-1] != end {
		t.Errorf("path should end at %v, got %v", end, path[len(path)-1])
	}
	for i, p := range path {
		if p[1] < -2 || p[1] > 2 {
			t.Errorf("point %d strays too far: %v", i, p)
		}
	}
}

func TestPathDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := vec2.T{3, 4}
	path := Path(rng, p, p, 1, 5)
	if len(path) != 2 || path[0] != p || path[1] != p {
		t.Errorf("unexpected path %v", path)
	}
}
