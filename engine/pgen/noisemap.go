package pgen

import (
	"math"

	"github.com/unitoftime/flow/pgen"
)

type Octave = pgen.Octave

// DefaultOctaves sum to 1 so heights stay in [0, 1]
var DefaultOctaves = []Octave{
	{Freq: 0.01, Scale: 0.6},
	{Freq: 0.05, Scale: 0.3},
	{Freq: 0.1, Scale: 0.07},
	{Freq: 0.2, Scale: 0.02},
	{Freq: 0.4, Scale: 0.01},
}

// NoiseMap is a flow noise map whose octave scales are rescaled to sum to 1
type NoiseMap struct {
	*pgen.NoiseMap
}

func NewNoiseMap(seed int64, octaves []Octave, exponent float64) *NoiseMap {
	return &NoiseMap{pgen.NewNoiseMap(seed, Normalize(octaves), exponent)}
}

// Normalize returns a copy of octaves with scales summing to 1
func Normalize(octaves []Octave) []Octave {
	total := 0.0
	for _, o := range octaves {
		total += o.Scale
	}

	ret := make([]Octave, len(octaves))
	copy(ret, octaves)
	if total <= 0 {
		return ret
	}
	for i := range ret {
		ret[i].Scale = ret[i].Scale / total
	}
	return ret
}

// Island pulls heights down towards the edges of a width x depth area
func Island(height float64, x, y, width, depth int, exponent float64) float64 {
	dx := float64(x)/float64(width) - 0.5
	dy := float64(y)/float64(depth) - 0.5
	d := math.Sqrt(dx * dx + dy * dy) * 2
	d = math.Pow(d, exponent)
	return (1 - d + height) / 2
}
