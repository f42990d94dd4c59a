package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

// Imager is implemented by textures backed by decoded pixels
type Imager interface {
	Image() image.Image
}

// ImageRasterizer records the commands of a frame and composites them in software.
// Rotation and flip flags are not supported.
type ImageRasterizer struct {
	target *image.RGBA
	commands []Command
	Clear color.Color
}

func NewImageRasterizer(bounds image.Rectangle) *ImageRasterizer {
	return &ImageRasterizer{
		target: image.NewRGBA(bounds),
		commands: make([]Command, 0),
		Clear: color.Transparent,
	}
}

// Resize replaces the frame buffer. Recorded commands are kept.
func (r *ImageRasterizer) Resize(bounds image.Rectangle) {
	r.target = image.NewRGBA(bounds)
}

func (r *ImageRasterizer) Bounds() image.Rectangle {
	return r.target.Bounds()
}

func (r *ImageRasterizer) Draw(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Commands returns the commands recorded since the last Reset
func (r *ImageRasterizer) Commands() []Command {
	return r.commands
}

func (r *ImageRasterizer) Reset() {
	r.commands = r.commands[:0]
}

// Present composites the recorded commands, lowest depth first, and returns the frame
func (r *ImageRasterizer) Present() *image.RGBA {
	draw.Draw(r.target, r.target.Bounds(), image.NewUniform(r.Clear), image.Point{}, draw.Src)

	ordered := make([]Command, len(r.commands))
	copy(ordered, r.commands)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Depth < ordered[j].Depth
	})

	skipped := 0
	for _, cmd := range ordered {
		imager, ok := cmd.Texture.(Imager)
		if !ok {
			skipped++
			continue
		}
		r.composite(imager.Image(), cmd)
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("ImageRasterizer: textures without pixel data")
	}
	return r.target
}

func (r *ImageRasterizer) composite(src image.Image, cmd Command) {
	sr := src.Bounds()
	scale := cmd.Scale
	if scale <= 0 {
		scale = 1
	}

	at := image.Pt(
		int(cmd.Position.X - cmd.Origin.X*scale),
		int(cmd.Position.Y - cmd.Origin.Y*scale))
	dr := image.Rectangle{
		Min: at,
		Max: at.Add(image.Pt(int(float64(sr.Dx())*scale), int(float64(sr.Dy())*scale))),
	}

	if cmd.Tint != White {
		src = tinted{src, cmd.Tint}
	}

	if scale == 1 {
		draw.Draw(r.target, dr, src, sr.Min, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(r.target, dr, src, sr, draw.Over, nil)
}

// tinted multiplies every pixel of an image by a color
type tinted struct {
	image.Image
	tint color.RGBA
}

func (t tinted) ColorModel() color.Model {
	return color.RGBA64Model
}

func (t tinted) At(x, y int) color.Color {
	r, g, b, a := t.Image.At(x, y).RGBA()
	return color.RGBA64{
		R: uint16(r * uint32(t.tint.R) / 0xff),
		G: uint16(g * uint32(t.tint.G) / 0xff),
		B: uint16(b * uint32(t.tint.B) / 0xff),
		A: uint16(a * uint32(t.tint.A) / 0xff),
	}
}
