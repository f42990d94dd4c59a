package asset

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Texture is a named image. It satisfies render.Texture and render.Imager.
type Texture struct {
	name string
	img image.Image
}

func NewTexture(name string, img image.Image) *Texture {
	return &Texture{
		name: name,
		img: img,
	}
}

func (t *Texture) Name() string {
	return t.name
}

func (t *Texture) Width() int {
	return t.img.Bounds().Dx()
}

func (t *Texture) Height() int {
	return t.img.Bounds().Dy()
}

func (t *Texture) Image() image.Image {
	return t.img
}

func (t *Texture) String() string {
	return fmt.Sprintf("%s(%dx%d)", t.name, t.Width(), t.Height())
}

type Spritesheet struct {
	img image.Image
	frames map[string]image.Rectangle
	lookup map[string]*Texture
}

func NewSpritesheet(img image.Image, frames map[string]image.Rectangle) *Spritesheet {
	return &Spritesheet{
		img: img,
		frames: frames,
		lookup: make(map[string]*Texture),
	}
}

// Get returns the texture for a frame. Repeated calls return the same handle.
func (s *Spritesheet) Get(name string) (*Texture, error) {
	tex, ok := s.lookup[name]
	if ok {
		return tex, nil
	}

	rect, ok := s.frames[name]
	if !ok {
		return nil, fmt.Errorf("asset: invalid sprite name %q", name)
	}
	if !rect.In(s.img.Bounds()) {
		return nil, fmt.Errorf("asset: sprite %q %v outside of sheet %v", name, rect, s.img.Bounds())
	}

	tex = NewTexture(name, subImage(s.img, rect))
	s.lookup[name] = tex
	return tex, nil
}

func (s *Spritesheet) Image() image.Image {
	return s.img
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func subImage(img image.Image, rect image.Rectangle) image.Image {
	if sub, ok := img.(subImager); ok {
		return sub.SubImage(rect)
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), img, rect.Min, draw.Src)
	return dst
}
