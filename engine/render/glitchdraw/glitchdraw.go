package glitchdraw

import (
	"github.com/rs/zerolog/log"
	"github.com/unitoftime/glitch"

	"github.com/unitoftime/tilelevel/engine/render"
)

// Rasterizer submits draw commands to a glitch render pass. Textures are
// uploaded to the GPU the first time they are drawn and cached by handle.
type Rasterizer struct {
	pass *glitch.RenderPass
	smooth bool
	sprites map[render.Texture]*glitch.Sprite
}

func NewRasterizer(pass *glitch.RenderPass, smooth bool) *Rasterizer {
	return &Rasterizer{
		pass: pass,
		smooth: smooth,
		sprites: make(map[render.Texture]*glitch.Sprite),
	}
}

func (r *Rasterizer) sprite(tex render.Texture) (*glitch.Sprite, bool) {
	sprite, ok := r.sprites[tex]
	if ok {
		return sprite, true
	}

	imager, ok := tex.(render.Imager)
	if !ok {
		log.Warn().Msg("glitchdraw: texture has no image data")
		return nil, false
	}

	texture := glitch.NewTexture(imager.Image(), r.smooth)
	sprite = glitch.NewSprite(texture, texture.Bounds())
	r.sprites[tex] = sprite
	return sprite, true
}

func (r *Rasterizer) Draw(cmd render.Command) {
	sprite, ok := r.sprite(cmd.Texture)
	if !ok { return }

	r.pass.SetLayer(render.Layer(cmd.Depth, glitch.DefaultLayer))

	scale := float32(cmd.Scale)
	mat := glitch.Mat4Ident
	mat.Scale(scale, scale, 1.0).Translate(float32(cmd.Position.X - cmd.Origin.X), float32(cmd.Position.Y - cmd.Origin.Y), 0)

	col := glitch.RGBA{
		float32(cmd.Tint.R) / 255,
		float32(cmd.Tint.G) / 255,
		float32(cmd.Tint.B) / 255,
		float32(cmd.Tint.A) / 255,
	}
	sprite.DrawColorMask(r.pass, mat, col)
}
