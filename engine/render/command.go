package render

import (
	"image/color"
	"math"

	"github.com/zyedidia/generic/queue"
)

type Vec2 struct {
	X, Y float64
}

type LayerFlags uint8

const (
	FlipNone LayerFlags = 0
	FlipHorizontal LayerFlags = 1
	FlipVertical LayerFlags = 2
)

var White = color.RGBA{255, 255, 255, 255}

// Command is one draw call. Rasterizers draw lower Depth first.
type Command struct {
	Texture Texture
	Position Vec2
	Tint color.RGBA
	Rotation float64
	Origin Vec2
	Scale float64
	Layer LayerFlags
	Depth float32
}

// NewCommand builds an untransformed, untinted draw of tex at pos
func NewCommand(tex Texture, pos Vec2, depth float32) Command {
	return Command{
		Texture: tex,
		Position: pos,
		Tint: White,
		Scale: 1,
		Layer: FlipNone,
		Depth: depth,
	}
}

// DepthLayers is how many layers one unit of depth spans in Layer
const DepthLayers = 64

// Layer maps depth onto a layer index around base for renderers that draw
// layer 0 last. Higher depth gives a lower index, clamped to [0, 255].
func Layer(depth float32, base uint8) uint8 {
	l := float64(base) - math.Round(float64(depth)*DepthLayers)
	if l < 0 {
		return 0
	}
	if l > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(l)
}

type Rasterizer interface {
	Draw(cmd Command)
}

// Batch holds commands until they are flushed, in submission order
type Batch struct {
	commands *queue.Queue[Command]
	n int
}

func NewBatch() *Batch {
	return &Batch{
		commands: queue.New[Command](),
	}
}

func (b *Batch) Add(cmd Command) {
	b.commands.Enqueue(cmd)
	b.n++
}

func (b *Batch) Len() int {
	return b.n
}

func (b *Batch) Clear() {
	b.commands = queue.New[Command]()
	b.n = 0
}

// Flush hands every command to raster and leaves the batch empty
func (b *Batch) Flush(raster Rasterizer) {
	for !b.commands.Empty() {
		raster.Draw(b.commands.Dequeue())
	}
	b.n = 0
}
