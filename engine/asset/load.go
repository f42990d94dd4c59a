package asset

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/unitoftime/packer"
	"gopkg.in/yaml.v3"
)

type Load struct {
	filesystem fs.FS
}

func NewLoad(filesystem fs.FS) *Load {
	return &Load{filesystem}
}

func (load *Load) Open(path string) (fs.File, error) {
	return load.filesystem.Open(path)
}

func (load *Load) Data(path string) ([]byte, error) {
	file, err := load.filesystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func (load *Load) Image(path string) (image.Image, error) {
	file, err := load.filesystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("asset: decoding %s: %w", path, err)
	}
	return img, nil
}

func (load *Load) Json(path string, dat interface{}) error {
	data, err := load.Data(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dat)
}

func (load *Load) Yaml(path string, dat interface{}) error {
	data, err := load.Data(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, dat)
}

// Spritesheet loads a packer spritesheet description and the image it points at
func (load *Load) Spritesheet(path string) (*Spritesheet, error) {
	serializedSpritesheet := packer.SerializedSpritesheet{}
	err := load.Json(path, &serializedSpritesheet)
	if err != nil {
		return nil, err
	}

	img, err := load.Image(serializedSpritesheet.ImageName)
	if err != nil {
		return nil, err
	}

	frames := make(map[string]image.Rectangle)
	for k, v := range serializedSpritesheet.Frames {
		x, y := int(v.Frame.X), int(v.Frame.Y)
		frames[k] = image.Rect(x, y, x + int(v.Frame.W), y + int(v.Frame.H))
	}

	return NewSpritesheet(img, frames), nil
}
