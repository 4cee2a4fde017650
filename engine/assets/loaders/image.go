package loaders

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gpietz/go-gl-forge/engine/assets/types"
)

type ImageLoader struct{}

// Load decodes an image file into tightly packed RGBA pixels. The decoder is
// picked by file signature, not extension.
func (il *ImageLoader) Load(path string, params interface{}) (*types.Resource, error) {
	flip := false
	if p, ok := params.(*types.ImageResourceParams); ok && p != nil {
		flip = p.FlipY
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	if flip {
		flipVertically(rgba)
	}

	return &types.Resource{
		ID:       uuid.New().String(),
		Name:     format,
		FullPath: path,
		DataSize: uint64(len(rgba.Pix)),
		Data: &types.ImageResourceData{
			ChannelCount: 4,
			Width:        uint32(bounds.Dx()),
			Height:       uint32(bounds.Dy()),
			Pixels:       rgba.Pix,
		},
	}, nil
}

func (il *ImageLoader) Unload(resource *types.Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

// flipVertically reverses the row order in place. OpenGL samples textures
// with the origin at the bottom-left, image decoders use top-left.
func flipVertically(img *image.RGBA) {
	height := img.Bounds().Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(height-1-y)*img.Stride : (height-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
