package loaders

import (
	"github.com/fzipp/bmfont"
	"github.com/google/uuid"

	"github.com/gpietz/go-gl-forge/engine/assets/types"
)

type BitmapFontLoader struct{}

// Load parses an AngelCode .fnt descriptor. Page images are not loaded here,
// the caller resolves them through the image loader.
func (fl *BitmapFontLoader) Load(path string, params interface{}) (*types.Resource, error) {
	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, err
	}

	data := &types.BitmapFontResourceData{
		Face:       desc.Info.Face,
		Size:       uint32(desc.Info.Size),
		LineHeight: int32(desc.Common.LineHeight),
		Baseline:   int32(desc.Common.Base),
		AtlasSizeX: int32(desc.Common.ScaleW),
		AtlasSizeY: int32(desc.Common.ScaleH),
		Glyphs:     make([]types.FontGlyph, 0, len(desc.Chars)),
		Kernings:   make([]types.FontKerning, 0, len(desc.Kerning)),
		Pages:      make([]types.BitmapFontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		data.Pages = append(data.Pages, types.BitmapFontPage{
			ID:   int8(p.ID),
			File: p.File,
		})
	}

	for _, g := range desc.Chars {
		data.Glyphs = append(data.Glyphs, types.FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		})
	}

	for p, k := range desc.Kerning {
		data.Kernings = append(data.Kernings, types.FontKerning{
			Codepoint0: p.First,
			Codepoint1: p.Second,
			Amount:     int16(k.Amount),
		})
	}

	return &types.Resource{
		ID:       uuid.New().String(),
		Name:     desc.Info.Face,
		FullPath: path,
		DataSize: uint64(len(desc.Chars)),
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *types.Resource) error {
	if resource.Data != nil {
		data := resource.Data.(*types.BitmapFontResourceData)
		data.Glyphs = nil
		data.Kernings = nil
		data.Pages = nil
		resource.Data = nil
		resource.DataSize = 0
	}
	return nil
}
