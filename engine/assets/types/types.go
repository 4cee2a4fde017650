package types

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	ResourceTypeNone ResourceType = iota
	/** @brief Shader source resource type. */
	ResourceTypeShader
	/** @brief Image resource type. */
	ResourceTypeImage
	/** @brief Bitmap font resource type. */
	ResourceTypeBitmapFont
)

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief Unique id assigned when the resource is loaded. */
	ID string
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}

// ImageResourceParams configures image decoding.
type ImageResourceParams struct {
	FlipY bool
}

// ImageResourceData is the Data payload of an image resource.
type ImageResourceData struct {
	ChannelCount uint8
	Width        uint32
	Height       uint32
	Pixels       []uint8
}

// ShaderResourceData is the Data payload of a shader resource. Source is the
// GLSL text without a trailing null terminator.
type ShaderResourceData struct {
	Source string
}

// FontGlyph describes one character within the font atlas.
type FontGlyph struct {
	Codepoint rune
	X         uint16
	Y         uint16
	Width     uint16
	Height    uint16
	XOffset   int16
	YOffset   int16
	XAdvance  int16
	PageID    uint8
}

// FontKerning adjusts the advance between a specific pair of characters.
type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int16
}

// BitmapFontPage names one atlas image file of the font.
type BitmapFontPage struct {
	ID   int8
	File string
}

// BitmapFontResourceData is the Data payload of a bitmap font resource.
type BitmapFontResourceData struct {
	Face       string
	Size       uint32
	LineHeight int32
	Baseline   int32
	AtlasSizeX int32
	AtlasSizeY int32
	Glyphs     []FontGlyph
	Kernings   []FontKerning
	Pages      []BitmapFontPage
}
