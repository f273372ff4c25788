package driver

//go:generate go tool stringer -type=Wrap,MinFilter,MagFilter -output=enums_string.go

// Wrap is the addressing policy for texture coordinates outside [0,1].
//
// Besides the concrete modes it carries two sentinels: WrapNoOpinion defers
// to the opinion authored in the texture file metadata, and
// WrapLegacyNoOpinionFallbackRepeat is the historic uv texture node variant
// of that which falls back to repeat when the file has no opinion either.
// Both are resolved away for uv samplers before a descriptor reaches the
// driver; field samplers hand them through verbatim and the driver maps
// them to its default addressing mode.
type Wrap uint8

const (
	WrapClamp Wrap = iota
	WrapRepeat
	WrapBlackBorder
	WrapMirror
	WrapNoOpinion
	WrapLegacyNoOpinionFallbackRepeat
)

// MinFilter selects the minification filter, including the mipmap variants.
type MinFilter uint8

const (
	MinFilterNearest MinFilter = iota
	MinFilterLinear
	MinFilterNearestMipmapNearest
	MinFilterLinearMipmapNearest
	MinFilterNearestMipmapLinear
	MinFilterLinearMipmapLinear
)

// UsesMipmaps reports whether the filter samples from mipmap levels.
func (f MinFilter) UsesMipmaps() bool {
	return f >= MinFilterNearestMipmapNearest
}

// MagFilter selects the magnification filter.
type MagFilter uint8

const (
	MagFilterNearest MagFilter = iota
	MagFilterLinear
)
