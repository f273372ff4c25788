package swatch

import (
	"fmt"

	"github.com/oliverbestmann/swatch/driver"
)

// TextureKind discriminates the texture representations a sampler can be
// created for.
type TextureKind uint8

const (
	TextureUv TextureKind = iota
	TextureField
	TexturePtex
)

func (k TextureKind) String() string {
	switch k {
	case TextureUv:
		return "uv"
	case TextureField:
		return "field"
	case TexturePtex:
		return "ptex"
	default:
		return fmt.Sprintf("TextureKind(%d)", uint8(k))
	}
}

// Texture is the read only view a sampler constructor gets onto a texture
// owned by the texture pipeline. The reference is borrowed for the duration
// of the constructor call only: sampler objects store the handles they
// derive from it, never the texture itself, and do not keep the texture
// alive or observe its replacement.
type Texture interface {
	// Kind reports which sampler variant the texture requires.
	Kind() TextureKind
}

// UvTexture is a conventional 2d texture. Besides its driver texture it
// exposes the wrap opinions read from the texture file headers, one per
// axis, which feed parameter resolution.
type UvTexture interface {
	Texture

	// DriverTexture returns the current driver texture.
	// May be nil while the texture pipeline is still loading.
	DriverTexture() driver.Texture

	// WrapParameters returns the file authored wrap opinions for the
	// S and T axes. Either may be driver.WrapNoOpinion.
	WrapParameters() (wrapS, wrapT driver.Wrap)
}

// FieldTexture is a volumetric field texture. Field textures carry no file
// embedded wrap metadata, so there is nothing to resolve against.
type FieldTexture interface {
	Texture

	// DriverTexture returns the current driver texture.
	// May be nil while the texture pipeline is still loading.
	DriverTexture() driver.Texture
}

// PtexTexture is a multi chart per face texture. It has no single 2d
// sampling domain and therefore no driver texture to pair with sampler
// state; instead it exposes the raw names of its two backing arrays.
type PtexTexture interface {
	Texture

	// TexelTexture returns the raw name of the texel data array.
	TexelTexture() driver.TextureID

	// LayoutTexture returns the raw name of the face layout index array.
	LayoutTexture() driver.TextureID
}
