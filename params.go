// Package swatch manages the lifecycle of GPU sampler resources for a
// texture based rendering pipeline: the per texture filtering and wrap
// state handed to the driver, and optionally the bindless handles that let
// shader code reference a texture and sampler pair without a bind call.
//
// The texture pipeline that produces driver textures and file metadata, and
// the renderer that decides when samplers are created and evicted, are
// collaborators; they talk to this package through the interfaces in
// texture.go and through Registry. All calls must happen on the thread that
// owns the driver context, see the notes on driver.Driver.
package swatch

import "github.com/oliverbestmann/swatch/driver"

// SamplerParameters is the full addressing and filtering state requested
// for a texture. It is a plain value: two parameter sets compare equal via
// == exactly when all five fields are equal, which makes it usable as a
// cache key. A resolved and an unresolved parameter set are therefore
// distinct values.
type SamplerParameters struct {
	WrapS driver.Wrap
	WrapT driver.Wrap
	WrapR driver.Wrap

	MinFilter driver.MinFilter
	MagFilter driver.MagFilter
}

// DefaultSamplerParameters returns the parameters used when the scene has
// no opinion at all: repeat addressing with trilinear filtering.
func DefaultSamplerParameters() SamplerParameters {
	return SamplerParameters{
		WrapS:     driver.WrapRepeat,
		WrapT:     driver.WrapRepeat,
		WrapR:     driver.WrapRepeat,
		MinFilter: driver.MinFilterLinearMipmapLinear,
		MagFilter: driver.MagFilterLinear,
	}
}
