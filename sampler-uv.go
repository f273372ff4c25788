package swatch

import "github.com/oliverbestmann/swatch/driver"

// UvSampler is the sampler object for a conventional 2d texture. It owns
// one driver sampler state object and, in bindless mode, one combined
// texture+sampler handle.
type UvSampler struct {
	d driver.Driver

	sampler driver.SamplerID
	handle  driver.BindlessHandle
}

// NewUvSampler creates sampler state for a 2d texture. WrapS and wrapT are
// resolved against the wrap opinions from the texture file before the
// driver sees them. When bindless is set and the texture has a usable
// driver name, a combined handle is minted and resident by the time the
// constructor returns; in every other case the sampler simply has no
// bindless handle and rendering falls back to explicit binds.
//
// The texture is only read during construction and not retained.
func NewUvSampler(
	d driver.Driver,
	texture UvTexture,
	params SamplerParameters,
	bindless bool,
) *UvSampler {
	sampler := newDriverSampler(d, resolveUvParameters(texture, params))

	return &UvSampler{
		d:       d,
		sampler: sampler,
		handle:  newSamplerTextureHandle(d, texture.DriverTexture(), sampler, bindless),
	}
}

// Destroy deletes the sampler state object. Deleting it also invalidates
// the combined texture+sampler handle, so the handle needs no cleanup of
// its own. More importantly, it must not get any: the texture pipeline may
// already have destroyed or reloaded the underlying texture, which
// invalidates the handle too, and the driver may have recycled the same
// handle value for an unrelated resource. Revoking residency here could
// therefore hit a resource we do not own.
func (s *UvSampler) Destroy() {
	if s.sampler != 0 {
		s.d.DeleteSampler(s.sampler)
		s.sampler = 0
	}
}

// SamplerID returns the driver sampler state object, for the binding layer.
func (s *UvSampler) SamplerID() driver.SamplerID {
	return s.sampler
}

// BindlessHandle returns the combined texture+sampler handle, or zero when
// the sampler operates in non bindless mode.
func (s *UvSampler) BindlessHandle() driver.BindlessHandle {
	return s.handle
}
