package swatch

import "github.com/oliverbestmann/swatch/driver"

// FieldSampler is the sampler object for a volumetric field texture. It has
// the same shape as UvSampler, except that the given parameters are used
// verbatim: field textures carry no file embedded wrap metadata, so there
// is nothing to resolve them against.
type FieldSampler struct {
	d driver.Driver

	sampler driver.SamplerID
	handle  driver.BindlessHandle
}

// NewFieldSampler creates sampler state for a field texture. See
// NewUvSampler for the bindless behavior; the texture is only read during
// construction and not retained.
func NewFieldSampler(
	d driver.Driver,
	texture FieldTexture,
	params SamplerParameters,
	bindless bool,
) *FieldSampler {
	sampler := newDriverSampler(d, params)

	return &FieldSampler{
		d:       d,
		sampler: sampler,
		handle:  newSamplerTextureHandle(d, texture.DriverTexture(), sampler, bindless),
	}
}

// Destroy deletes the sampler state object. The combined handle is left to
// the driver for the same reason as in UvSampler.Destroy.
func (s *FieldSampler) Destroy() {
	if s.sampler != 0 {
		s.d.DeleteSampler(s.sampler)
		s.sampler = 0
	}
}

// SamplerID returns the driver sampler state object, for the binding layer.
func (s *FieldSampler) SamplerID() driver.SamplerID {
	return s.sampler
}

// BindlessHandle returns the combined texture+sampler handle, or zero when
// the sampler operates in non bindless mode.
func (s *FieldSampler) BindlessHandle() driver.BindlessHandle {
	return s.handle
}
