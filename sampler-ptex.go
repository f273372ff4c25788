package swatch

import "github.com/oliverbestmann/swatch/driver"

// PtexSampler is the sampler object for a multi chart ptex texture. Ptex
// has no single 2d sampling domain, so there is no sampler state object at
// all; in bindless mode the sampler holds up to two plain texture handles,
// one for the texel array and one for the face layout array.
type PtexSampler struct {
	d driver.Driver

	texelsHandle driver.BindlessHandle
	layoutHandle driver.BindlessHandle
}

// NewPtexSampler creates the bindless handles for a ptex texture. The
// params argument is accepted for uniformity with the other constructors
// and ignored entirely: there is no wrap or filter state to configure.
// Handles are minted independently per backing array; an absent array
// simply yields a zero handle.
func NewPtexSampler(
	d driver.Driver,
	texture PtexTexture,
	_ SamplerParameters,
	bindless bool,
) *PtexSampler {
	return &PtexSampler{
		d:            d,
		texelsHandle: newTextureHandle(d, texture.TexelTexture(), bindless),
		layoutHandle: newTextureHandle(d, texture.LayoutTexture(), bindless),
	}
}

// Destroy marks both handles non resident. This is the opposite of the
// UvSampler policy, and deliberately so: these handles were minted straight
// from the raw textures, there is no sampler state object whose deletion
// would cascade into them, so explicit revocation is the only cleanup path
// they have.
func (s *PtexSampler) Destroy() {
	if s.texelsHandle != 0 {
		s.d.MakeHandleNonResident(s.texelsHandle)
		s.texelsHandle = 0
	}

	if s.layoutHandle != 0 {
		s.d.MakeHandleNonResident(s.layoutHandle)
		s.layoutHandle = 0
	}
}

// TexelsHandle returns the bindless handle of the texel data array, or zero
// in non bindless mode.
func (s *PtexSampler) TexelsHandle() driver.BindlessHandle {
	return s.texelsHandle
}

// LayoutHandle returns the bindless handle of the face layout array, or
// zero in non bindless mode.
func (s *PtexSampler) LayoutHandle() driver.BindlessHandle {
	return s.layoutHandle
}
