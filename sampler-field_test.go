package swatch

import (
	"testing"

	"github.com/oliverbestmann/swatch/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldSamplerUsesParametersVerbatim(t *testing.T) {
	trace := &driver.Trace{}

	// field textures have no file metadata: even a sentinel wrap value
	// reaches the driver unresolved
	params := SamplerParameters{
		WrapS:     driver.WrapNoOpinion,
		WrapT:     driver.WrapBlackBorder,
		WrapR:     driver.WrapMirror,
		MinFilter: driver.MinFilterLinear,
		MagFilter: driver.MagFilterNearest,
	}

	texture := fieldTexture{texture: nativeTexture{label: "density", id: 3}}

	s := NewFieldSampler(trace, texture, params, true)

	created := trace.CallsOf(driver.CallCreateSampler)
	require.Len(t, created, 1)

	desc := created[0].Desc
	assert.Equal(t, driver.WrapNoOpinion, desc.WrapS)
	assert.Equal(t, driver.WrapBlackBorder, desc.WrapT)
	assert.Equal(t, driver.WrapMirror, desc.WrapR)
	assert.Equal(t, driver.MinFilterLinear, desc.MinFilter)
	assert.Equal(t, driver.MagFilterNearest, desc.MagFilter)

	// bindless creation works like the uv variant
	require.NotZero(t, s.BindlessHandle())

	minted := trace.CallsOf(driver.CallSamplerTextureHandle)
	require.Len(t, minted, 1)
	assert.Equal(t, driver.TextureID(3), minted[0].Texture)
}

func TestFieldSamplerDestroy(t *testing.T) {
	trace := &driver.Trace{}

	texture := fieldTexture{texture: nativeTexture{label: "density", id: 3}}

	s := NewFieldSampler(trace, texture, DefaultSamplerParameters(), true)
	id := s.SamplerID()

	trace.Reset()
	s.Destroy()

	deleted := trace.CallsOf(driver.CallDeleteSampler)
	require.Len(t, deleted, 1)
	assert.Equal(t, id, deleted[0].Sampler)

	// same rule as the uv variant: the combined handle is the driver's
	assert.Empty(t, trace.CallsOf(driver.CallMakeHandleNonResident))
}
