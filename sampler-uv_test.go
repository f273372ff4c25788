package swatch

import (
	"testing"

	"github.com/oliverbestmann/swatch/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUvSamplerResolvesAgainstFile(t *testing.T) {
	trace := &driver.Trace{}

	texture := uvTexture{
		texture: nativeTexture{label: "diffuse", id: 7},
		wrapS:   driver.WrapRepeat,
		wrapT:   driver.WrapClamp,
	}

	params := DefaultSamplerParameters()
	params.WrapS = driver.WrapNoOpinion
	params.WrapT = driver.WrapNoOpinion

	s := NewUvSampler(trace, texture, params, false)

	created := trace.CallsOf(driver.CallCreateSampler)
	require.Len(t, created, 1)

	desc := created[0].Desc
	assert.Equal(t, driver.WrapRepeat, desc.WrapS)
	assert.Equal(t, driver.WrapClamp, desc.WrapT)
	assert.Equal(t, driver.WrapRepeat, desc.WrapR)
	assert.True(t, desc.BorderColor.IsZero())
	assert.Equal(t, float32(16), desc.MaxAnisotropy)

	// bindless was not requested: no handle, no handle calls
	assert.Equal(t, driver.BindlessHandle(0), s.BindlessHandle())
	assert.Empty(t, trace.CallsOf(driver.CallSamplerTextureHandle))
	assert.Empty(t, trace.CallsOf(driver.CallMakeHandleResident))

	assert.NotZero(t, s.SamplerID())
}

func TestNewUvSamplerBindless(t *testing.T) {
	trace := &driver.Trace{}

	texture := uvTexture{
		texture: nativeTexture{label: "diffuse", id: 7},
	}

	s := NewUvSampler(trace, texture, DefaultSamplerParameters(), true)

	require.NotZero(t, s.BindlessHandle())

	minted := trace.CallsOf(driver.CallSamplerTextureHandle)
	require.Len(t, minted, 1)
	assert.Equal(t, driver.TextureID(7), minted[0].Texture)
	assert.Equal(t, s.SamplerID(), minted[0].Sampler)

	// residency is established before the constructor returns
	resident := trace.CallsOf(driver.CallMakeHandleResident)
	require.Len(t, resident, 1)
	assert.Equal(t, s.BindlessHandle(), resident[0].Handle)
}

func TestNewUvSamplerBindlessDegrades(t *testing.T) {
	tests := []struct {
		name  string
		trace driver.Trace
		tex   driver.Texture
	}{
		{"nil texture", driver.Trace{}, nil},
		{"foreign texture type", driver.Trace{}, foreignTexture{}},
		{"zero texture name", driver.Trace{}, nativeTexture{label: "pending", id: 0}},
		{"sampler creation failed", driver.Trace{FailSamplers: true}, nativeTexture{label: "diffuse", id: 7}},
		{"driver without bindless", driver.Trace{FailHandles: true}, nativeTexture{label: "diffuse", id: 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trace := tc.trace

			s := NewUvSampler(&trace, uvTexture{texture: tc.tex}, DefaultSamplerParameters(), true)

			assert.Equal(t, driver.BindlessHandle(0), s.BindlessHandle())
			assert.Empty(t, trace.CallsOf(driver.CallMakeHandleResident))
		})
	}
}

func TestUvSamplerDestroy(t *testing.T) {
	trace := &driver.Trace{}

	texture := uvTexture{
		texture: nativeTexture{label: "diffuse", id: 7},
	}

	s := NewUvSampler(trace, texture, DefaultSamplerParameters(), true)
	id := s.SamplerID()

	trace.Reset()
	s.Destroy()

	deleted := trace.CallsOf(driver.CallDeleteSampler)
	require.Len(t, deleted, 1)
	assert.Equal(t, id, deleted[0].Sampler)

	// the combined handle must never be revoked explicitly: the driver may
	// already have recycled it after a texture reload
	assert.Empty(t, trace.CallsOf(driver.CallMakeHandleNonResident))

	// destroying again is a no-op
	trace.Reset()
	s.Destroy()
	assert.Empty(t, trace.Calls)
}

func TestUvSamplerDestroyWithoutSampler(t *testing.T) {
	trace := &driver.Trace{FailSamplers: true}

	s := NewUvSampler(trace, uvTexture{}, DefaultSamplerParameters(), false)

	trace.Reset()
	s.Destroy()

	assert.Empty(t, trace.Calls)
}
