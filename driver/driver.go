// Package driver is the thin binding layer between the sampler lifecycle in
// package swatch and a concrete GPU driver. It only knows about opaque handle
// values and sampler state descriptors; everything above it (parameter
// resolution, destruction policy) lives in swatch, everything below it
// (actual GPU calls) lives in a Driver implementation such as wgpudriver.
package driver

import "github.com/oliverbestmann/swatch/glm"

// SamplerID names a driver sampler state object. Zero means "no sampler".
type SamplerID uint32

// TextureID is the raw driver name of a texture. Zero means "no texture".
type TextureID uint64

// BindlessHandle is a driver assigned opaque 64 bit value that lets shader
// code reference a texture, or a texture plus sampler pair, without an
// explicit bind call. Zero means "no handle".
type BindlessHandle uint64

// SamplerDescriptor is the fully resolved state a sampler object is created
// with. Wrap values must already be resolved against texture file metadata
// where that applies; the driver maps whatever it receives onto its nearest
// native addressing mode.
type SamplerDescriptor struct {
	WrapS Wrap
	WrapT Wrap
	WrapR Wrap

	MinFilter MinFilter
	MagFilter MagFilter

	// BorderColor applies to WrapBlackBorder addressing, on drivers
	// that support a border color at all.
	BorderColor glm.Vec4f

	MaxAnisotropy float32
}

// Texture is an opaque driver texture as handed out by the texture pipeline.
// Concrete implementations belong to a Driver implementation.
type Texture interface {
	Label() string
}

// NativeTexture is implemented by textures that belong to the driver in use
// and can expose their raw name. Bindless handle creation requires it; a
// Texture that does not implement NativeTexture cannot go bindless.
type NativeTexture interface {
	Texture

	// NativeID returns the raw driver name of the texture.
	// May be zero while the texture pipeline has not committed the
	// texture to the GPU yet.
	NativeID() TextureID
}

// Driver issues the actual GPU calls for sampler state and bindless handles.
//
// None of the methods return errors: driver level failures are logged by the
// implementation itself and degrade to zero ids, matching the policy that
// bindless operation is an optional fast path. All methods must be called
// from the single thread (or serialized execution slot) that owns the
// driver context; implementations do no locking of their own.
type Driver interface {
	// CreateSampler allocates a sampler state object.
	// Returns zero if the driver rejects the descriptor.
	CreateSampler(desc SamplerDescriptor) SamplerID

	// DeleteSampler deletes a sampler state object. Deleting a sampler
	// implicitly invalidates every combined texture+sampler handle that
	// was minted from it. Zero and unknown ids are ignored.
	DeleteSampler(id SamplerID)

	// SamplerTextureHandle mints a combined texture+sampler bindless
	// handle. Returns zero if either name is zero or unknown. The handle
	// is not resident until MakeHandleResident is called.
	SamplerTextureHandle(texture TextureID, sampler SamplerID) BindlessHandle

	// TextureHandle mints a plain bindless handle straight from a raw
	// texture name, with no sampler state involved. Returns zero if the
	// name is zero or unknown.
	TextureHandle(texture TextureID) BindlessHandle

	// MakeHandleResident makes a handle usable by shaders. Residency is
	// effective when the call returns.
	MakeHandleResident(h BindlessHandle)

	// MakeHandleNonResident revokes shader access to a handle. Must only
	// be called for handles whose lifetime the caller fully controls;
	// see the destruction policy notes in package swatch.
	MakeHandleNonResident(h BindlessHandle)
}
