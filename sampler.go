package swatch

import (
	"log/slog"

	"github.com/oliverbestmann/swatch/driver"
	"github.com/oliverbestmann/swatch/glm"
)

// Sampler is a GPU sampler resource created for one texture and one
// parameter set. A sampler's identity is fixed at creation; the renderer
// never mutates one in place but destroys it and creates a replacement
// with new parameters.
type Sampler interface {
	// Destroy releases the driver state the sampler owns. Each variant
	// has its own rule for which bindless handles are safe to revoke;
	// see UvSampler.Destroy and PtexSampler.Destroy.
	Destroy()
}

// Sampler creation policy. These are not caller configurable: every sampler
// the renderer creates uses the same border color and anisotropy level.
var samplerBorderColor = glm.Vec4f{0, 0, 0, 0}

const samplerMaxAnisotropy = 16

// newDriverSampler allocates driver sampler state for the given, already
// resolved, parameters.
func newDriverSampler(d driver.Driver, params SamplerParameters) driver.SamplerID {
	return d.CreateSampler(driver.SamplerDescriptor{
		WrapS:         params.WrapS,
		WrapT:         params.WrapT,
		WrapR:         params.WrapR,
		MinFilter:     params.MinFilter,
		MagFilter:     params.MagFilter,
		BorderColor:   samplerBorderColor,
		MaxAnisotropy: samplerMaxAnisotropy,
	})
}

// newSamplerTextureHandle mints a resident combined texture+sampler
// bindless handle, or returns zero when bindless operation is not requested
// or not possible for this texture. A texture that does not belong to the
// driver in use is a coding error on the caller's side, reported but not
// fatal: rendering continues through ordinary bound samplers.
func newSamplerTextureHandle(
	d driver.Driver,
	texture driver.Texture,
	sampler driver.SamplerID,
	bindless bool,
) driver.BindlessHandle {
	if !bindless {
		return 0
	}

	if texture == nil {
		return 0
	}

	native, ok := texture.(driver.NativeTexture)
	if !ok {
		slog.Error("bindless sampler handles require a driver native texture",
			slog.String("texture", texture.Label()))
		return 0
	}

	name := native.NativeID()
	if name == 0 {
		return 0
	}

	if sampler == 0 {
		return 0
	}

	h := d.SamplerTextureHandle(name, sampler)
	if h != 0 {
		d.MakeHandleResident(h)
	}

	return h
}

// newTextureHandle mints a resident plain bindless handle straight from a
// raw texture name, or returns zero when bindless operation is not
// requested or the name is absent.
func newTextureHandle(d driver.Driver, name driver.TextureID, bindless bool) driver.BindlessHandle {
	if !bindless {
		return 0
	}

	if name == 0 {
		return 0
	}

	h := d.TextureHandle(name)
	if h != 0 {
		d.MakeHandleResident(h)
	}

	return h
}
