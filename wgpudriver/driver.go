package wgpudriver

import (
	"log/slog"

	"github.com/oliverbestmann/swatch/driver"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Driver implements driver.Driver on a webgpu device.
//
// webgpu has no equivalent of driver resident bindless handles, so the
// handle table lives here: a handle is an opaque value this driver assigns,
// and the binding layer resolves it back to the texture view and sampler it
// was minted from when it assembles bind groups. The invalidation semantics
// match what the sampler lifecycle depends on: deleting a sampler kills
// every combined handle minted from it, and releasing a texture kills every
// handle minted from that texture.
//
// A Driver does no locking; all calls must stay on the thread that owns the
// Context.
type Driver struct {
	ctx *Context

	lastSampler driver.SamplerID
	lastTexture driver.TextureID
	lastHandle  driver.BindlessHandle

	samplers map[driver.SamplerID]*wgpu.Sampler
	textures map[driver.TextureID]*Texture
	handles  map[driver.BindlessHandle]*handleEntry
}

type handleEntry struct {
	texture driver.TextureID

	// zero for plain texture handles
	sampler driver.SamplerID

	resident bool
}

var _ driver.Driver = (*Driver)(nil)

func New(ctx *Context) *Driver {
	return &Driver{
		ctx:      ctx,
		samplers: map[driver.SamplerID]*wgpu.Sampler{},
		textures: map[driver.TextureID]*Texture{},
		handles:  map[driver.BindlessHandle]*handleEntry{},
	}
}

func (d *Driver) CreateSampler(desc driver.SamplerDescriptor) driver.SamplerID {
	lodMin, lodMax := lodClamp(desc.MinFilter)

	sampler, err := d.ctx.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "swatch-sampler",
		AddressModeU:  addressMode(desc.WrapS),
		AddressModeV:  addressMode(desc.WrapT),
		AddressModeW:  addressMode(desc.WrapR),
		MagFilter:     magFilterMode(desc.MagFilter),
		MinFilter:     minFilterMode(desc.MinFilter),
		MipmapFilter:  mipmapFilterMode(desc.MinFilter),
		LodMinClamp:   lodMin,
		LodMaxClamp:   lodMax,
		MaxAnisotropy: maxAnisotropy(desc),
	})

	if err != nil {
		slog.Error("create wgpu sampler", slog.Any("error", err))
		return 0
	}

	d.lastSampler++
	id := d.lastSampler
	d.samplers[id] = sampler

	return id
}

func (d *Driver) DeleteSampler(id driver.SamplerID) {
	sampler, ok := d.samplers[id]
	if !ok {
		return
	}

	delete(d.samplers, id)
	sampler.Release()

	// combined handles minted from this sampler die with it
	for h, entry := range d.handles {
		if entry.sampler == id {
			delete(d.handles, h)
		}
	}
}

func (d *Driver) SamplerTextureHandle(texture driver.TextureID, sampler driver.SamplerID) driver.BindlessHandle {
	if _, ok := d.textures[texture]; !ok {
		return 0
	}

	if _, ok := d.samplers[sampler]; !ok {
		return 0
	}

	return d.mintHandle(&handleEntry{texture: texture, sampler: sampler})
}

func (d *Driver) TextureHandle(texture driver.TextureID) driver.BindlessHandle {
	if _, ok := d.textures[texture]; !ok {
		return 0
	}

	return d.mintHandle(&handleEntry{texture: texture})
}

func (d *Driver) mintHandle(entry *handleEntry) driver.BindlessHandle {
	d.lastHandle++
	d.handles[d.lastHandle] = entry

	return d.lastHandle
}

func (d *Driver) MakeHandleResident(h driver.BindlessHandle) {
	if entry, ok := d.handles[h]; ok {
		entry.resident = true
	}
}

func (d *Driver) MakeHandleNonResident(h driver.BindlessHandle) {
	if entry, ok := d.handles[h]; ok {
		entry.resident = false
	}
}

// Sampler resolves a sampler id, for the binding layer.
func (d *Driver) Sampler(id driver.SamplerID) (*wgpu.Sampler, bool) {
	sampler, ok := d.samplers[id]
	return sampler, ok
}

// Binding resolves a resident handle to the objects a bind group needs.
// The sampler is nil for plain texture handles.
func (d *Driver) Binding(h driver.BindlessHandle) (view *wgpu.TextureView, sampler *wgpu.Sampler, ok bool) {
	entry, ok := d.handles[h]
	if !ok || !entry.resident {
		return nil, nil, false
	}

	texture, ok := d.textures[entry.texture]
	if !ok {
		return nil, nil, false
	}

	return texture.view, d.samplers[entry.sampler], true
}

// ResidentHandles returns the number of currently resident handles.
func (d *Driver) ResidentHandles() int {
	n := 0
	for _, entry := range d.handles {
		if entry.resident {
			n++
		}
	}

	return n
}

// Release releases all live driver objects. Handles minted from them are
// gone afterwards; the Context itself stays untouched.
func (d *Driver) Release() {
	for _, texture := range d.textures {
		texture.releaseObjects()
	}

	for _, sampler := range d.samplers {
		sampler.Release()
	}

	d.samplers = map[driver.SamplerID]*wgpu.Sampler{}
	d.textures = map[driver.TextureID]*Texture{}
	d.handles = map[driver.BindlessHandle]*handleEntry{}
}

// dropTexture removes a released texture and, mirroring what a native
// driver does, silently invalidates every handle minted from it.
func (d *Driver) dropTexture(id driver.TextureID) {
	delete(d.textures, id)

	for h, entry := range d.handles {
		if entry.texture == id {
			delete(d.handles, h)
		}
	}
}
