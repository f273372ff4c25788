package wgpudriver

import (
	"fmt"

	"github.com/oliverbestmann/swatch/driver"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView and gives
// it a raw name in the driver's handle namespace. It is what the texture
// pipeline hands to sampler constructors as driver.Texture.
type Texture struct {
	d *Driver

	id driver.TextureID

	texture *wgpu.Texture
	view    *wgpu.TextureView

	format wgpu.TextureFormat

	width  uint32
	height uint32

	label string

	// false for wrapped textures, whose wgpu objects the caller owns
	owned bool
}

var _ driver.NativeTexture = (*Texture)(nil)

type TextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32

	Label string
}

// CreateTexture creates a 2d texture that can be sampled and uploaded to.
func (d *Driver) CreateTexture(opts TextureOptions) (*Texture, error) {
	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageCopyDst |
			wgpu.TextureUsageCopySrc,
	}

	texture, err := d.ctx.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()

		return nil, fmt.Errorf("create texture view: %w", err)
	}

	t := d.wrap(texture, view, opts.Label)
	t.owned = true

	return t, nil
}

// WrapTexture registers an existing wgpu.Texture and wgpu.TextureView with
// the driver. The caller keeps ownership of both.
func (d *Driver) WrapTexture(texture *wgpu.Texture, view *wgpu.TextureView, label string) *Texture {
	return d.wrap(texture, view, label)
}

func (d *Driver) wrap(texture *wgpu.Texture, view *wgpu.TextureView, label string) *Texture {
	d.lastTexture++

	t := &Texture{
		d:       d,
		id:      d.lastTexture,
		texture: texture,
		view:    view,
		format:  texture.GetFormat(),
		width:   texture.GetWidth(),
		height:  texture.GetHeight(),
		label:   label,
	}

	d.textures[t.id] = t

	return t
}

func (t *Texture) Label() string {
	return t.label
}

// NativeID returns the raw name of the texture, or zero after Release.
func (t *Texture) NativeID() driver.TextureID {
	return t.id
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) View() *wgpu.TextureView {
	return t.view
}

// WritePixels uploads tightly packed pixel data covering the full texture.
func (t *Texture) WritePixels(pixels []byte) error {
	if t.texture == nil {
		return fmt.Errorf("texture %q has been released", t.label)
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  t.width * 4,
		RowsPerImage: t.height,
	}

	size := &wgpu.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Origin:   wgpu.Origin3D{},
		Aspect:   wgpu.TextureAspectAll,
	}

	if err := t.d.ctx.WriteTexture(dest, pixels, layout, size); err != nil {
		return fmt.Errorf("copy pixel data to texture: %w", err)
	}

	return nil
}

// Release drops the texture from the driver, which invalidates every
// bindless handle minted from it, and releases the wgpu objects if the
// texture was created rather than wrapped. Sampler teardown deliberately
// never revokes handles for exactly this reason: after Release the driver
// may reuse their values.
func (t *Texture) Release() {
	if t.id == 0 {
		return
	}

	t.d.dropTexture(t.id)
	t.id = 0

	t.releaseObjects()
}

func (t *Texture) releaseObjects() {
	if t.owned {
		t.view.Release()
		t.texture.Release()
	}

	t.texture = nil
	t.view = nil
}
