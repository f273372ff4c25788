package wgpudriver

import (
	"testing"

	"github.com/oliverbestmann/swatch/driver"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()

	ctx, err := NewContext()
	if err != nil {
		t.Skipf("no webgpu adapter available: %v", err)
	}

	t.Cleanup(ctx.Release)

	d := New(ctx)
	t.Cleanup(d.Release)

	return d
}

func newTestTexture(t *testing.T, d *Driver) *Texture {
	t.Helper()

	texture, err := d.CreateTexture(TextureOptions{
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  2,
		Height: 2,
		Label:  "test",
	})
	require.NoError(t, err)

	return texture
}

func TestDriverSamplerLifecycle(t *testing.T) {
	d := newTestDriver(t)

	id := d.CreateSampler(driver.SamplerDescriptor{
		WrapS:         driver.WrapRepeat,
		WrapT:         driver.WrapClamp,
		WrapR:         driver.WrapRepeat,
		MinFilter:     driver.MinFilterLinearMipmapLinear,
		MagFilter:     driver.MagFilterLinear,
		MaxAnisotropy: 16,
	})
	require.NotZero(t, id)

	_, ok := d.Sampler(id)
	assert.True(t, ok)

	d.DeleteSampler(id)

	_, ok = d.Sampler(id)
	assert.False(t, ok)

	// deleting again is harmless
	d.DeleteSampler(id)
}

func TestDriverCombinedHandleCascade(t *testing.T) {
	d := newTestDriver(t)

	texture := newTestTexture(t, d)

	id := d.CreateSampler(driver.SamplerDescriptor{MaxAnisotropy: 1})
	require.NotZero(t, id)

	h := d.SamplerTextureHandle(texture.NativeID(), id)
	require.NotZero(t, h)

	// not resident until marked
	_, _, ok := d.Binding(h)
	assert.False(t, ok)

	d.MakeHandleResident(h)

	view, sampler, ok := d.Binding(h)
	require.True(t, ok)
	assert.Same(t, texture.View(), view)
	assert.NotNil(t, sampler)
	assert.Equal(t, 1, d.ResidentHandles())

	// deleting the sampler implicitly kills the combined handle
	d.DeleteSampler(id)

	_, _, ok = d.Binding(h)
	assert.False(t, ok)
	assert.Equal(t, 0, d.ResidentHandles())
}

func TestDriverTextureHandleDiesWithTexture(t *testing.T) {
	d := newTestDriver(t)

	texture := newTestTexture(t, d)

	h := d.TextureHandle(texture.NativeID())
	require.NotZero(t, h)

	d.MakeHandleResident(h)
	assert.Equal(t, 1, d.ResidentHandles())

	texture.Release()

	// the driver invalidated the handle without being asked
	_, _, ok := d.Binding(h)
	assert.False(t, ok)
	assert.Equal(t, driver.TextureID(0), texture.NativeID())
}

func TestDriverRejectsUnknownNames(t *testing.T) {
	d := newTestDriver(t)

	assert.Zero(t, d.SamplerTextureHandle(0, 0))
	assert.Zero(t, d.TextureHandle(12345))

	texture := newTestTexture(t, d)
	assert.Zero(t, d.SamplerTextureHandle(texture.NativeID(), 12345))
}
