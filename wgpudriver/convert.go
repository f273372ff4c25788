package wgpudriver

import (
	"github.com/oliverbestmann/swatch/driver"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// addressMode maps a wrap mode onto the nearest webgpu addressing mode.
// webgpu cannot sample a border color, so black border degrades to clamp to
// edge. The two no-opinion sentinels only reach the driver through field
// samplers, which skip resolution entirely; they get the repeat default.
func addressMode(w driver.Wrap) wgpu.AddressMode {
	switch w {
	case driver.WrapClamp:
		return wgpu.AddressModeClampToEdge
	case driver.WrapRepeat:
		return wgpu.AddressModeRepeat
	case driver.WrapBlackBorder:
		return wgpu.AddressModeClampToEdge
	case driver.WrapMirror:
		return wgpu.AddressModeMirrorRepeat
	default:
		return wgpu.AddressModeRepeat
	}
}

func minFilterMode(f driver.MinFilter) wgpu.FilterMode {
	switch f {
	case driver.MinFilterNearest,
		driver.MinFilterNearestMipmapNearest,
		driver.MinFilterNearestMipmapLinear:
		return wgpu.FilterModeNearest
	default:
		return wgpu.FilterModeLinear
	}
}

func magFilterMode(f driver.MagFilter) wgpu.FilterMode {
	if f == driver.MagFilterNearest {
		return wgpu.FilterModeNearest
	}

	return wgpu.FilterModeLinear
}

func mipmapFilterMode(f driver.MinFilter) wgpu.MipmapFilterMode {
	switch f {
	case driver.MinFilterNearestMipmapLinear, driver.MinFilterLinearMipmapLinear:
		return wgpu.MipmapFilterModeLinear
	default:
		return wgpu.MipmapFilterModeNearest
	}
}

// lodClamp restricts sampling to the base level for non mipmap filters.
func lodClamp(f driver.MinFilter) (lo, hi float32) {
	if f.UsesMipmaps() {
		return 0, 32
	}

	return 0, 0
}

// maxAnisotropy clamps the requested anisotropy to what webgpu accepts:
// anisotropic sampling requires all three filters to be linear.
func maxAnisotropy(desc driver.SamplerDescriptor) uint16 {
	if desc.MaxAnisotropy < 1 {
		return 1
	}

	if magFilterMode(desc.MagFilter) != wgpu.FilterModeLinear ||
		minFilterMode(desc.MinFilter) != wgpu.FilterModeLinear ||
		mipmapFilterMode(desc.MinFilter) != wgpu.MipmapFilterModeLinear {
		return 1
	}

	return uint16(desc.MaxAnisotropy)
}
