package swatch

import "github.com/oliverbestmann/swatch/driver"

// nativeTexture is a driver texture with a raw name, as the texture
// pipeline would hand out for the driver in use.
type nativeTexture struct {
	label string
	id    driver.TextureID
}

func (t nativeTexture) Label() string {
	return t.label
}

func (t nativeTexture) NativeID() driver.TextureID {
	return t.id
}

// foreignTexture is a driver texture of some other backend: it has no
// raw name to mint bindless handles from.
type foreignTexture struct{}

func (foreignTexture) Label() string {
	return "foreign"
}

type uvTexture struct {
	texture      driver.Texture
	wrapS, wrapT driver.Wrap
}

func (t uvTexture) Kind() TextureKind {
	return TextureUv
}

func (t uvTexture) DriverTexture() driver.Texture {
	return t.texture
}

func (t uvTexture) WrapParameters() (driver.Wrap, driver.Wrap) {
	return t.wrapS, t.wrapT
}

type fieldTexture struct {
	texture driver.Texture
}

func (t fieldTexture) Kind() TextureKind {
	return TextureField
}

func (t fieldTexture) DriverTexture() driver.Texture {
	return t.texture
}

type ptexTexture struct {
	texels driver.TextureID
	layout driver.TextureID
}

func (t ptexTexture) Kind() TextureKind {
	return TexturePtex
}

func (t ptexTexture) TexelTexture() driver.TextureID {
	return t.texels
}

func (t ptexTexture) LayoutTexture() driver.TextureID {
	return t.layout
}

// kindOnlyTexture reports a kind its concrete type does not satisfy the
// interface for.
type kindOnlyTexture struct {
	kind TextureKind
}

func (t kindOnlyTexture) Kind() TextureKind {
	return t.kind
}
