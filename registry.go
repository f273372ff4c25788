package swatch

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/swatch/driver"
)

// ErrUnsupportedTexture is returned when a texture reports a kind the
// registry cannot create a sampler for.
var ErrUnsupportedTexture = errors.New("swatch: unsupported texture kind")

const defaultRegistryCapacity = 64

type registryKey struct {
	texture  uint64
	params   SamplerParameters
	bindless bool
}

// Registry creates sampler objects and caches them per texture and
// parameter set. Evicting an entry destroys its sampler, so anything a
// lookup returns stays valid only as long as the entry lives; callers that
// sample every frame simply look the sampler up again.
//
// Textures are identified by a caller assigned key, since the registry must
// not retain the texture itself. The texture pipeline owns texture identity
// and calls Invalidate when it reloads or replaces a texture.
type Registry struct {
	d     driver.Driver
	cache *lru.Cache[registryKey, Sampler]
}

// NewRegistry creates a registry holding at most capacity samplers.
// A capacity below one falls back to a default.
func NewRegistry(d driver.Driver, capacity int) *Registry {
	if capacity < 1 {
		capacity = defaultRegistryCapacity
	}

	cache, _ := lru.NewWithEvict[registryKey, Sampler](capacity, destroyOnEvict)

	return &Registry{d: d, cache: cache}
}

func destroyOnEvict(_ registryKey, s Sampler) {
	s.Destroy()
}

// Sampler returns the cached sampler for (textureKey, params, bindless), or
// creates one for the given texture. The texture is only read when an entry
// is actually created, and never retained.
func (r *Registry) Sampler(
	textureKey uint64,
	texture Texture,
	params SamplerParameters,
	bindless bool,
) (Sampler, error) {
	key := registryKey{texture: textureKey, params: params, bindless: bindless}

	if s, ok := r.cache.Get(key); ok {
		return s, nil
	}

	s, err := r.newSampler(texture, params, bindless)
	if err != nil {
		return nil, err
	}

	r.cache.Add(key, s)

	return s, nil
}

func (r *Registry) newSampler(texture Texture, params SamplerParameters, bindless bool) (Sampler, error) {
	switch kind := texture.Kind(); kind {
	case TextureUv:
		uv, ok := texture.(UvTexture)
		if !ok {
			return nil, fmt.Errorf("%w: %T reports %s", ErrUnsupportedTexture, texture, kind)
		}

		return NewUvSampler(r.d, uv, params, bindless), nil

	case TextureField:
		field, ok := texture.(FieldTexture)
		if !ok {
			return nil, fmt.Errorf("%w: %T reports %s", ErrUnsupportedTexture, texture, kind)
		}

		return NewFieldSampler(r.d, field, params, bindless), nil

	case TexturePtex:
		ptex, ok := texture.(PtexTexture)
		if !ok {
			return nil, fmt.Errorf("%w: %T reports %s", ErrUnsupportedTexture, texture, kind)
		}

		return NewPtexSampler(r.d, ptex, params, bindless), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTexture, kind)
	}
}

// Invalidate destroys every cached sampler created for the given texture
// key. The texture pipeline calls this when it reloads or replaces the
// texture, before the old driver texture goes away.
func (r *Registry) Invalidate(textureKey uint64) {
	for _, key := range r.cache.Keys() {
		if key.texture == textureKey {
			r.cache.Remove(key)
		}
	}
}

// Len returns the number of live samplers in the registry.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Close destroys all cached samplers. The registry stays usable, matching
// the behavior of an eviction of everything.
func (r *Registry) Close() {
	r.cache.Purge()
}
