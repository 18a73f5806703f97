package render

import (
	"nightsky/internal/celestial"
	"nightsky/internal/logging"
)

// TextureCache loads each texture once by key. Failed loads are remembered
// and logged a single time; later lookups of that key report a miss without
// retrying.
type TextureCache[T any] struct {
	load   func(celestial.TextureKey) (T, error)
	log    logging.Logger
	loaded map[celestial.TextureKey]T
	failed map[celestial.TextureKey]bool
}

// NewTextureCache returns a cache backed by load.
func NewTextureCache[T any](load func(celestial.TextureKey) (T, error), log logging.Logger) *TextureCache[T] {
	return &TextureCache[T]{
		load:   load,
		log:    logging.OrNoop(log),
		loaded: make(map[celestial.TextureKey]T),
		failed: make(map[celestial.TextureKey]bool),
	}
}

// Get returns the texture for key, loading it on first use.
func (c *TextureCache[T]) Get(key celestial.TextureKey) (T, bool) {
	if tex, ok := c.loaded[key]; ok {
		return tex, true
	}
	var zero T
	if c.failed[key] {
		return zero, false
	}
	tex, err := c.load(key)
	if err != nil {
		c.failed[key] = true
		c.log.Warn("texture unavailable", logging.String("key", string(key)), logging.Err(err))
		return zero, false
	}
	c.loaded[key] = tex
	return tex, true
}

// Len reports how many textures loaded successfully.
func (c *TextureCache[T]) Len() int { return len(c.loaded) }
