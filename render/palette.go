package render

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyPalette is returned when a palette has no usable color
var ErrEmptyPalette = errors.New("palette has no colors")

// ParseColor parses a #rrggbb (or #rgb) token
func ParseColor(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseColor is ParseColor for compile-time constants, panics on bad input
func MustParseColor(hex string) RGB {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePalette parses every token, failing on the first invalid one
func ParsePalette(tokens []string) ([]RGB, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyPalette
	}
	out := make([]RGB, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseColor(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
