// Package sigil procedurally generates sigil images for wound reports. A
// sigil's palette comes from its chakra category and its geometry from five
// parameters derived from the solver id, so the same inputs always render
// the same image.
package sigil

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// DefaultSize is the canvas side length used when the caller passes a
// non-positive size.
const DefaultSize = 512

// Generator renders sigils for a single resolved category and seed. It is
// immutable after New and safe to share between goroutines.
type Generator struct {
	category Category
	palette  Palette
	params   Params
}

// New resolves the category (falling back to the frequency label when the
// category string is unrecognized) and derives drawing parameters from the
// seed. Returns *InvalidCategoryError when neither input resolves.
func New(frequency, category, seed string) (*Generator, error) {
	resolved, err := Resolve(category, frequency)
	if err != nil {
		return nil, err
	}
	return &Generator{
		category: resolved,
		palette:  palettes[resolved],
		params:   DeriveParams(seed),
	}, nil
}

// Category returns the resolved category.
func (g *Generator) Category() Category { return g.category }

// Palette returns the category's color palette.
func (g *Generator) Palette() Palette { return g.palette }

// Params returns the seed-derived drawing parameters.
func (g *Generator) Params() Params { return g.params }

// Render draws the sigil onto a fresh size×size canvas and returns it. A
// non-positive size falls back to DefaultSize.
func (g *Generator) Render(size int) *image.RGBA {
	if size <= 0 {
		size = DefaultSize
	}
	dc := gg.NewContext(size, size)
	dc.SetColor(g.palette.Background)
	dc.Clear()

	cx := float64(size / 2)
	cy := float64(size / 2)
	base := float64(size / 3)
	g.draw(dc, cx, cy, base)

	return dc.Image().(*image.RGBA)
}

// Generate renders the sigil and writes it as a PNG to outputPath, creating
// parent directories on demand. Returns the path written.
func (g *Generator) Generate(outputPath string, size int) (string, error) {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create sigil directory for %s: %w", outputPath, err)
		}
	}
	if err := gg.SavePNG(outputPath, g.Render(size)); err != nil {
		return "", fmt.Errorf("write sigil %s: %w", outputPath, err)
	}
	return outputPath, nil
}
