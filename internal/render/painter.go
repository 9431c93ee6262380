//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// SigilPainter uploads a rendered sigil into a reusable ebiten image.
type SigilPainter struct {
	size int
	img  *ebiten.Image
}

// NewSigilPainter allocates a painter for size×size sigils.
func NewSigilPainter(size int) *SigilPainter {
	return &SigilPainter{size: size, img: ebiten.NewImage(size, size)}
}

// Blit uploads src into the painter image and draws it scaled onto dst.
func (sp *SigilPainter) Blit(dst *ebiten.Image, src *image.RGBA, scale int) {
	if src == nil || src.Bounds().Dx() != sp.size || src.Bounds().Dy() != sp.size {
		return
	}
	sp.img.WritePixels(src.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Size returns the side length of the underlying image.
func (sp *SigilPainter) Size() int { return sp.size }
