//go:build !ebiten

package render

import "image"

// SigilPainter is a placeholder for the headless build.
type SigilPainter struct{}

// NewSigilPainter panics to indicate that the ebiten build tag is required.
func NewSigilPainter(int) *SigilPainter {
	panic("render.NewSigilPainter requires building with the 'ebiten' tag")
}

// Blit is a no-op placeholder.
func (sp *SigilPainter) Blit(any, *image.RGBA, int) {}

// Size returns zero in the headless build.
func (sp *SigilPainter) Size() int { return 0 }
