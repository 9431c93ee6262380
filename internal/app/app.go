//go:build ebiten

package app

import (
	"fmt"
	"image"
	"log"
	"time"

	"terra-sigil/internal/render"
	"terra-sigil/pkg/sigil"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game previews sigils, re-rendering whenever the category or seed changes.
type Game struct {
	painter *render.SigilPainter
	img     *image.RGBA

	categories []sigil.Category
	idx        int
	seed       string
	size       int
	scale      int
}

// New constructs a previewer starting at the provided category and seed.
func New(category sigil.Category, seed string, size, scale int) *Game {
	g := &Game{
		painter:    render.NewSigilPainter(size),
		categories: sigil.Categories(),
		seed:       seed,
		size:       size,
		scale:      scale,
	}
	for i, c := range g.categories {
		if c == category {
			g.idx = i
		}
	}
	g.rerender()
	return g
}

// Category returns the category currently on screen.
func (g *Game) Category() sigil.Category { return g.categories[g.idx] }

func (g *Game) generator() *sigil.Generator {
	gen, err := sigil.New("", string(g.categories[g.idx]), g.seed)
	if err != nil {
		// categories come from the fixed table, so resolution cannot fail
		panic(err)
	}
	return gen
}

func (g *Game) rerender() {
	g.img = g.generator().Render(g.size)
}

// Update handles key input: Tab cycles the category, R re-rolls the seed,
// S writes the current sigil to disk, Q or Escape quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.idx = (g.idx + 1) % len(g.categories)
		g.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed = fmt.Sprintf("solver-%d", time.Now().UnixNano())
		g.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		name := fmt.Sprintf("sigil_%s.png", g.categories[g.idx])
		if path, err := g.generator().Generate(name, g.size); err != nil {
			log.Printf("save sigil: %v", err)
		} else {
			log.Printf("wrote %s", path)
		}
	}
	return nil
}

// Draw renders the current sigil.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.img, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size * g.scale, g.size * g.scale
}
