//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"terra-sigil/internal/app"
	"terra-sigil/internal/cli"
	"terra-sigil/pkg/sigil"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := cli.NewConfig()
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 1, "pixel scale multiplier")
	flag.Parse()

	if cfg.Size <= 0 {
		cfg.Size = sigil.DefaultSize
	}
	if *scale < 1 {
		*scale = 1
	}

	category, err := sigil.Resolve(cfg.Category, cfg.Frequency)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(category, cfg.Seed, cfg.Size, *scale)

	ebiten.SetWindowTitle("terra-sigil — " + string(category))
	ebiten.SetWindowSize(cfg.Size**scale, cfg.Size**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
