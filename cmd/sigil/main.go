// Command sigil renders a chakra sigil to a PNG file.
package main

import (
	"flag"
	"log"

	"terra-sigil/internal/cli"
	"terra-sigil/pkg/sigil"
)

func main() {
	cfg := cli.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Size <= 0 {
		cfg.Size = sigil.DefaultSize
	}

	gen, err := sigil.New(cfg.Frequency, cfg.Category, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	path, err := gen.Generate(cfg.Out, cfg.Size)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s, %dx%d)", path, gen.Category(), cfg.Size, cfg.Size)
}
