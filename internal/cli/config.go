package cli

import (
	"flag"

	"terra-sigil/pkg/sigil"
)

// Config represents the command-line parameters shared by the sigil tools.
type Config struct {
	Category  string
	Frequency string
	Seed      string
	Out       string
	Size      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Category: string(sigil.Root),
		Seed:     "solver123",
		Out:      "sigil.png",
		Size:     sigil.DefaultSize,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Category, "category", c.Category, "chakra category to render")
	fs.StringVar(&c.Frequency, "frequency", c.Frequency, `frequency label fallback (e.g. "396 Hz")`)
	fs.StringVar(&c.Seed, "seed", c.Seed, "solver id driving the procedural variation")
	fs.StringVar(&c.Out, "out", c.Out, "output PNG path")
	fs.IntVar(&c.Size, "size", c.Size, "image side length in pixels")
}
