package sigil

import (
	"fmt"
	"image/color"
	"strings"
)

// Category identifies one of the seven chakra classes driving palette and
// geometry selection.
type Category string

const (
	Root        Category = "root"
	Sacral      Category = "sacral"
	SolarPlexus Category = "solar_plexus"
	Heart       Category = "heart"
	Throat      Category = "throat"
	ThirdEye    Category = "third_eye"
	Crown       Category = "crown"
)

// Palette holds the four colors associated with a category.
type Palette struct {
	Primary    color.RGBA
	Secondary  color.RGBA
	Accent     color.RGBA
	Background color.RGBA
}

var palettes = map[Category]Palette{
	Root: {
		Primary:    color.RGBA{R: 196, G: 30, B: 58, A: 255}, // deep red
		Secondary:  color.RGBA{R: 139, G: 0, B: 0, A: 255},   // dark red
		Accent:     color.RGBA{R: 255, G: 69, B: 0, A: 255},  // red-orange
		Background: color.RGBA{R: 20, G: 10, B: 10, A: 255},  // dark red-black
	},
	Sacral: {
		Primary:    color.RGBA{R: 255, G: 140, B: 0, A: 255}, // dark orange
		Secondary:  color.RGBA{R: 255, G: 165, B: 0, A: 255}, // orange
		Accent:     color.RGBA{R: 255, G: 215, B: 0, A: 255}, // gold
		Background: color.RGBA{R: 20, G: 15, B: 5, A: 255},   // dark brown
	},
	SolarPlexus: {
		Primary:    color.RGBA{R: 255, G: 215, B: 0, A: 255},   // gold
		Secondary:  color.RGBA{R: 255, G: 255, B: 0, A: 255},   // yellow
		Accent:     color.RGBA{R: 255, G: 250, B: 205, A: 255}, // lemon chiffon
		Background: color.RGBA{R: 20, G: 20, B: 5, A: 255},     // dark yellow-black
	},
	Heart: {
		Primary:    color.RGBA{R: 0, G: 128, B: 0, A: 255},     // green
		Secondary:  color.RGBA{R: 34, G: 139, B: 34, A: 255},   // forest green
		Accent:     color.RGBA{R: 144, G: 238, B: 144, A: 255}, // light green
		Background: color.RGBA{R: 5, G: 15, B: 5, A: 255},      // dark green-black
	},
	Throat: {
		Primary:    color.RGBA{R: 0, G: 191, B: 255, A: 255},   // deep sky blue
		Secondary:  color.RGBA{R: 30, G: 144, B: 255, A: 255},  // dodger blue
		Accent:     color.RGBA{R: 135, G: 206, B: 250, A: 255}, // light sky blue
		Background: color.RGBA{R: 5, G: 10, B: 20, A: 255},     // dark blue-black
	},
	ThirdEye: {
		Primary:    color.RGBA{R: 75, G: 0, B: 130, A: 255},    // indigo
		Secondary:  color.RGBA{R: 138, G: 43, B: 226, A: 255},  // blue violet
		Accent:     color.RGBA{R: 147, G: 112, B: 219, A: 255}, // medium purple
		Background: color.RGBA{R: 10, G: 5, B: 20, A: 255},     // dark purple-black
	},
	Crown: {
		Primary:    color.RGBA{R: 138, G: 43, B: 226, A: 255},  // blue violet
		Secondary:  color.RGBA{R: 148, G: 0, B: 211, A: 255},   // dark violet
		Accent:     color.RGBA{R: 218, G: 112, B: 214, A: 255}, // orchid
		Background: color.RGBA{R: 15, G: 5, B: 20, A: 255},     // dark violet-black
	},
}

// frequencyLabels maps solfeggio frequency labels onto categories. The label
// is only consulted when the explicit category string is unrecognized.
var frequencyLabels = map[string]Category{
	"396 Hz": Root,
	"417 Hz": Sacral,
	"528 Hz": SolarPlexus,
	"639 Hz": Heart,
	"741 Hz": Throat,
	"852 Hz": ThirdEye,
	"963 Hz": Crown,
}

// Categories returns all categories in ascending frequency order.
func Categories() []Category {
	return []Category{Root, Sacral, SolarPlexus, Heart, Throat, ThirdEye, Crown}
}

// PaletteFor returns the palette for a category and whether it is known.
func PaletteFor(c Category) (Palette, bool) {
	p, ok := palettes[c]
	return p, ok
}

// Resolve maps a requested category string and an optional frequency label to
// a known category. A recognized category string (case-insensitive) always
// wins; an unrecognized one falls back to the frequency label. When both
// fail, an *InvalidCategoryError names the offending input.
func Resolve(category, frequency string) (Category, error) {
	c := Category(strings.ToLower(category))
	if _, ok := palettes[c]; ok {
		return c, nil
	}
	if mapped, ok := frequencyLabels[frequency]; ok {
		return mapped, nil
	}
	return "", &InvalidCategoryError{Category: category, Frequency: frequency}
}

// InvalidCategoryError reports inputs that resolve to no known category.
type InvalidCategoryError struct {
	Category  string
	Frequency string
}

func (e *InvalidCategoryError) Error() string {
	if e.Frequency != "" {
		return fmt.Sprintf("unsupported category %q (frequency %q has no mapping)", e.Category, e.Frequency)
	}
	return fmt.Sprintf("unsupported category %q", e.Category)
}
