// Package frequency maps numeric frequencies onto chakra bands and exposes
// the breathwork metadata associated with each chakra.
package frequency

// Chakra names a band in the frequency table. Values match the category
// identifiers used by the sigil generator.
type Chakra string

const (
	Root        Chakra = "root"
	Sacral      Chakra = "sacral"
	SolarPlexus Chakra = "solar_plexus"
	Heart       Chakra = "heart"
	Throat      Chakra = "throat"
	ThirdEye    Chakra = "third_eye"
	Crown       Chakra = "crown"
)

// Defaults returned for chakras missing from the metadata tables.
const (
	DefaultBreathPattern = "Default Pattern"
	DefaultVisualization = "Default Visualization"
)

type band struct {
	chakra Chakra
	lo, hi float64 // inclusive bounds
}

var defaultBands = []band{
	{Root, 20, 30},
	{Sacral, 31, 40},
	{SolarPlexus, 41, 50},
	{Heart, 51, 60},
	{Throat, 61, 70},
	{ThirdEye, 71, 80},
	{Crown, 81, 90},
}

var breathPatterns = map[Chakra]string{
	Root:        "Deep Belly Breathing",
	Sacral:      "Pelvic Expansion Breathing",
	SolarPlexus: "Fire Breath",
	Heart:       "Heart-Centered Breathing",
	Throat:      "Resonant Humming",
	ThirdEye:    "Alternate Nostril Breathing",
	Crown:       "Crown Channeling Breath",
}

var visualizations = map[Chakra]string{
	Root:        "Red Earth Energy",
	Sacral:      "Orange Flowing Water",
	SolarPlexus: "Yellow Radiant Sun",
	Heart:       "Green Expanding Love",
	Throat:      "Blue Vibrating Wave",
	ThirdEye:    "Indigo Cosmic Light",
	Crown:       "Violet Divine Light",
}

// Mapper resolves numeric frequencies to chakras and serves their metadata.
// The zero value is not usable; construct one with NewMapper.
type Mapper struct {
	bands []band
}

// NewMapper returns a Mapper over the standard chakra bands.
func NewMapper() *Mapper {
	return &Mapper{bands: defaultBands}
}

// Chakra returns the chakra whose band contains hz, or false when hz falls
// outside every band.
func (m *Mapper) Chakra(hz float64) (Chakra, bool) {
	for _, b := range m.bands {
		if b.lo <= hz && hz <= b.hi {
			return b.chakra, true
		}
	}
	return "", false
}

// BreathPattern returns the breathing pattern for a chakra.
func (m *Mapper) BreathPattern(c Chakra) string {
	if p, ok := breathPatterns[c]; ok {
		return p
	}
	return DefaultBreathPattern
}

// Visualization returns the visualization description for a chakra.
func (m *Mapper) Visualization(c Chakra) string {
	if v, ok := visualizations[c]; ok {
		return v
	}
	return DefaultVisualization
}
