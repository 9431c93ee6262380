package frequency

import "testing"

func TestChakraBands(t *testing.T) {
	m := NewMapper()
	cases := []struct {
		hz   float64
		want Chakra
		ok   bool
	}{
		{20, Root, true},
		{25, Root, true},
		{30, Root, true},
		{31, Sacral, true},
		{45, SolarPlexus, true},
		{60, Heart, true},
		{61, Throat, true},
		{80, ThirdEye, true},
		{81, Crown, true},
		{90, Crown, true},
		{19, "", false},
		{91, "", false},
		{30.5, "", false},
	}
	for _, tc := range cases {
		got, ok := m.Chakra(tc.hz)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Chakra(%v) = (%q, %v), want (%q, %v)", tc.hz, got, ok, tc.want, tc.ok)
		}
	}
}

func TestChakraMetadata(t *testing.T) {
	m := NewMapper()
	if got := m.BreathPattern(Root); got != "Deep Belly Breathing" {
		t.Fatalf("BreathPattern(root) = %q", got)
	}
	if got := m.Visualization(Crown); got != "Violet Divine Light" {
		t.Fatalf("Visualization(crown) = %q", got)
	}
	for _, c := range []Chakra{Root, Sacral, SolarPlexus, Heart, Throat, ThirdEye, Crown} {
		if m.BreathPattern(c) == DefaultBreathPattern {
			t.Fatalf("chakra %q missing a breath pattern", c)
		}
		if m.Visualization(c) == DefaultVisualization {
			t.Fatalf("chakra %q missing a visualization", c)
		}
	}
}

func TestUnknownChakraDefaults(t *testing.T) {
	m := NewMapper()
	if got := m.BreathPattern("unknown"); got != DefaultBreathPattern {
		t.Fatalf("BreathPattern(unknown) = %q, want %q", got, DefaultBreathPattern)
	}
	if got := m.Visualization("unknown"); got != DefaultVisualization {
		t.Fatalf("Visualization(unknown) = %q, want %q", got, DefaultVisualization)
	}
}
