package x11

import (
	"math"
	"testing"
)

func TestParseXftDPI(t *testing.T) {
	tests := []struct {
		name      string
		resources string
		want      float64
		ok        bool
	}{
		{"typical", "Xcursor.size:\t24\nXft.dpi:\t144\nXft.antialias:\t1\n", 144, true},
		{"fractional", "Xft.dpi: 120.5", 120.5, true},
		{"missing", "Xcursor.theme:\tAdwaita\n", 0, false},
		{"garbage", "Xft.dpi:\tlarge\n", 0, false},
		{"negative", "Xft.dpi:\t-3\n", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseXftDPI(tt.resources)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("parseXftDPI() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPhysicalDPI(t *testing.T) {
	got, ok := physicalDPI(1920, 508)
	if !ok || math.Abs(got-96) > 1e-9 {
		t.Fatalf("physicalDPI(1920, 508) = %v, %v; want 96, true", got, ok)
	}
	if _, ok := physicalDPI(1920, 0); ok {
		t.Fatal("zero millimeters must be rejected")
	}
}
