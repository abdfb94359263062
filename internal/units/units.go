// Package units converts between density-independent units and physical
// pixels using a DPI value captured once when a window is created.
package units

import (
	"math"

	"github.com/1broseidon/nativewin/internal/geom"
)

// BaseDPI is the reference density at which one Dip equals one pixel.
const BaseDPI = 96.0

// Converter maps Dip values to pixels and back. The zero value behaves like
// a converter built for BaseDPI.
type Converter struct {
	factor float64
}

// NewConverter builds a converter for the given DPI. Non-positive or
// non-finite readings fall back to BaseDPI.
func NewConverter(dpi float64) Converter {
	if dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		dpi = BaseDPI
	}
	return Converter{factor: dpi / BaseDPI}
}

// Factor returns dpi / 96.
func (c Converter) Factor() float64 {
	if c.factor == 0 {
		return 1
	}
	return c.factor
}

// DPI returns the density the converter was built with.
func (c Converter) DPI() float64 {
	return c.Factor() * BaseDPI
}

// ToPixels rounds dip*factor to the nearest pixel.
func (c Converter) ToPixels(d geom.Dip) geom.Pixels {
	return geom.Pixels(math.Round(float64(d) * c.Factor()))
}

// ToDip divides a pixel count by the factor.
func (c Converter) ToDip(p geom.Pixels) geom.Dip {
	return geom.Dip(float64(p) / c.Factor())
}

// SizeToPixels converts each component of a Dip vector.
func (c Converter) SizeToPixels(s geom.Vec2[geom.Dip]) geom.Vec2[geom.Pixels] {
	return geom.Vec2[geom.Pixels]{X: c.ToPixels(s.X), Y: c.ToPixels(s.Y)}
}

// SizeToDip converts each component of a pixel vector.
func (c Converter) SizeToDip(s geom.Vec2[geom.Pixels]) geom.Vec2[geom.Dip] {
	return geom.Vec2[geom.Dip]{X: c.ToDip(s.X), Y: c.ToDip(s.Y)}
}

// BoundsToPixels converts both ends of a min/max pair.
func (c Converter) BoundsToPixels(m geom.MinMax[geom.Dip]) geom.MinMax[geom.Pixels] {
	return geom.MinMax[geom.Pixels]{Min: c.SizeToPixels(m.Min), Max: c.SizeToPixels(m.Max)}
}

// BoundsToDip converts both ends of a min/max pair.
func (c Converter) BoundsToDip(m geom.MinMax[geom.Pixels]) geom.MinMax[geom.Dip] {
	return geom.MinMax[geom.Dip]{Min: c.SizeToDip(m.Min), Max: c.SizeToDip(m.Max)}
}
