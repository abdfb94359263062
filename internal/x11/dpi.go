package x11

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/nativewin/internal/units"
)

// DPI returns the screen density: Xft.dpi from the RESOURCE_MANAGER
// property when set, otherwise the physical size reported by the server,
// otherwise 96.
func (c *Connection) DPI() float64 {
	resources, err := xprop.PropValStr(xprop.GetProperty(c.XUtil, c.Root, "RESOURCE_MANAGER"))
	if err == nil {
		if dpi, ok := parseXftDPI(resources); ok {
			return dpi
		}
	}

	s := c.XUtil.Screen()
	if dpi, ok := physicalDPI(int(s.WidthInPixels), int(s.WidthInMillimeters)); ok {
		return dpi
	}
	return units.BaseDPI
}

// parseXftDPI finds the Xft.dpi entry in an X resource database string.
func parseXftDPI(resources string) (float64, bool) {
	sc := bufio.NewScanner(strings.NewReader(resources))
	for sc.Scan() {
		name, value, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || dpi <= 0 {
			return 0, false
		}
		return dpi, true
	}
	return 0, false
}

func physicalDPI(pixels, millimeters int) (float64, bool) {
	if pixels <= 0 || millimeters <= 0 {
		return 0, false
	}
	return float64(pixels) * 25.4 / float64(millimeters), true
}
