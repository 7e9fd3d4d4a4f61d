// Package render turns derived data plus the current selection into
// display-ready descriptions for the presentation layer. Every renderer is a
// pure function: no I/O, no shared state.
package render

import "fmt"

// LineupPalette is the fixed 5-color palette for lineup overlays. Selections
// beyond 5 reuse colors cyclically.
var LineupPalette = []LineupColor{
	{Name: "Teal", Line: "#008080", Fill: "rgba(0, 128, 128, 0.35)"},
	{Name: "Cyan", Line: "#00BFFF", Fill: "rgba(0, 191, 255, 0.35)"},
	{Name: "Orange", Line: "#FF8C00", Fill: "rgba(255, 140, 0, 0.35)"},
	{Name: "Purple", Line: "#9370DB", Fill: "rgba(147, 112, 219, 0.35)"},
	{Name: "Lime", Line: "#32CD32", Fill: "rgba(50, 205, 50, 0.35)"},
}

// LineupColor is one palette entry with a solid line color and a translucent
// fill variant.
type LineupColor struct {
	Name string `json:"name"`
	Line string `json:"line"`
	Fill string `json:"fill"`
}

// PaletteColor returns the palette entry for a selection index, wrapping
// past the palette size.
func PaletteColor(index int) LineupColor {
	return LineupPalette[index%len(LineupPalette)]
}

// zoneScale is the red-to-green five-stop scale used to shade zones by
// shooting percentage: red (bad), orange, yellow, lime, green (good).
var zoneScale = [5]rgb{
	{215, 48, 39},   // red
	{244, 109, 67},  // orange
	{254, 224, 139}, // yellow
	{166, 217, 106}, // lime
	{26, 152, 80},   // green
}

type rgb struct{ r, g, b int }

func lerp(a, b rgb, t float64) rgb {
	return rgb{
		r: a.r + int(t*float64(b.r-a.r)),
		g: a.g + int(t*float64(b.g-a.g)),
		b: a.b + int(t*float64(b.b-a.b)),
	}
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// PctColor maps a shooting percentage in [0,1] onto the zone scale.
func PctColor(pct float64) string {
	if pct <= 0 {
		return zoneScale[0].hex()
	}
	if pct >= 1 {
		return zoneScale[4].hex()
	}
	pos := pct * 4
	i := int(pos)
	return lerp(zoneScale[i], zoneScale[i+1], pos-float64(i)).hex()
}

// DivergingColor maps a value onto a red-yellow-green scale centered at
// zero, with scale the magnitude that saturates the endpoints. Used for net
// rating, so a dead-even lineup reads yellow and the sign reads at a glance.
func DivergingColor(value, scale float64) string {
	if scale <= 0 {
		return zoneScale[2].hex()
	}
	t := value / scale
	if t < -1 {
		t = -1
	}
	if t > 1 {
		t = 1
	}
	if t < 0 {
		return lerp(zoneScale[2], zoneScale[0], -t).hex()
	}
	return lerp(zoneScale[2], zoneScale[4], t).hex()
}
