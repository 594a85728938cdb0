package icon

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec identifies one icon in the asset catalog: a point size, a device
// scale factor, and the device idiom Xcode files it under. The rendered
// pixel size and catalog filename both derive from these three fields.
type Spec struct {
	Points float64
	Scale  int
	Idiom  string
}

// Pixels is the rendered side length in pixels: point size times scale.
func (s Spec) Pixels() int {
	return int(s.Points * float64(s.Scale))
}

// Filename is the catalog filename, e.g. app-icon-20x20@2x.png.
func (s Spec) Filename() string {
	pts := formatPoints(s.Points)
	return fmt.Sprintf("app-icon-%sx%s@%dx.png", pts, pts, s.Scale)
}

// SizeLabel is the manifest size string, e.g. "83.5x83.5".
func (s Spec) SizeLabel() string {
	pts := formatPoints(s.Points)
	return pts + "x" + pts
}

// ScaleLabel is the manifest scale string, e.g. "2x".
func (s Spec) ScaleLabel() string {
	return strconv.Itoa(s.Scale) + "x"
}

// formatPoints renders a point size the way the catalog spells it:
// whole sizes drop the decimal, fractional ones keep it (83.5).
func formatPoints(p float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(p, 'f', 1, 64), ".0")
}

// AppIconSet lists every icon the AppIcon.appiconset needs, in generation
// order: iPhone, iPad, then the App Store marketing icon.
var AppIconSet = []Spec{
	{Points: 20, Scale: 2, Idiom: "iphone"},
	{Points: 20, Scale: 3, Idiom: "iphone"},
	{Points: 29, Scale: 2, Idiom: "iphone"},
	{Points: 29, Scale: 3, Idiom: "iphone"},
	{Points: 40, Scale: 2, Idiom: "iphone"},
	{Points: 40, Scale: 3, Idiom: "iphone"},
	{Points: 60, Scale: 2, Idiom: "iphone"},
	{Points: 60, Scale: 3, Idiom: "iphone"},
	{Points: 20, Scale: 1, Idiom: "ipad"},
	{Points: 29, Scale: 1, Idiom: "ipad"},
	{Points: 40, Scale: 1, Idiom: "ipad"},
	{Points: 76, Scale: 1, Idiom: "ipad"},
	{Points: 76, Scale: 2, Idiom: "ipad"},
	{Points: 83.5, Scale: 2, Idiom: "ipad"},
	{Points: 1024, Scale: 1, Idiom: "ios-marketing"},
}
