package icon

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// Icon design colors (blue theme for a trustworthy family app).
const (
	backgroundColor = "#007AFF"
	faceColor       = "#FFFFFF"
	outlineColor    = "#333333"
	starFillColor   = "#FFD700"
	starEdgeColor   = "#FFA500"
)

// starMinSize gates the reward star: below this the diamond is too small
// to read and is skipped.
const starMinSize = 40

// MasterSize is the canvas size used for the standalone master export.
const MasterSize = 1024

// Render draws one clock-and-star icon onto a fresh size x size canvas.
func Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}

	dc := gg.NewContext(size, size)
	dc.SetHexColor(backgroundColor)
	dc.Clear()

	// Clock face: white disk inset by the margin. The outline ring is
	// drawn inward so the disk edge stays exactly margin pixels from
	// every canvas border.
	margin := size / 6
	center := float64(size) / 2
	radius := float64(size)/2 - float64(margin)

	dc.SetHexColor(faceColor)
	dc.DrawCircle(center, center, radius)
	dc.Fill()

	ringWidth := float64(max(1, size/40))
	dc.SetHexColor(outlineColor)
	dc.SetLineWidth(ringWidth)
	dc.DrawCircle(center, center, radius-ringWidth/2)
	dc.Stroke()

	// Hands showing 3:00: hour hand up, minute hand right.
	handLen := float64(size / 8)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineWidth(float64(max(1, size/25)))
	dc.DrawLine(center, center, center, center-handLen)
	dc.Stroke()
	dc.DrawLine(center, center, center+handLen, center)
	dc.Stroke()

	if size >= starMinSize {
		drawStar(dc, size, margin)
	}

	return dc.Image(), nil
}

// drawStar puts the gold reward diamond near the top-right corner,
// inset by half the margin.
func drawStar(dc *gg.Context, size, margin int) {
	starSize := size / 8
	x := size - starSize - margin/2
	y := margin / 2

	dc.MoveTo(float64(x+starSize/2), float64(y))
	dc.LineTo(float64(x+starSize), float64(y+starSize/2))
	dc.LineTo(float64(x+starSize/2), float64(y+starSize))
	dc.LineTo(float64(x), float64(y+starSize/2))
	dc.ClosePath()

	dc.SetHexColor(starFillColor)
	dc.FillPreserve()
	dc.SetHexColor(starEdgeColor)
	dc.SetLineWidth(1)
	dc.Stroke()
}
