package icon

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteMaster emits the icon design as a standalone SVG, the editable
// source of truth behind the raster set.
func WriteMaster(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("icon size must be positive, got %d", size)
	}

	margin := size / 6
	center := size / 2
	radius := center - margin
	handLen := size / 8

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:"+backgroundColor)
	canvas.Circle(center, center, radius,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", faceColor, outlineColor, max(1, size/40)))

	handStyle := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:butt", outlineColor, max(1, size/25))
	canvas.Line(center, center, center, center-handLen, handStyle)
	canvas.Line(center, center, center+handLen, center, handStyle)

	if size >= starMinSize {
		starSize := size / 8
		x := size - starSize - margin/2
		y := margin / 2
		xs := []int{x + starSize/2, x + starSize, x + starSize/2, x}
		ys := []int{y, y + starSize/2, y + starSize, y + starSize/2}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s", starFillColor, starEdgeColor))
	}
	canvas.End()
	return nil
}
