package hull

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// Draw renders the input cloud with the hull boundary overlaid and saves it
// as a PNG. Input points are small gray dots, hull vertices are filled
// circles, and the boundary is stroked as a closed loop. scale is pixels per
// coordinate unit.
func Draw(points, boundary PointList, scale float64, path string) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetRGB(0.4, 0.4, 0.4)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	if len(boundary) > 1 {
		c.SetLineWidth(2)
		c.MoveTo(boundary[0].X, boundary[0].Y)
		for _, p := range boundary[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(0, 1, 0)
	for _, p := range boundary {
		c.DrawCircle(p.X, p.Y, 5/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}

// ShowTerminal cats a rendered PNG inline to stdout, for terminals that
// support the iTerm2 image protocol.
func ShowTerminal(path string) {
	imgcat.CatFile(path, os.Stdout)
}
