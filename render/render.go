// Package render draws a stitched tour walk onto a map canvas.
//
// The walk's node coordinates are projected linearly through a geographic
// extent (an orb.Bound) onto the canvas, the reference map background is
// stretched underneath when one is supplied, and the route is drawn as
// line segments with square markers at every node — the classic
// "dots and line" route overlay. Output is a PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/paulmach/orb"

	"github.com/roundtour/roundtour/core"
)

// ErrEmptyWalk is returned when the walk to draw has no nodes.
var ErrEmptyWalk = errors.New("render: walk has no nodes")

// autoPad widens the auto-computed extent by this fraction per side so the
// route does not touch the canvas border.
const autoPad = 0.05

// minSpan keeps a degenerate extent (single node, or a perfectly
// horizontal/vertical walk) projectable.
const minSpan = 1e-3

type options struct {
	width, height int
	background    image.Image
	extent        orb.Bound
	hasExtent     bool
	line          color.Color
	marker        color.Color
}

// Option customizes Draw and Save.
type Option func(*options)

// WithSize sets the canvas size in pixels. Non-positive values panic: a
// canvas with no area is a configuration bug, not a runtime condition.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width <= 0 || height <= 0 {
			panic("render: canvas size must be positive")
		}
		o.width, o.height = width, height
	}
}

// WithBackground places img (typically the reference map) under the
// route, stretched to the canvas.
func WithBackground(img image.Image) Option {
	return func(o *options) { o.background = img }
}

// WithExtent pins the geographic extent the canvas covers. Without it the
// extent is the padded bound of the walk itself. Use it together with
// WithBackground: the extent must be the background map's extent for the
// overlay to line up.
func WithExtent(b orb.Bound) Option {
	return func(o *options) {
		o.extent = b
		o.hasExtent = true
	}
}

// WithStyle sets the line and marker colors.
func WithStyle(line, marker color.Color) Option {
	return func(o *options) { o.line, o.marker = line, marker }
}

func defaultOptions() options {
	return options{
		width:  800,
		height: 600,
		line:   color.RGBA{R: 220, G: 20, B: 60, A: 255},
		marker: color.RGBA{R: 150, G: 0, B: 30, A: 255},
	}
}

// Draw renders the walk (a sequence of node IDs of g) and returns the
// canvas.
//
// Errors: ErrEmptyWalk; core.ErrNodeNotFound (wrapped with the ID) when
// the walk references a node g does not contain.
func Draw(g *core.Graph, walk []string, opts ...Option) (*image.RGBA, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(walk) == 0 {
		return nil, ErrEmptyWalk
	}

	// Collect the walk's coordinates.
	ls := make(orb.LineString, len(walk))
	for i, id := range walk {
		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("render: walk node %q: %w", id, err)
		}
		ls[i] = n.Loc
	}

	extent := o.extent
	if !o.hasExtent {
		extent = padBound(ls.Bound())
	}

	canvas := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	if o.background != nil {
		stretch(canvas, o.background)
	} else {
		draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	}

	// Project and draw: segments first, markers on top.
	px := make([]image.Point, len(ls))
	for i, p := range ls {
		px[i] = project(p, extent, o.width, o.height)
	}
	for i := 0; i+1 < len(px); i++ {
		drawLine(canvas, px[i], px[i+1], o.line)
	}
	for _, p := range px {
		drawMarker(canvas, p, o.marker)
	}

	return canvas, nil
}

// Save renders the walk and writes it to path as PNG.
func Save(path string, g *core.Graph, walk []string, opts ...Option) error {
	img, err := Draw(g, walk, opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()

		return fmt.Errorf("render: %w", err)
	}

	return f.Close()
}

// padBound widens b by autoPad per side, enforcing minSpan.
func padBound(b orb.Bound) orb.Bound {
	spanX := b.Max[0] - b.Min[0]
	spanY := b.Max[1] - b.Min[1]
	if spanX < minSpan {
		spanX = minSpan
	}
	if spanY < minSpan {
		spanY = minSpan
	}

	return orb.Bound{
		Min: orb.Point{b.Min[0] - spanX*autoPad, b.Min[1] - spanY*autoPad},
		Max: orb.Point{b.Max[0] + spanX*autoPad, b.Max[1] + spanY*autoPad},
	}
}

// project maps a (lng, lat) point into pixel space: longitude grows
// rightward, latitude grows upward, so the y axis flips.
func project(p orb.Point, b orb.Bound, width, height int) image.Point {
	spanX := b.Max[0] - b.Min[0]
	spanY := b.Max[1] - b.Min[1]
	if spanX <= 0 {
		spanX = minSpan
	}
	if spanY <= 0 {
		spanY = minSpan
	}

	x := int((p[0] - b.Min[0]) / spanX * float64(width-1))
	y := (height - 1) - int((p[1]-b.Min[1])/spanY*float64(height-1))

	return image.Point{X: x, Y: y}
}

// stretch paints src over dst, nearest-neighbour scaled to dst's bounds.
func stretch(dst *image.RGBA, src image.Image) {
	db := dst.Bounds()
	sb := src.Bounds()
	for y := db.Min.Y; y < db.Max.Y; y++ {
		sy := sb.Min.Y + (y-db.Min.Y)*sb.Dy()/db.Dy()
		for x := db.Min.X; x < db.Max.X; x++ {
			sx := sb.Min.X + (x-db.Min.X)*sb.Dx()/db.Dx()
			dst.Set(x, y, src.At(sx, sy))
		}
	}
}

// drawLine rasterises the segment a–b with Bresenham's algorithm.
func drawLine(img *image.RGBA, a, b image.Point, c color.Color) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		img.Set(x, y, c)
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawMarker paints a 3x3 square dot centred on p.
func drawMarker(img *image.RGBA, p image.Point, c color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			img.Set(p.X+dx, p.Y+dy, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
