// Package render draws a solved pipe maze as a raster image.
//
// Each grid cell becomes a 3×3 glyph: the centre pixel plus one arm pixel
// per direction the pipe opens towards. Loop tiles are coloured along a hue
// gradient in walk order starting at S, enclosed cells are filled, and pipe
// debris is drawn in a muted colour. The glyph image is then scaled up with
// nearest-neighbour sampling so the cells stay crisp.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/pipemaze/area"
	"github.com/katalvlaran/pipemaze/solver"
	"github.com/katalvlaran/pipemaze/tile"
)

// glyph is the side of a cell in unscaled pixels.
const glyph = 3

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
	// ErrNoResult is returned for a nil or incomplete result.
	ErrNoResult = errors.New("render: result has no grid or loop")
)

// Option configures rendering.
type Option func(*Options)

// Options holds the palette and scale of a rendering.
type Options struct {
	// Scale multiplies the 3×3 glyph of every cell. 1 keeps raw glyphs.
	Scale int
	// Background fills ground cells outside the loop.
	Background colorful.Color
	// Interior fills cells enclosed by the loop.
	Interior colorful.Color
	// Debris draws pipes that are not part of the loop.
	Debris colorful.Color
	// Saturation and Value of the loop hue gradient, in [0,1].
	Saturation, Value float64

	err error
}

// DefaultOptions returns a dark palette at scale 4.
func DefaultOptions() Options {
	return Options{
		Scale:      4,
		Background: mustHex("#14181f"),
		Interior:   mustHex("#f2c14e"),
		Debris:     mustHex("#4b5563"),
		Saturation: 0.75,
		Value:      0.95,
	}
}

// WithScale sets the pixel scale; n must be at least 1.
func WithScale(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: scale must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Scale = n
	}
}

// WithInteriorColor sets the enclosed cell colour from a "#rrggbb" string.
func WithInteriorColor(hex string) Option {
	return func(o *Options) {
		c, err := colorful.Hex(hex)
		if err != nil {
			o.err = fmt.Errorf("%w: interior colour %q: %v", ErrOptionViolation, hex, err)
			return
		}
		o.Interior = c
	}
}

// WithBackground sets the background colour from a "#rrggbb" string.
func WithBackground(hex string) Option {
	return func(o *Options) {
		c, err := colorful.Hex(hex)
		if err != nil {
			o.err = fmt.Errorf("%w: background %q: %v", ErrOptionViolation, hex, err)
			return
		}
		o.Background = c
	}
}

// Image renders res. The image is Width×3×Scale by Height×3×Scale pixels.
func Image(res *solver.Result, opts ...Option) (*image.NRGBA, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if res == nil || res.Grid == nil || res.Loop == nil {
		return nil, ErrNoResult
	}

	g, l := res.Grid, res.Loop
	img := imaging.New(g.Width()*glyph, g.Height()*glyph, o.Background)

	for _, p := range area.Enclosed(l) {
		fill(img, p, o.Interior)
	}

	n := float64(l.Len())
	for _, t := range g.Tiles() {
		if !t.Kind.IsPipe() {
			continue
		}
		if i, on := l.Index(t.Pos); on {
			k, _ := l.Kind(t.Pos)
			hue := 360 * float64(i) / n
			draw(img, t.Pos, k, colorful.Hsv(hue, o.Saturation, o.Value))
			continue
		}
		draw(img, t.Pos, t.Kind, o.Debris)
	}

	if o.Scale == 1 {
		return img, nil
	}

	return imaging.Resize(img, img.Bounds().Dx()*o.Scale, img.Bounds().Dy()*o.Scale, imaging.NearestNeighbor), nil
}

// Save writes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

// fill paints the whole glyph of p.
func fill(img *image.NRGBA, p tile.Position, c colorful.Color) {
	x0, y0 := p.Col*glyph, p.Row*glyph
	for dy := 0; dy < glyph; dy++ {
		for dx := 0; dx < glyph; dx++ {
			img.Set(x0+dx, y0+dy, c)
		}
	}
}

// draw paints the centre of p and one arm per direction k opens towards.
func draw(img *image.NRGBA, p tile.Position, k tile.PipeKind, c colorful.Color) {
	cx, cy := p.Col*glyph+1, p.Row*glyph+1
	img.Set(cx, cy, c)
	for _, d := range k.Directions() {
		dr, dc := d.Offset()
		img.Set(cx+dc, cy+dr, c)
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}

	return c
}
