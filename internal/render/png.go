package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	jgeom "github.com/jbeda/geom"
	"golang.org/x/image/vector"

	"hat-surround/internal/surround"
)

var levelColors = []color.RGBA{
	{R: 128, G: 204, B: 128, A: 255},
	{R: 191, G: 191, B: 191, A: 255},
	{R: 153, G: 187, B: 230, A: 255},
	{R: 230, G: 200, B: 140, A: 255},
}

func levelColor(level int) color.RGBA {
	if level < 0 {
		level = 0
	}
	if level >= len(levelColors) {
		level = len(levelColors) - 1
	}
	return levelColors[level]
}

const EDGE_WIDTH = 1.0

// PatchImage rasterizes p, each tile filled by its level and outlined.
func PatchImage(p surround.Patch, scale float64) *image.RGBA {
	outlines := make([][]jgeom.Coord, len(p))
	for i, pl := range p {
		outlines[i] = Outline(pl.T, scale)
	}
	b := Bounds(outlines...)
	w := int(math.Ceil(b.Width() + 2*PAGE_MARGIN))
	h := int(math.Ceil(b.Height() + 2*PAGE_MARGIN))
	d := jgeom.Coord{X: PAGE_MARGIN - b.Min.X, Y: PAGE_MARGIN - b.Min.Y}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over
	for i, pl := range p {
		o := offset(outlines[i], d)
		z.Reset(w, h)
		fillPolygon(z, o)
		z.Draw(dst, dst.Bounds(), image.NewUniform(levelColor(pl.Level)), image.Point{})

		z.Reset(w, h)
		strokePolygon(z, o, EDGE_WIDTH)
		z.Draw(dst, dst.Bounds(), image.Black, image.Point{})
	}
	return dst
}

// PatchPNG writes p as a PNG image.
func PatchPNG(out io.Writer, p surround.Patch, scale float64) error {
	return png.Encode(out, PatchImage(p, scale))
}

func fillPolygon(z *vector.Rasterizer, pts []jgeom.Coord) {
	if len(pts) == 0 {
		return
	}
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, c := range pts[1:] {
		z.LineTo(float32(c.X), float32(c.Y))
	}
	z.ClosePath()
}

// strokePolygon adds one thin quad per edge of the closed polygon pts.
// The rasterizer only fills, so edges are drawn as filled quads.
func strokePolygon(z *vector.Rasterizer, pts []jgeom.Coord, width float64) {
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*width/2, dx/l*width/2
		z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		z.ClosePath()
	}
}
