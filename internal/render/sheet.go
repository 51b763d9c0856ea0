package render

import (
	"fmt"
	"io"

	jgeom "github.com/jbeda/geom"

	"hat-surround/internal/geom"
	"hat-surround/internal/surround"
)

// Tunable constants for output
const (
	DEFAULT_STYLE   = "stroke: black; stroke-width: 1; stroke-linejoin: round"
	KERNEL_FILL     = "fill: rgb(128,204,128)"
	NEIGHBOUR_FILL  = "fill: rgb(191,191,191)"
	CAPTION_STYLE   = "font-family: Helvetica, sans-serif; font-size: 12px; stroke: none"
	PANEL_SIZE      = 160.0
	CAPTION_SPACING = 16.0
	PAGE_MARGIN     = 20.0
)

// Corona fills, by level; levels past the end reuse the last entry.
var levelFills = []string{
	"fill: rgb(128,204,128)",
	"fill: rgb(191,191,191)",
	"fill: rgb(153,187,230)",
	"fill: rgb(230,200,140)",
}

func levelFill(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(levelFills) {
		level = len(levelFills) - 1
	}
	return levelFills[level]
}

// Layout arranges panels on pages.
type Layout struct {
	Columns, Rows int
	Scale         float64
}

// PerPage returns how many panels fit on one page.
func (l Layout) PerPage() int {
	return l.Columns * l.Rows
}

// Pages splits ts into runs of at most PerPage transforms.
func (l Layout) Pages(ts []geom.Transform) [][]geom.Transform {
	n := l.PerPage()
	if n <= 0 {
		return [][]geom.Transform{ts}
	}
	var pages [][]geom.Transform
	for len(ts) > n {
		pages = append(pages, ts[:n])
		ts = ts[n:]
	}
	if len(ts) > 0 {
		pages = append(pages, ts)
	}
	return pages
}

// NeighbourSheet writes one SVG page showing the identity hat next to each
// hat placed by ts, one panel per transform, captioned with the transform.
func NeighbourSheet(w io.Writer, ts []geom.Transform, l Layout) error {
	if l.Columns <= 0 {
		return fmt.Errorf("render: layout needs at least one column, got %d", l.Columns)
	}
	rows := (len(ts) + l.Columns - 1) / l.Columns
	width := float64(l.Columns)*PANEL_SIZE + 2*PAGE_MARGIN
	height := float64(rows)*(PANEL_SIZE+CAPTION_SPACING) + 2*PAGE_MARGIN

	s := NewSVG(w)
	s.Start(jgeom.Rect{Min: jgeom.Coord{}, Max: jgeom.Coord{X: width, Y: height}}, DEFAULT_STYLE)

	kernel := Outline(geom.Identity(), l.Scale)
	for i, T := range ts {
		col, row := i%l.Columns, i/l.Columns
		neighbour := Outline(T, l.Scale)

		// Centre the pair in its panel.
		panel := jgeom.Coord{
			X: PAGE_MARGIN + (float64(col)+0.5)*PANEL_SIZE,
			Y: PAGE_MARGIN + (float64(row)+0.5)*(PANEL_SIZE+CAPTION_SPACING),
		}
		d := panel.Minus(centre(Bounds(kernel, neighbour)))

		s.Polygon(offset(kernel, d), KERNEL_FILL)
		s.Polygon(offset(neighbour, d), NEIGHBOUR_FILL)
		s.Text(jgeom.Coord{X: panel.X, Y: panel.Y + PANEL_SIZE/2}, T.String(), CAPTION_STYLE)
	}
	return s.End()
}

// PatchSVG writes p as one SVG document, each tile filled by its level.
func PatchSVG(w io.Writer, p surround.Patch, scale float64) error {
	outlines := make([][]jgeom.Coord, len(p))
	for i, pl := range p {
		outlines[i] = Outline(pl.T, scale)
	}
	b := Bounds(outlines...)
	view := jgeom.Rect{
		Min: jgeom.Coord{X: b.Min.X - PAGE_MARGIN, Y: b.Min.Y - PAGE_MARGIN},
		Max: jgeom.Coord{X: b.Max.X + PAGE_MARGIN, Y: b.Max.Y + PAGE_MARGIN},
	}

	s := NewSVG(w)
	s.Start(view, DEFAULT_STYLE)
	for i, pl := range p {
		s.Polygon(outlines[i], levelFill(pl.Level), fmt.Sprintf("data-level='%d'", pl.Level))
	}
	return s.End()
}
