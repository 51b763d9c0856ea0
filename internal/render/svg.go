package render

import (
	"fmt"
	"io"
	"strings"

	jgeom "github.com/jbeda/geom"
)

// SVG serialization helper. The first write error is kept and returned by
// End; later calls are no-ops.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

// extraparams renders trailing arguments as attributes: "k=v" strings are
// copied as-is, anything else becomes a style attribute.
func extraparams(s []string) string {
	ep := ""
	for i := 0; i < len(s); i++ {
		if strings.Index(s[i], "=") > 0 {
			ep += (s[i]) + " "
		} else if len(s[i]) > 0 {
			ep += fmt.Sprintf("style='%s' ", s[i])
		}
	}
	return ep
}

func (svg *SVG) Start(viewBox jgeom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(s))
}

// End closes the document and reports the first write error.
func (svg *SVG) End() error {
	svg.printf("</svg>\n")
	return svg.err
}

func (svg *SVG) StartPath(p1 jgeom.Coord, s ...string) {
	svg.printf("<path %sd='M%f,%f", extraparams(s), p1.X, p1.Y)
}

func (svg *SVG) PathLineTo(p jgeom.Coord) {
	svg.printf("\n  L%f,%f", p.X, p.Y)
}

func (svg *SVG) ClosePath() {
	svg.printf(" Z")
}

func (svg *SVG) EndPath() {
	svg.printf("'/>\n")
}

// Polygon draws a closed polygon through pts.
func (svg *SVG) Polygon(pts []jgeom.Coord, s ...string) {
	if len(pts) == 0 {
		return
	}
	svg.StartPath(pts[0], s...)
	for _, p := range pts[1:] {
		svg.PathLineTo(p)
	}
	svg.ClosePath()
	svg.EndPath()
}

// Text draws text centred on p.
func (svg *SVG) Text(p jgeom.Coord, text string, s ...string) {
	svg.printf("<text x='%f' y='%f' text-anchor='middle' %s>%s</text>\n",
		p.X, p.Y, extraparams(s), escape(text))
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return textEscaper.Replace(s)
}
