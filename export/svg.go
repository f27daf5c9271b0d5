package export

import (
	"fmt"
	"strings"

	"conduit/diagram"
)

// svgMargin is the padding around the drawing in SVG units.
const svgMargin = 20

// SVGExporter emits a standalone SVG document: one rect per node and one
// path per connector. Curved connectors render their 4-point control
// sequence as a cubic Bezier command; everything else is a polyline.
type SVGExporter struct{}

// NewSVGExporter creates a new SVG exporter.
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Export renders the routed scene as SVG markup.
func (e *SVGExporter) Export(scene *diagram.Scene, routed []diagram.RoutedConnector) (string, error) {
	minX, minY, maxX, maxY := svgBounds(scene, routed)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`,
		minX-svgMargin, minY-svgMargin, maxX-minX+2*svgMargin, maxY-minY+2*svgMargin)
	b.WriteString("\n")

	for _, r := range routed {
		d, ok := pathData(r)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="#555" stroke-width="1.5"/>`, d)
		b.WriteString("\n")
	}

	for _, n := range scene.Nodes {
		fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" rx="4" fill="#fff" stroke="#222"/>`,
			n.X, n.Y, n.Width, n.Height)
		b.WriteString("\n")
		if n.Label != "" {
			center := n.Center()
			fmt.Fprintf(&b, `  <text x="%g" y="%g" text-anchor="middle" dominant-baseline="middle" font-size="12">%s</text>`,
				center.X, center.Y, escapeText(n.Label))
			b.WriteString("\n")
		}
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// FileExtension returns the file extension for SVG output.
func (e *SVGExporter) FileExtension() string {
	return ".svg"
}

// pathData builds the d attribute for one connector.
func pathData(r diagram.RoutedConnector) (string, bool) {
	pts := r.Points
	if len(pts) < 4 {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %g %g", pts[0], pts[1])

	if r.Type == "curved" && len(pts) == 8 {
		fmt.Fprintf(&b, " C %g %g, %g %g, %g %g", pts[2], pts[3], pts[4], pts[5], pts[6], pts[7])
		return b.String(), true
	}
	for i := 2; i+1 < len(pts); i += 2 {
		fmt.Fprintf(&b, " L %g %g", pts[i], pts[i+1])
	}
	return b.String(), true
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}

func svgBounds(scene *diagram.Scene, routed []diagram.RoutedConnector) (minX, minY, maxX, maxY float64) {
	first := true
	expand := func(x, y float64) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, n := range scene.Nodes {
		expand(n.X, n.Y)
		expand(n.X+n.Width, n.Y+n.Height)
	}
	for _, r := range routed {
		for i := 0; i+1 < len(r.Points); i += 2 {
			expand(r.Points[i], r.Points[i+1])
		}
	}
	if first {
		return 0, 0, 100, 100
	}
	return minX, minY, maxX, maxY
}
