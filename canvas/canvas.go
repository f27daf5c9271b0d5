// Package canvas renders a routed scene onto a rune matrix for terminal
// preview. World coordinates are scaled down onto character cells, so the
// preview is approximate; exact geometry lives in the exported SVG/JSON.
package canvas

import (
	"strings"

	"conduit/core"
	"conduit/diagram"
	"conduit/geometry"
)

// Matrix is a fixed-size rune grid with (0,0) at the top left.
type Matrix struct {
	width, height int
	cells         [][]rune
}

// NewMatrix creates a cleared matrix of the given size. Non-positive
// dimensions are clamped to 1.
func NewMatrix(width, height int) *Matrix {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Matrix{width: width, height: height, cells: cells}
}

// Set places a rune at the given cell. Out-of-bounds writes are dropped.
func (m *Matrix) Set(x, y int, char rune) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y][x] = char
}

// String renders the matrix as newline-separated rows, trailing spaces
// trimmed.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// DrawBox draws a rectangle outline with box-drawing runes, filling the
// interior with spaces so boxes occlude lines routed before them.
func (m *Matrix) DrawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			m.Set(x+dx, y+dy, ' ')
		}
	}
	for dx := 1; dx < width-1; dx++ {
		m.Set(x+dx, y, '─')
		m.Set(x+dx, y+height-1, '─')
	}
	for dy := 1; dy < height-1; dy++ {
		m.Set(x, y+dy, '│')
		m.Set(x+width-1, y+dy, '│')
	}
	m.Set(x, y, '┌')
	m.Set(x+width-1, y, '┐')
	m.Set(x, y+height-1, '└')
	m.Set(x+width-1, y+height-1, '┘')
}

// DrawLabel writes text centered on the box interior, truncated to fit.
func (m *Matrix) DrawLabel(x, y, width, height int, text string) {
	if text == "" || width < 4 || height < 3 {
		return
	}
	runes := []rune(text)
	if len(runes) > width-2 {
		runes = runes[:width-2]
	}
	startX := x + (width-len(runes))/2
	midY := y + height/2
	for i, r := range runes {
		m.Set(startX+i, midY, r)
	}
}

// DrawPolyline draws an orthogonal polyline with line runes, marking turn
// vertices with '+'.
func (m *Matrix) DrawPolyline(points [][2]int) {
	for i := 0; i < len(points)-1; i++ {
		m.drawSegment(points[i], points[i+1])
	}
	for i := 1; i < len(points)-1; i++ {
		m.Set(points[i][0], points[i][1], '+')
	}
}

func (m *Matrix) drawSegment(a, b [2]int) {
	if a[1] == b[1] {
		x1, x2 := a[0], b[0]
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			m.Set(x, a[1], '─')
		}
		return
	}
	if a[0] == b[0] {
		y1, y2 := a[1], b[1]
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			m.Set(a[0], y, '│')
		}
		return
	}
	// Non-orthogonal segments (curve control polygons) render as their
	// endpoints only.
	m.Set(a[0], a[1], '·')
	m.Set(b[0], b[1], '·')
}

// RenderScene draws a routed scene scaled to the given character width.
func RenderScene(scene *diagram.Scene, routed []diagram.RoutedConnector, cols int) string {
	if cols < 20 {
		cols = 20
	}

	minX, minY, maxX, maxY := sceneBounds(scene, routed)
	worldW := maxX - minX
	worldH := maxY - minY
	if worldW <= 0 {
		worldW = 1
	}
	if worldH <= 0 {
		worldH = 1
	}

	scaleX := float64(cols-1) / worldW
	// Terminal cells are roughly twice as tall as wide.
	scaleY := scaleX / 2
	rows := int(worldH*scaleY) + 1

	m := NewMatrix(cols, rows)

	toCell := func(p core.Point) [2]int {
		return [2]int{
			int((p.X - minX) * scaleX),
			int((p.Y - minY) * scaleY),
		}
	}

	for _, r := range routed {
		var cells [][2]int
		for i := 0; i+1 < len(r.Points); i += 2 {
			cells = append(cells, toCell(core.Point{X: r.Points[i], Y: r.Points[i+1]}))
		}
		m.DrawPolyline(cells)
	}

	for _, n := range scene.Nodes {
		topLeft := toCell(core.Point{X: n.X, Y: n.Y})
		bottomRight := toCell(core.Point{X: n.X + n.Width, Y: n.Y + n.Height})
		w := bottomRight[0] - topLeft[0] + 1
		h := bottomRight[1] - topLeft[1] + 1
		m.DrawBox(topLeft[0], topLeft[1], w, h)
		m.DrawLabel(topLeft[0], topLeft[1], w, h, n.Label)
	}

	return m.String()
}

func sceneBounds(scene *diagram.Scene, routed []diagram.RoutedConnector) (minX, minY, maxX, maxY float64) {
	first := true
	expand := func(x, y float64) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		minX = geometry.Min(minX, x)
		maxX = geometry.Max(maxX, x)
		minY = geometry.Min(minY, y)
		maxY = geometry.Max(maxY, y)
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
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}
