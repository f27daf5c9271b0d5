package export

import (
	"conduit/canvas"
	"conduit/diagram"
)

// asciiWidth is the character width of the terminal preview.
const asciiWidth = 100

// ASCIIExporter renders a routed scene as a terminal preview.
type ASCIIExporter struct {
	Width int
}

// NewASCIIExporter creates an ASCII exporter with the default width.
func NewASCIIExporter() *ASCIIExporter {
	return &ASCIIExporter{Width: asciiWidth}
}

// Export renders the scene onto a rune matrix.
func (e *ASCIIExporter) Export(scene *diagram.Scene, routed []diagram.RoutedConnector) (string, error) {
	return canvas.RenderScene(scene, routed, e.Width), nil
}

// FileExtension returns the file extension for text output.
func (e *ASCIIExporter) FileExtension() string {
	return ".txt"
}
