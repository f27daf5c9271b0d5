// Package export writes routed scenes to text-based output formats.
package export

import (
	"fmt"

	"conduit/diagram"
)

// Format represents an export format.
type Format string

const (
	// FormatASCII renders a terminal preview of the routed scene.
	FormatASCII Format = "ascii"
	// FormatSVG emits a standalone SVG document.
	FormatSVG Format = "svg"
	// FormatJSON emits the scene plus computed routes as JSON.
	FormatJSON Format = "json"
)

// Exporter converts a routed scene to one output format.
type Exporter interface {
	// Export renders the scene and its computed routes.
	Export(scene *diagram.Scene, routed []diagram.RoutedConnector) (string, error)
	// FileExtension returns the recommended file extension for this format.
	FileExtension() string
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatASCII:
		return NewASCIIExporter(), nil
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "svg":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want ascii, svg or json)", s)
	}
}
