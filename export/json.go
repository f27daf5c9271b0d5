package export

import (
	"encoding/json"

	"conduit/diagram"
)

// JSONExporter emits the scene and its computed routes as indented JSON.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// routedScene is the JSON document shape.
type routedScene struct {
	Nodes  []diagram.Node            `json:"nodes"`
	Routes []diagram.RoutedConnector `json:"routes"`
}

// Export marshals the routed scene.
func (e *JSONExporter) Export(scene *diagram.Scene, routed []diagram.RoutedConnector) (string, error) {
	doc := routedScene{Nodes: scene.Nodes, Routes: routed}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileExtension returns the file extension for JSON output.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
