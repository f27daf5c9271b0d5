// Package diagram holds the scene model the CLI routes: a set of node boxes
// and the connectors between them. The router itself is stateless; this
// package is the consumer side of its contract, deriving per-connector
// obstacle sets that exclude the two nodes a connector joins.
package diagram

import (
	"fmt"

	"conduit/connector"
	"conduit/core"
)

// Node is a box on the board.
type Node struct {
	ID     string  `toml:"id" json:"id"`
	Label  string  `toml:"label,omitempty" json:"label,omitempty"`
	X      float64 `toml:"x" json:"x"`
	Y      float64 `toml:"y" json:"y"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Obstacle returns the node's bounding box.
func (n Node) Obstacle() core.Obstacle {
	return core.Obstacle{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Center returns the center point of the node.
func (n Node) Center() core.Point {
	return n.Obstacle().Center()
}

// Connector is a link between two nodes.
type Connector struct {
	From        string    `toml:"from" json:"from"`
	To          string    `toml:"to" json:"to"`
	Type        string    `toml:"type,omitempty" json:"type,omitempty"`
	Via         []float64 `toml:"via,omitempty" json:"via,omitempty"` // [x, y]
	CurveOffset float64   `toml:"curve_offset,omitempty" json:"curveOffset,omitempty"`
}

// Scene is a complete routable diagram.
type Scene struct {
	Clearance   float64     `toml:"clearance,omitempty" json:"clearance,omitempty"`
	TurnPenalty float64     `toml:"turn_penalty,omitempty" json:"turnPenalty,omitempty"`
	Nodes       []Node      `toml:"nodes" json:"nodes"`
	Connectors  []Connector `toml:"connectors" json:"connectors"`
}

// RoutedConnector pairs a connector with its computed render points.
type RoutedConnector struct {
	Connector
	Points []float64 `json:"points"`
}

// NodeByID finds a node by its identifier.
func (s *Scene) NodeByID(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// ObstaclesExcluding returns the bounding boxes of every node except the
// two named ones. The router does not filter self-obstacles; excluding the
// joined endpoints is this layer's job.
func (s *Scene) ObstaclesExcluding(from, to string) []core.Obstacle {
	obs := make([]core.Obstacle, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.ID == from || n.ID == to {
			continue
		}
		obs = append(obs, n.Obstacle())
	}
	return obs
}

// RouteAll computes render points for every connector in the scene.
func (s *Scene) RouteAll() ([]RoutedConnector, error) {
	routed := make([]RoutedConnector, 0, len(s.Connectors))
	for i, c := range s.Connectors {
		from, ok := s.NodeByID(c.From)
		if !ok {
			return nil, fmt.Errorf("connector %d: unknown node %q", i, c.From)
		}
		to, ok := s.NodeByID(c.To)
		if !ok {
			return nil, fmt.Errorf("connector %d: unknown node %q", i, c.To)
		}

		req := connector.Request{
			Type:        core.ConnectorType(c.Type),
			Start:       from.Center(),
			End:         to.Center(),
			Obstacles:   s.ObstaclesExcluding(c.From, c.To),
			Clearance:   s.Clearance,
			TurnPenalty: s.TurnPenalty,
			CurveOffset: c.CurveOffset,
		}
		if c.Type == "" {
			req.Type = core.ConnectorBent
		}
		if len(c.Via) >= 2 {
			req.Via = &core.Point{X: c.Via[0], Y: c.Via[1]}
		}

		routed = append(routed, RoutedConnector{Connector: c, Points: connector.RenderPoints(req)})
	}
	return routed, nil
}
