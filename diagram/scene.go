package diagram

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadScene reads a scene description from a TOML file.
//
// Example:
//
//	clearance = 10
//	turn_penalty = 16
//
//	[[nodes]]
//	id = "api"
//	label = "API"
//	x = 0
//	y = 0
//	width = 120
//	height = 60
//
//	[[connectors]]
//	from = "api"
//	to = "db"
//	type = "bent"
func LoadScene(path string) (*Scene, error) {
	var scene Scene
	if _, err := toml.DecodeFile(path, &scene); err != nil {
		return nil, fmt.Errorf("decoding scene %s: %w", path, err)
	}
	if err := scene.validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return &scene, nil
}

// DecodeScene parses a scene from TOML source text.
func DecodeScene(data string) (*Scene, error) {
	var scene Scene
	if _, err := toml.Decode(data, &scene); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if err := scene.validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (s *Scene) validate() error {
	seen := make(map[string]bool)
	for i, n := range s.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d has no id", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
	}
	for i, c := range s.Connectors {
		if !seen[c.From] {
			return fmt.Errorf("connector %d references unknown node %q", i, c.From)
		}
		if !seen[c.To] {
			return fmt.Errorf("connector %d references unknown node %q", i, c.To)
		}
		switch c.Type {
		case "", "straight", "bent", "curved":
		default:
			return fmt.Errorf("connector %d has unknown type %q", i, c.Type)
		}
	}
	return nil
}
