// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nodes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Node describes one deployed sensor site for the map page. This is static
// configuration; it does not register a node for ingestion — nodes register
// themselves implicitly the first time they push data.
type Node struct {
	ID   string  `yaml:"id" json:"id"`
	Name string  `yaml:"name" json:"name"`
	Lat  float64 `yaml:"lat" json:"lat"`
	Lon  float64 `yaml:"lon" json:"lon"`
}

// Defaults returns the compiled-in fleet.
func Defaults() []Node {
	return []Node{
		{ID: "durdosik", Name: "Durdosik", Lat: 48.7421193, Lon: 21.4153122},
		{ID: "sobrance", Name: "Sobrance", Lat: 48.749286, Lon: 22.181093},
		{ID: "bratislava", Name: "Bratislava", Lat: 48.150034, Lon: 17.065442},
		{ID: "kosice", Name: "Kosice", Lat: 48.728882, Lon: 21.248280},
		{ID: "kosice_2", Name: "Kosice_sever", Lat: 48.738852, Lon: 21.245107},
		{ID: "test", Name: "test", Lat: 48.7421100, Lon: 21.4153100},
	}
}

// Load reads a YAML node list from path. An empty path or a missing file
// falls back to the compiled-in defaults; a present but unreadable or
// malformed file is an error, so a typo does not silently drop the fleet.
func Load(path string) ([]Node, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read node descriptors: %w", err)
	}

	var fleet []Node
	if err := yaml.Unmarshal(data, &fleet); err != nil {
		return nil, fmt.Errorf("failed to parse node descriptors: %w", err)
	}
	return fleet, nil
}
