package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config controls how layouts are translated.
type Config struct {
	// EpsilonMarker is the char written for silent edges. An empty char is always read as epsilon
	// too.
	EpsilonMarker string `json:"epsilon_marker,omitempty"`

	// Grid used to place generated states: Columns per row starting at Origin, Spacing apart.
	Columns int      `json:"columns,omitempty"`
	Origin  Position `json:"origin"`
	Spacing float64  `json:"spacing,omitempty"`
}

// DefaultConfig matches the editor: "ε" and a 10 column grid from (100, 100) every 40 pixels.
func DefaultConfig() Config {
	return Config{
		EpsilonMarker: "ε",
		Columns:       10,
		Origin:        Position{X: 100, Y: 100},
		Spacing:       40,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.EpsilonMarker != "" {
		c.EpsilonMarker = source.EpsilonMarker
	}
	if source.Columns > 0 {
		c.Columns = source.Columns
	}
	if source.Origin != (Position{}) {
		c.Origin = source.Origin
	}
	if source.Spacing > 0 {
		c.Spacing = source.Spacing
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
