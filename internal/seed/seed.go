// Package seed supplies the initial graph, pricing, and intent fixtures.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
)

// Seed is the full startup fixture set.
type Seed struct {
	Hotels  []model.Hotel       `yaml:"hotels"`
	Flights []model.Flight      `yaml:"flights"`
	Prices  []model.PriceQuote  `yaml:"prices"`
	Intents map[string][]string `yaml:"intents"`
}

//go:embed seed.yaml
var defaultSeedYAML []byte

// Default returns the embedded fixture set.
func Default() Seed {
	s, err := parse(defaultSeedYAML)
	if err != nil {
		// the embedded fixtures are fixed at build time
		panic(err)
	}
	return s
}

// LoadFile reads a fixture set from a YAML file.
func LoadFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed yaml: %w", err)
	}
	return s, nil
}
