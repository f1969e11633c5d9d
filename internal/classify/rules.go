package classify

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules maps a normalized (lower-cased) child-node name to the ordered list
// of intents it implies.
type Rules map[string][]string

// Lookup returns the intents implied by itemName, or nil when no rule
// matches. Matching is case-insensitive.
func (r Rules) Lookup(itemName string) []string {
	return r[strings.ToLower(itemName)]
}

//go:embed rules.yaml
var defaultRulesYAML []byte

type rulesFile struct {
	Rules map[string][]string `yaml:"rules"`
}

// DefaultRules returns the embedded rule table.
func DefaultRules() Rules {
	r, err := parseRules(defaultRulesYAML)
	if err != nil {
		// the embedded table is fixed at build time
		panic(err)
	}
	return r
}

// LoadRules reads a rule table from a YAML file.
func LoadRules(path string) (Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return parseRules(raw)
}

func parseRules(raw []byte) (Rules, error) {
	var f rulesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse rules yaml: %w", err)
	}
	r := make(Rules, len(f.Rules))
	for name, intents := range f.Rules {
		r[strings.ToLower(name)] = intents
	}
	return r, nil
}
