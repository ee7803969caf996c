package identity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Aliases canonicalizes county spellings that the normalizer alone cannot
// reconcile (hyphenation, stray punctuation, outright misspellings). Keys and
// values are stored normalized.
type Aliases struct {
	m map[string]string
}

// defaultAliases covers the variations observed in past exports.
var defaultAliases = map[string]string{
	"elgeyo-marakwet": "elgeiyo marakwet",
	"elgeyo marakwet": "elgeiyo marakwet",
	"nairobi .":       "nairobi",
	"mgori":           "migori",
	"n/a":             "unknown",
}

// DefaultAliases returns the built-in alias table.
func DefaultAliases() *Aliases {
	m := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		m[k] = v
	}
	return &Aliases{m: m}
}

type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliases reads a YAML alias table and merges it over the defaults.
// File entries win on conflict.
func LoadAliases(path string) (*Aliases, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read aliases %s: %w", path, err)
	}
	var f aliasFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse aliases %s: %w", path, err)
	}
	a := DefaultAliases()
	for k, v := range f.Aliases {
		a.m[NormalizeCounty(k)] = NormalizeCounty(v)
	}
	return a, nil
}

// Canonical normalizes name and applies the alias table. Safe on a nil
// receiver, which behaves as plain normalization.
func (a *Aliases) Canonical(name string) string {
	n := NormalizeCounty(name)
	if a == nil {
		return n
	}
	if c, ok := a.m[n]; ok {
		return c
	}
	return n
}
