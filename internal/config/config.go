package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Project is the kjetrecon.yaml file. Exactly one of PayloadDir and
// PayloadBaseURL should be set; flags override either.
type Project struct {
	HumanExport    string `yaml:"human_export"`
	PayloadDir     string `yaml:"payload_dir"`
	PayloadBaseURL string `yaml:"payload_base_url"`
	CountyAliases  string `yaml:"county_aliases"`
	OutDir         string `yaml:"out_dir"`
	SchemaDir      string `yaml:"schema_dir"`
}

// Default returns the conventional project layout.
func Default() Project {
	return Project{
		HumanExport: "data/kjet-human-final.json",
		PayloadDir:  "data/gemini",
		OutDir:      "out",
		SchemaDir:   "schemas/v1",
	}
}

// Load reads a project config file over the defaults.
func Load(path string) (Project, error) {
	p := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse config %s: %w", path, err)
	}
	return p, nil
}
