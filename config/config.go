// Package config provides configuration loading and management for Shataba.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ModelType identifies a resource-model type. It selects the default
// schema and concepts file names inside the references directory.
type ModelType string

// Known resource-model types.
const (
	ModelActor          ModelType = "actor"
	ModelAdministrative ModelType = "administrative_model"
	ModelChronology     ModelType = "chronology"
	ModelInformation    ModelType = "information"
	ModelMaeasamGrid    ModelType = "maeasam_grid"
	ModelRemoteSensing  ModelType = "remote_sensing"
	ModelSite           ModelType = "site"
)

// KnownModels lists every supported resource-model type.
var KnownModels = []ModelType{
	ModelActor,
	ModelAdministrative,
	ModelChronology,
	ModelInformation,
	ModelMaeasamGrid,
	ModelRemoteSensing,
	ModelSite,
}

// Title returns the display form of the model type: underscores become
// spaces and each word is capitalized ("maeasam_grid" to "Maeasam Grid").
// Reference file names are derived from this form.
func (m ModelType) Title() string {
	words := strings.Split(string(m), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SchemaFile returns the default resource-model file name.
func (m ModelType) SchemaFile() string {
	return m.Title() + ".json"
}

// ConceptsFile returns the default concepts file name.
func (m ModelType) ConceptsFile() string {
	return m.Title() + "_concepts.json"
}

// Config represents the complete Shataba configuration.
type Config struct {
	References ReferencesConfig `yaml:"references"`
	Output     OutputConfig     `yaml:"output"`
	CSV        CSVConfig        `yaml:"csv"`
}

// ReferencesConfig locates the three reference documents.
type ReferencesConfig struct {
	// Dir is the directory holding the reference files.
	Dir string `yaml:"dir"`
	// Model selects the resource-model type and its default file names.
	Model ModelType `yaml:"model"`
	// Collections is the collections RDF/XML file name within Dir.
	Collections string `yaml:"collections"`
	// Schema overrides the resource-model file path entirely.
	Schema string `yaml:"schema"`
	// Concepts overrides the concepts file path entirely.
	Concepts string `yaml:"concepts"`
}

// OutputConfig configures where cleaned data and reports are written.
type OutputConfig struct {
	// Dir is the output directory for cleaned CSVs and mapping reports.
	Dir string `yaml:"dir"`
}

// CSVConfig configures tabular input handling.
type CSVConfig struct {
	// NullMarkers are cell values treated as missing data (empty = defaults).
	NullMarkers []string `yaml:"null_markers"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		References: ReferencesConfig{
			Dir:         "references",
			Model:       ModelSite,
			Collections: "collections.xml",
		},
		Output: OutputConfig{
			Dir: "output",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.References.Dir == "" {
		return fmt.Errorf("references.dir is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	for _, m := range KnownModels {
		if c.References.Model == m {
			return nil
		}
	}
	return fmt.Errorf("unknown resource model type: %q", c.References.Model)
}

// SchemaPath returns the resource-model document path.
func (c *Config) SchemaPath() string {
	if c.References.Schema != "" {
		return c.References.Schema
	}
	return filepath.Join(c.References.Dir, c.References.Model.SchemaFile())
}

// ConceptsPath returns the concept catalog path.
func (c *Config) ConceptsPath() string {
	if c.References.Concepts != "" {
		return c.References.Concepts
	}
	return filepath.Join(c.References.Dir, c.References.Model.ConceptsFile())
}

// CollectionsPath returns the collections RDF/XML path.
func (c *Config) CollectionsPath() string {
	if filepath.IsAbs(c.References.Collections) {
		return c.References.Collections
	}
	return filepath.Join(c.References.Dir, c.References.Collections)
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge merges another config into this one (other takes precedence
// for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.References.Dir != "" {
		c.References.Dir = other.References.Dir
	}
	if other.References.Model != "" {
		c.References.Model = other.References.Model
	}
	if other.References.Collections != "" {
		c.References.Collections = other.References.Collections
	}
	if other.References.Schema != "" {
		c.References.Schema = other.References.Schema
	}
	if other.References.Concepts != "" {
		c.References.Concepts = other.References.Concepts
	}

	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}

	if len(other.CSV.NullMarkers) > 0 {
		c.CSV.NullMarkers = other.CSV.NullMarkers
	}
}
