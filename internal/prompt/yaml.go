package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogFile represents a YAML file containing layer templates.
// It supports two formats:
//  1. Multiple templates: templates: [...]
//  2. Single template: direct YAML mapping
type CatalogFile struct {
	Templates []LayerTemplate `yaml:"templates"`
}

// LoadTemplatesFromFile loads layer templates from a YAML file.
// The file can contain either an array of templates under the
// "templates" key or a single template as a direct YAML mapping.
// All loaded templates are validated before being returned.
func LoadTemplatesFromFile(path string) ([]LayerTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewCatalogParseError(path, fmt.Errorf("failed to read file: %w", err))
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, NewCatalogParseError(path, err)
	}

	templates := file.Templates
	if len(templates) == 0 {
		var single LayerTemplate
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, NewCatalogParseError(path, err)
		}
		templates = []LayerTemplate{single}
	}

	for i, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, NewCatalogValidationError(
				path,
				fmt.Sprintf("template at index %d failed validation: %v", i, err),
			)
		}
	}

	return templates, nil
}

// LoadTemplatesFromDirectory loads all .yaml and .yml files from a
// directory. Subdirectories are not processed recursively. Loading
// continues past individual file failures; the first error encountered
// is returned along with any successfully loaded templates.
func LoadTemplatesFromDirectory(dir string) ([]LayerTemplate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, NewCatalogParseError(dir, fmt.Errorf("failed to read directory: %w", err))
	}

	var templates []LayerTemplate
	var firstErr error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		loaded, err := LoadTemplatesFromFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		templates = append(templates, loaded...)
	}

	return templates, firstErr
}

// RegisterFromFile loads templates from a YAML file and registers them
// in the catalog. Returns the first error encountered during loading or
// registration.
func (c *Catalog) RegisterFromFile(path string) error {
	templates, err := LoadTemplatesFromFile(path)
	if err != nil {
		return err
	}

	for _, t := range templates {
		if err := c.Register(t); err != nil {
			return err
		}
	}

	return nil
}

// RegisterFromDirectory loads all YAML files from a directory and
// registers the templates they contain. Successfully loaded templates
// are registered even when a later file fails; the load error is
// returned after registration.
func (c *Catalog) RegisterFromDirectory(dir string) error {
	templates, loadErr := LoadTemplatesFromDirectory(dir)

	for _, t := range templates {
		if err := c.Register(t); err != nil {
			return err
		}
	}

	return loadErr
}
