package provider

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"linkrotator/internal/models"
)

// StaticProvider serves a table read from a YAML file of the form
//
//	header: [redirect_id, active, domain, slug, group1, weights]
//	rows:
//	  - ["5", "TRUE", example.com, bar, "a|b", "1"]
//
// The file is re-read on every fetch so edits are picked up at the next
// cache refresh.
type StaticProvider struct {
	path string
}

// NewStaticProvider creates a provider over the YAML file at path.
func NewStaticProvider(path string) *StaticProvider {
	return &StaticProvider{path: path}
}

// FetchTable implements TableProvider.
func (p *StaticProvider) FetchTable(_ context.Context) (models.Table, error) {
	if p.path == "" {
		return models.Table{}, ErrMissingCredentials
	}
	table, err := LoadTableFile(p.path)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return table, nil
}

// LoadTableFile parses a YAML table file.
func LoadTableFile(path string) (models.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Table{}, err
	}

	var table models.Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return models.Table{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}

// LoadStaticRows reads the optional fallback table. A missing file yields no
// rows and no error.
func LoadStaticRows(path string) ([]models.MappingRow, error) {
	if path == "" {
		return nil, nil
	}
	table, err := LoadTableFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return models.RowsFromTable(table), nil
}
