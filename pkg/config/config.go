// Package config provides the dataset manifest for tabular.
//
// The core store requires caller-declared column types; the manifest is how
// the CLI declares them. It is a YAML file listing datasets, each with a
// source path and its ordered column types:
//
//	datasets:
//	  - name: particles
//	    path: testdata/particles.csv
//	    columns:
//	      - { name: id, type: int }
//	      - { name: px, type: float }
//	      - { name: py, type: float }
//	      - { name: pz, type: float }
//	      - { name: energy, type: float }
//
// Column names in the manifest are documentation only: the authoritative
// names come from the source header.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/columnlab/tabular/pkg/columnar"
	"github.com/columnlab/tabular/pkg/errors"
)

// Manifest is the root of the dataset manifest file.
type Manifest struct {
	Datasets []Dataset `yaml:"datasets"`
}

// Dataset declares one delimited source and its column types.
type Dataset struct {
	// Name identifies the dataset on the command line.
	Name string `yaml:"name"`
	// Path locates the delimited text source (.csv, .csv.gz, .csv.zst).
	Path string `yaml:"path"`
	// Columns declares the ordered column types.
	Columns []ColumnSpec `yaml:"columns"`
}

// ColumnSpec declares one column.
type ColumnSpec struct {
	// Name is informational; the header names the column authoritatively.
	Name string `yaml:"name"`
	// Type is one of "int", "float", "string".
	Type string `yaml:"type"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "cannot read manifest").
			WithDetail("path", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "cannot parse manifest").
			WithDetail("path", path)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for correctness.
func (m *Manifest) Validate() error {
	if len(m.Datasets) == 0 {
		return errors.New(errors.ErrorTypeConfig, "manifest declares no datasets")
	}
	seen := make(map[string]bool, len(m.Datasets))
	for _, d := range m.Datasets {
		if d.Name == "" {
			return errors.New(errors.ErrorTypeConfig, "dataset name is required")
		}
		if seen[d.Name] {
			return errors.Newf(errors.ErrorTypeConfig, "duplicate dataset %q", d.Name)
		}
		seen[d.Name] = true
		if d.Path == "" {
			return errors.Newf(errors.ErrorTypeConfig, "dataset %q: path is required", d.Name)
		}
		if len(d.Columns) == 0 {
			return errors.Newf(errors.ErrorTypeConfig, "dataset %q declares no columns", d.Name)
		}
		for i, c := range d.Columns {
			if _, err := parseColumnType(c.Type); err != nil {
				return errors.Newf(errors.ErrorTypeConfig,
					"dataset %q column %d: unknown type %q", d.Name, i, c.Type)
			}
		}
	}
	return nil
}

// Dataset returns the named dataset.
func (m *Manifest) Dataset(name string) (*Dataset, error) {
	for i := range m.Datasets {
		if m.Datasets[i].Name == name {
			return &m.Datasets[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrorTypeConfig, "no dataset named %q in manifest", name)
}

// ColumnTypes returns the dataset's declared types in order.
func (d *Dataset) ColumnTypes() []columnar.ColumnType {
	types := make([]columnar.ColumnType, len(d.Columns))
	for i, c := range d.Columns {
		t, _ := parseColumnType(c.Type) // validated at load
		types[i] = t
	}
	return types
}

func parseColumnType(s string) (columnar.ColumnType, error) {
	switch s {
	case "int":
		return columnar.TypeInt, nil
	case "float":
		return columnar.TypeFloat, nil
	case "string":
		return columnar.TypeString, nil
	default:
		return 0, errors.Newf(errors.ErrorTypeConfig, "unknown column type %q", s)
	}
}
