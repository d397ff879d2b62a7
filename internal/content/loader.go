// Package content loads hand-authored effect template files. Templates are
// data, not code: designers edit YAML, the game validates and materializes it
// through the same pipeline as model-generated candidates.
package content

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mothlight/delve/internal/effects"
)

// TemplateFile is the on-disk shape: a named set of effect descriptions, each
// tagged with the source category whose constraint profile gates it.
type TemplateFile struct {
	Set       string          `yaml:"set"`
	Templates []TemplateEntry `yaml:"templates"`
}

// TemplateEntry pairs a description with its gating source category.
type TemplateEntry struct {
	Source      effects.SourceCategory `yaml:"source"`
	Description effects.Description    `yaml:"effect"`
}

// Load reads one template file from r.
func Load(r io.Reader) (*TemplateFile, error) {
	var file TemplateFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode template file: %w", err)
	}

	for i, entry := range file.Templates {
		if entry.Description.Name == "" {
			return nil, fmt.Errorf("template %d in set %q has no name", i, file.Set)
		}
		if entry.Source == "" {
			return nil, fmt.Errorf("template %q has no source category", entry.Description.Name)
		}
	}
	return &file, nil
}

// LoadFile reads one template file from disk.
func LoadFile(path string) (*TemplateFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template file %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	file, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Validated filters the file's templates through the constraint validator,
// returning the accepted descriptions and a report line per rejection.
func (f *TemplateFile) Validated() ([]*effects.Description, []string) {
	var accepted []*effects.Description
	var rejections []string

	for i := range f.Templates {
		entry := &f.Templates[i]
		result := effects.Validate(&entry.Description, entry.Source)
		if !result.Valid {
			for _, violation := range result.Violations {
				rejections = append(rejections,
					fmt.Sprintf("%s: %s", entry.Description.Name, violation))
			}
			continue
		}
		accepted = append(accepted, &entry.Description)
	}
	return accepted, rejections
}
