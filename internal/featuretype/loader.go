// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package featuretype

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a feature type from a YAML file in fsys.
func Load(fsys fs.FS, path string) (*Schema, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%s: format not supported", path)
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature type: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML feature type definition.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse feature type: %w", err)
	}
	s.index()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
