// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles ogcprofile project configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the ogcprofile.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	BaseURI string `yaml:"baseUri"`
	// Codelists is the directory holding <id>.yaml codelists.
	Codelists string `yaml:"codelists,omitempty"`
	// DefaultProfiles maps profile set ids to profile ids for every resource.
	DefaultProfiles map[string]string `yaml:"defaultProfiles,omitempty"`
	Formats         []Format          `yaml:"formats"`
	Datasets        []*Dataset        `yaml:"datasets"`
}

// Format describes an output format.
type Format struct {
	ID              string            `yaml:"id"`
	MediaType       string            `yaml:"mediaType"`
	HumanReadable   bool              `yaml:"humanReadable,omitempty"`
	Complex         bool              `yaml:"complex,omitempty"`
	DefaultProfiles map[string]string `yaml:"defaultProfiles,omitempty"`
}

// FormatOverride adjusts format defaults for a dataset or collection.
type FormatOverride struct {
	DefaultProfiles map[string]string `yaml:"defaultProfiles,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	u, err := url.Parse(c.BaseURI)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("baseUri %q must be an absolute URI", c.BaseURI)
	}

	formats := make(map[string]bool)
	for _, f := range c.Formats {
		if f.ID == "" {
			return errors.New("format id is required")
		}
		if f.MediaType == "" {
			return fmt.Errorf("format %q: mediaType is required", f.ID)
		}
		if formats[f.ID] {
			return fmt.Errorf("duplicate format %q", f.ID)
		}
		formats[f.ID] = true
	}

	datasets := make(map[string]bool)
	for _, d := range c.Datasets {
		if d.ID == "" {
			return errors.New("dataset id is required")
		}
		if datasets[d.ID] {
			return fmt.Errorf("duplicate dataset %q", d.ID)
		}
		datasets[d.ID] = true

		for id := range d.Formats {
			if !formats[id] {
				return fmt.Errorf("dataset %q: unknown format %q", d.ID, id)
			}
		}

		collections := make(map[string]bool)
		for _, col := range d.Collections {
			if col.ID == "" {
				return fmt.Errorf("dataset %q: collection id is required", d.ID)
			}
			if collections[col.ID] {
				return fmt.Errorf("dataset %q: duplicate collection %q", d.ID, col.ID)
			}
			collections[col.ID] = true
			if col.FeatureType == "" {
				return fmt.Errorf("dataset %q: collection %q: featureType is required", d.ID, col.ID)
			}
			for id := range col.Formats {
				if !formats[id] {
					return fmt.Errorf("dataset %q: collection %q: unknown format %q", d.ID, col.ID, id)
				}
			}
		}
	}
	return nil
}

// Dataset returns the dataset with the given id.
func (c *Config) Dataset(id string) (*Dataset, bool) {
	for _, d := range c.Datasets {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Format returns the format with the given id.
func (c *Config) Format(id string) (Format, bool) {
	for _, f := range c.Formats {
		if f.ID == id {
			return f, true
		}
	}
	return Format{}, false
}

// DatasetIDs returns the dataset ids in declaration order.
func (c *Config) DatasetIDs() []string {
	ids := make([]string, len(c.Datasets))
	for i, d := range c.Datasets {
		ids[i] = d.ID
	}
	return ids
}

// FormatIDs returns the format ids in declaration order.
func (c *Config) FormatIDs() []string {
	ids := make([]string, len(c.Formats))
	for i, f := range c.Formats {
		ids[i] = f.ID
	}
	return ids
}
