// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"dario.cat/mergo"
)

// MergeDefaults merges default profile layers, most specific first. The first
// non-empty value for a profile set wins.
func MergeDefaults(layers ...map[string]string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, layer); err != nil {
			return nil, err
		}
	}
	for k, v := range merged {
		if v == "" {
			delete(merged, k)
		}
	}
	return merged, nil
}

// ResourceDefaults returns the defaults for a dataset or one of its
// collections: collection over dataset over global.
func (c *Config) ResourceDefaults(datasetID, collectionID string) map[string]string {
	var layers []map[string]string
	if d, ok := c.Dataset(datasetID); ok {
		if col, ok := d.Collection(collectionID); ok {
			layers = append(layers, col.DefaultProfiles)
		}
		layers = append(layers, d.DefaultProfiles)
	}
	layers = append(layers, c.DefaultProfiles)
	return mustMerge(layers)
}

// FormatDefaults returns the defaults for one output format: collection
// override over dataset override over the format itself.
func (c *Config) FormatDefaults(datasetID, collectionID, formatID string) map[string]string {
	var layers []map[string]string
	if d, ok := c.Dataset(datasetID); ok {
		if col, ok := d.Collection(collectionID); ok {
			layers = append(layers, col.Formats[formatID].DefaultProfiles)
		}
		layers = append(layers, d.Formats[formatID].DefaultProfiles)
	}
	if f, ok := c.Format(formatID); ok {
		layers = append(layers, f.DefaultProfiles)
	}
	return mustMerge(layers)
}

// mustMerge merges maps of identical type, which mergo never rejects.
func mustMerge(layers []map[string]string) map[string]string {
	merged, err := MergeDefaults(layers...)
	if err != nil {
		return map[string]string{}
	}
	return merged
}
