// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/dacolabs/ogcprofile/internal/featuretype"
)

// Dataset is a published set of feature collections.
type Dataset struct {
	ID string `yaml:"id"`
	// SubPath are the path segments of the dataset below the base URI.
	SubPath         []string                  `yaml:"subPath,omitempty"`
	DefaultProfiles map[string]string         `yaml:"defaultProfiles,omitempty"`
	Formats         map[string]FormatOverride `yaml:"formats,omitempty"`
	Collections     []*Collection             `yaml:"collections"`

	featureTypes map[string]*featuretype.Schema
}

// Collection is one feature collection of a dataset.
type Collection struct {
	ID string `yaml:"id"`
	// FeatureType is the path of the feature type definition.
	FeatureType     string                    `yaml:"featureType"`
	DefaultProfiles map[string]string         `yaml:"defaultProfiles,omitempty"`
	Formats         map[string]FormatOverride `yaml:"formats,omitempty"`
}

// DatasetID returns the dataset id.
func (d *Dataset) DatasetID() string { return d.ID }

// CollectionIDs returns the collection ids in declaration order.
func (d *Dataset) CollectionIDs() []string {
	ids := make([]string, len(d.Collections))
	for i, c := range d.Collections {
		ids[i] = c.ID
	}
	return ids
}

// Collection returns the collection with the given id.
func (d *Dataset) Collection(id string) (*Collection, bool) {
	for _, c := range d.Collections {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// FeatureType returns the loaded feature type of a collection.
func (d *Dataset) FeatureType(collectionID string) (*featuretype.Schema, bool) {
	ft, ok := d.featureTypes[collectionID]
	return ft, ok
}

// SetFeatureType registers the feature type of a collection.
func (d *Dataset) SetFeatureType(collectionID string, ft *featuretype.Schema) {
	if d.featureTypes == nil {
		d.featureTypes = make(map[string]*featuretype.Schema)
	}
	d.featureTypes[collectionID] = ft
}

// LoadFeatureTypes reads the feature type of every collection from fsys.
// Paths are slash-separated and relative to the root of fsys.
func (d *Dataset) LoadFeatureTypes(fsys fs.FS) error {
	for _, c := range d.Collections {
		ft, err := featuretype.Load(fsys, path.Clean(c.FeatureType))
		if err != nil {
			return fmt.Errorf("dataset %q: collection %q: %w", d.ID, c.ID, err)
		}
		d.SetFeatureType(c.ID, ft)
	}
	return nil
}

// APIURI returns the URI of the dataset below base.
func (d *Dataset) APIURI(base string) string {
	uri := strings.TrimRight(base, "/")
	for _, s := range d.SubPath {
		if s = strings.Trim(s, "/"); s != "" {
			uri += "/" + s
		}
	}
	return uri
}
