// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load(filepath.Join("testdata", "ogcprofile.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestConfig_Load(t *testing.T) {
	cfg := loadTestConfig(t)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://host/api", cfg.BaseURI)
	assert.Equal(t, []string{"html", "geojson", "csv"}, cfg.FormatIDs())
	assert.Equal(t, []string{"daraa"}, cfg.DatasetIDs())

	html, ok := cfg.Format("html")
	require.True(t, ok)
	assert.True(t, html.HumanReadable)
	assert.True(t, html.Complex)

	ds, ok := cfg.Dataset("daraa")
	require.True(t, ok)
	assert.Equal(t, []string{"roads", "rivers"}, ds.CollectionIDs())
	assert.Equal(t, "https://host/api/daraa", ds.APIURI(cfg.BaseURI))

	_, ok = cfg.Dataset("nope")
	assert.False(t, ok)
	_, ok = cfg.Format("nope")
	assert.False(t, ok)
}

func TestConfig_LoadAndSave(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "ogcprofile.yaml")

	cfg := Config{
		Version:         1,
		BaseURI:         "https://host/api",
		DefaultProfiles: map[string]string{"rel": "rel-as-key"},
		Formats:         []Format{{ID: "csv", MediaType: "text/csv"}},
		Datasets: []*Dataset{{
			ID:          "d",
			SubPath:     []string{"d"},
			Collections: []*Collection{{ID: "c", FeatureType: "c.yaml"}},
		}},
	}
	require.NoError(t, cfg.Save(cfgPath))

	loaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.BaseURI, loaded.BaseURI)
	assert.Equal(t, cfg.DefaultProfiles, loaded.DefaultProfiles)
	assert.Equal(t, cfg.Formats, loaded.Formats)
	require.Len(t, loaded.Datasets, 1)
	assert.Equal(t, "c.yaml", loaded.Datasets[0].Collections[0].FeatureType)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), "baseUri: https://host/api")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: [\n"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Version: 1,
			BaseURI: "https://host/api",
			Formats: []Format{{ID: "html", MediaType: "text/html"}},
			Datasets: []*Dataset{{
				ID:          "d",
				Collections: []*Collection{{ID: "c", FeatureType: "c.yaml"}},
			}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "unsupported version", mutate: func(c *Config) { c.Version = 99 }, wantErr: "unsupported config version"},
		{name: "relative base uri", mutate: func(c *Config) { c.BaseURI = "/api" }, wantErr: "absolute URI"},
		{name: "format without id", mutate: func(c *Config) { c.Formats[0].ID = "" }, wantErr: "format id is required"},
		{name: "format without media type", mutate: func(c *Config) { c.Formats[0].MediaType = "" }, wantErr: "mediaType is required"},
		{name: "duplicate format", mutate: func(c *Config) { c.Formats = append(c.Formats, c.Formats[0]) }, wantErr: "duplicate format"},
		{name: "dataset without id", mutate: func(c *Config) { c.Datasets[0].ID = "" }, wantErr: "dataset id is required"},
		{name: "duplicate dataset", mutate: func(c *Config) { c.Datasets = append(c.Datasets, c.Datasets[0]) }, wantErr: "duplicate dataset"},
		{
			name:    "unknown dataset format",
			mutate:  func(c *Config) { c.Datasets[0].Formats = map[string]FormatOverride{"csv": {}} },
			wantErr: "unknown format",
		},
		{name: "collection without id", mutate: func(c *Config) { c.Datasets[0].Collections[0].ID = "" }, wantErr: "collection id is required"},
		{
			name: "duplicate collection",
			mutate: func(c *Config) {
				c.Datasets[0].Collections = append(c.Datasets[0].Collections, &Collection{ID: "c", FeatureType: "x.yaml"})
			},
			wantErr: "duplicate collection",
		},
		{name: "collection without feature type", mutate: func(c *Config) { c.Datasets[0].Collections[0].FeatureType = "" }, wantErr: "featureType is required"},
		{
			name:    "unknown collection format",
			mutate:  func(c *Config) { c.Datasets[0].Collections[0].Formats = map[string]FormatOverride{"csv": {}} },
			wantErr: "unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDataset_LoadFeatureTypes(t *testing.T) {
	cfg := loadTestConfig(t)
	ds, _ := cfg.Dataset("daraa")

	require.NoError(t, ds.LoadFeatureTypes(os.DirFS("testdata")))

	roads, ok := ds.FeatureType("roads")
	require.True(t, ok)
	assert.True(t, roads.UsesCodelist())
	rivers, ok := ds.FeatureType("rivers")
	require.True(t, ok)
	assert.False(t, rivers.UsesCodelist())

	_, ok = ds.FeatureType("nope")
	assert.False(t, ok)
}

func TestDataset_LoadFeatureTypes_Missing(t *testing.T) {
	ds := &Dataset{ID: "d", Collections: []*Collection{{ID: "c", FeatureType: "c.yaml"}}}

	err := ds.LoadFeatureTypes(fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `collection "c"`)
}

func TestDataset_APIURI(t *testing.T) {
	tests := []struct {
		base    string
		subPath []string
		want    string
	}{
		{"https://host/api", nil, "https://host/api"},
		{"https://host/api/", []string{"daraa"}, "https://host/api/daraa"},
		{"https://host", []string{"/a/", "b", ""}, "https://host/a/b"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, (&Dataset{SubPath: tt.subPath}).APIURI(tt.base))
		})
	}
}
