// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validation

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/ogcprofile/internal/featuretype"
	"github.com/dacolabs/ogcprofile/internal/jschema"
	validationprofile "github.com/dacolabs/ogcprofile/internal/profile/validation"
)

func intPtr(v int64) *int64 { return &v }

func testDocument() *jschema.Document {
	return &jschema.Document{
		ID:     "https://host/api/daraa/collections/roads/schema",
		Schema: jschema.DraftURI,
		Properties: []jschema.Property{
			{Name: "name", Schema: &jschema.String{}},
			{Name: "status", Schema: &jschema.OneOf{Alternatives: []jschema.Node{
				&jschema.Constant{Value: "1"},
				&jschema.Constant{Value: "2"},
			}}},
			{Name: "lanes", Schema: &jschema.Integer{Minimum: intPtr(1)}},
			{Name: "geometry", Schema: &jschema.Geometry{Type: "LineString"}},
		},
		Required: []string{"name"},
	}
}

func compile(t *testing.T, doc jschema.Node) *Schema {
	t.Helper()
	s, err := Compile(doc)
	require.NoError(t, err)
	return s
}

func validationError(t *testing.T, err error) *Error {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "got %v", err)
	return verr
}

func TestCompile_URL(t *testing.T) {
	assert.Equal(t, "https://host/api/daraa/collections/roads/schema", compile(t, testDocument()).URL())
	assert.Equal(t, "schema.json", compile(t, &jschema.Object{}).URL())
}

func TestSchema_Validate(t *testing.T) {
	s := compile(t, testDocument())

	tests := []struct {
		name      string
		payload   map[string]any
		wantPaths []string
		keyword   string
	}{
		{
			name: "valid",
			payload: map[string]any{
				"name":     "Main Road",
				"status":   "1",
				"lanes":    2,
				"geometry": map[string]any{"type": "LineString", "coordinates": []any{[]any{0, 0}, []any{1, 1}}},
			},
		},
		{
			name:      "missing required",
			payload:   map[string]any{"status": "2"},
			wantPaths: []string{"/"},
			keyword:   "required",
		},
		{
			name:      "below minimum",
			payload:   map[string]any{"name": "x", "lanes": 0},
			wantPaths: []string{"/lanes"},
			keyword:   "minimum",
		},
		{
			name:      "not a codelist value",
			payload:   map[string]any{"name": "x", "status": "3"},
			wantPaths: []string{"/status"},
		},
		{
			name:      "wrong geometry type",
			payload:   map[string]any{"name": "x", "geometry": map[string]any{"type": "Point"}},
			wantPaths: []string{"/geometry/type"},
			keyword:   "const",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.payload)
			if tt.wantPaths == nil {
				assert.NoError(t, err)
				return
			}
			verr := validationError(t, err)
			assert.Equal(t, tt.wantPaths, verr.Paths())
			if tt.keyword != "" {
				assert.Equal(t, tt.keyword, verr.Fields[0].Keyword)
			}
			assert.NotEmpty(t, verr.Fields[0].Message)
			assert.Contains(t, verr.Error(), "validation failed: ")
		})
	}
}

func TestSchema_ValidateJSON(t *testing.T) {
	s := compile(t, testDocument())

	assert.NoError(t, s.ValidateJSON([]byte(`{"name": "Main Road", "lanes": 3}`)))

	err := s.ValidateJSON([]byte(`{"name": 5}`))
	assert.Equal(t, []string{"/name"}, validationError(t, err).Paths())

	err = s.ValidateJSON([]byte(`{"name":`))
	require.Error(t, err)
	var verr *Error
	assert.False(t, errors.As(err, &verr))
}

func TestCompile_DerivedDocument(t *testing.T) {
	data, err := os.ReadFile("testdata/roads.yaml")
	require.NoError(t, err)
	ft, err := featuretype.Parse(data)
	require.NoError(t, err)

	doc := featuretype.Derive(ft, featuretype.DeriveOptions{
		ID:          "https://host/api/daraa/collections/roads/schema",
		RefEncoding: featuretype.RefKey,
	})
	shaped, err := validationprofile.Returnables{}.RewriteDocument(doc)
	require.NoError(t, err)
	s := compile(t, shaped)

	feature := map[string]any{
		"id":         1,
		"name":       "Main Road",
		"status":     "1",
		"surface":    []any{"asphalt"},
		"opened":     "2024-01-02",
		"maintainer": "42",
		"address":    map[string]any{"street": "Main", "district": 3},
		"geometry":   map[string]any{"type": "LineString", "coordinates": []any{[]any{0, 0}, []any{1, 1}}},
	}
	assert.NoError(t, s.Validate(feature))

	feature["maintainer"] = map[string]any{"href": "https://host/api/daraa/collections/organisations/items/42"}
	assert.NoError(t, s.Validate(feature))

	feature["address"] = map[string]any{"district": 2}
	feature["opened"] = "yesterday"
	verr := validationError(t, s.Validate(feature))
	assert.Equal(t, []string{"/address/district", "/opened"}, verr.Paths())
}
