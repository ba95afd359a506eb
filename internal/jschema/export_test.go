// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONSchema_Document(t *testing.T) {
	doc := &Document{
		Schema:   DraftURI,
		ID:       "https://example.com/roads/schema",
		Required: []string{"id"},
		Properties: []Property{
			{Name: "id", Schema: &Integer{Attributes: Attributes{Role: RoleID, PropertySeq: 1}}},
			{Name: "status", Schema: &String{
				Attributes: Attributes{Title: "Status", CodelistID: "status", CodelistURI: "https://host/codelists/status"},
				Enum:       []string{"1", "2"},
			}},
			{Name: "geometry", Schema: &Geometry{Type: "LineString"}},
		},
	}

	s := ToJSONSchema(doc)
	require.NotNil(t, s)
	assert.Equal(t, DraftURI, s.Schema)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"id"}, s.Required)
	require.Contains(t, s.Properties, "status")

	status := s.Properties["status"]
	assert.Equal(t, "string", status.Type)
	assert.Equal(t, "Status", status.Title)
	assert.Equal(t, []any{"1", "2"}, status.Enum)
	assert.Equal(t, "status", status.Extra[ExtCodelistID])
	assert.Equal(t, "https://host/codelists/status", status.Extra[ExtCodelistURI])

	id := s.Properties["id"]
	assert.Equal(t, RoleID, id.Extra[ExtRole])
	assert.Equal(t, 1, id.Extra[ExtPropertySeq])

	assert.Equal(t, "https://geojson.org/schema/LineString.json", s.Properties["geometry"].Ref)
}

func TestToJSONSchema_Variants(t *testing.T) {
	s := ToJSONSchema(&OneOf{Alternatives: []Node{
		&Constant{Value: "1", Attributes: Attributes{Title: "Active"}},
		&False{},
	}})
	require.Len(t, s.OneOf, 2)
	require.NotNil(t, s.OneOf[0].Const)
	assert.Equal(t, "1", *s.OneOf[0].Const)
	assert.Equal(t, "Active", s.OneOf[0].Title)
	assert.NotNil(t, s.OneOf[1].Not)

	lower := int64(2)
	i := ToJSONSchema(&Integer{Minimum: &lower})
	require.NotNil(t, i.Minimum)
	assert.InDelta(t, 2.0, *i.Minimum, 0)

	assert.Nil(t, ToJSONSchema(nil))
	assert.Nil(t, ToJSONSchema(&Boolean{}).Extra)
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(&Object{Properties: []Property{{Name: "name", Schema: &String{}}}})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "object", decoded["type"])
	props, ok := decoded["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
}

func TestMarshalJSON_PropertyOrder(t *testing.T) {
	doc := &Document{
		Properties: []Property{
			{Name: "zeta", Schema: &String{}},
			{Name: "alpha", Schema: &Object{Properties: []Property{
				{Name: "street", Schema: &String{}},
				{Name: "district", Schema: &Integer{}},
			}}},
		},
	}

	s := ToJSONSchema(doc)
	assert.Equal(t, []string{"zeta", "alpha"}, s.PropertyOrder)
	assert.Equal(t, []string{"street", "district"}, s.Properties["alpha"].PropertyOrder)

	data, err := MarshalJSON(doc)
	require.NoError(t, err)
	out := string(data)
	assert.Less(t, strings.Index(out, `"zeta"`), strings.Index(out, `"alpha"`))
	assert.Less(t, strings.Index(out, `"street"`), strings.Index(out, `"district"`))
}
