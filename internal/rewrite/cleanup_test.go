// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"testing"

	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decorated() jschema.Attributes {
	return jschema.Attributes{
		Title:           "Title",
		Description:     "Description",
		ReadOnly:        true,
		WriteOnly:       true,
		CodelistID:      "status",
		CodelistURI:     "https://host/codelists/status",
		Role:            jschema.RoleID,
		EmbeddedRole:    "embedded",
		PropertySeq:     4,
		RefCollectionID: "roads",
		RefURITemplate:  "{{id}}",
	}
}

func everyVariant() *jschema.Document {
	a := decorated()
	return &jschema.Document{
		Attributes: a,
		Schema:     jschema.DraftURI,
		Properties: []jschema.Property{
			{Name: "string", Schema: &jschema.String{Attributes: a, Format: "date", Enum: []string{"a"}}},
			{Name: "integer", Schema: &jschema.Integer{Attributes: a, Enum: []int64{1}}},
			{Name: "number", Schema: &jschema.Number{Attributes: a}},
			{Name: "boolean", Schema: &jschema.Boolean{Attributes: a}},
			{Name: "null", Schema: &jschema.Null{Attributes: a}},
			{Name: "true", Schema: &jschema.True{Attributes: a}},
			{Name: "false", Schema: &jschema.False{Attributes: a}},
			{Name: "constant", Schema: &jschema.Constant{Attributes: a, Value: "1"}},
			{Name: "object", Schema: &jschema.Object{Attributes: a, Required: []string{"x"}, Properties: []jschema.Property{
				{Name: "x", Schema: &jschema.String{Attributes: a}},
			}}},
			{Name: "array", Schema: &jschema.Array{Attributes: a, Items: &jschema.Integer{Attributes: a}}},
			{Name: "oneOf", Schema: &jschema.OneOf{Attributes: a, Alternatives: []jschema.Node{
				&jschema.Constant{Attributes: a, Value: "1"},
				&jschema.Constant{Attributes: a, Value: "2"},
			}}},
			{Name: "allOf", Schema: &jschema.AllOf{Attributes: a, Parts: []jschema.Node{&jschema.Object{Attributes: a}}}},
			{Name: "ref", Schema: &jschema.Ref{Attributes: a, Ref: "#/$defs/link"}},
			{Name: "geometry", Schema: &jschema.Geometry{Attributes: a, Type: "Point"}},
		},
		Definitions: []jschema.Property{
			{Name: "link", Schema: &jschema.Object{Attributes: a}},
		},
	}
}

func TestCleanupForValidation_StripsEveryVariant(t *testing.T) {
	out, err := CleanupForValidation{}.Visit(everyVariant())
	require.NoError(t, err)

	count := 0
	for n := range jschema.Traverse(out) {
		assert.Equal(t, jschema.Attributes{CodelistID: "status"}, n.Attrs(), "kind %s", n.Kind())
		count++
	}
	assert.Equal(t, 21, count)
}

func TestCleanupForValidation_PreservesStructure(t *testing.T) {
	in := everyVariant()
	out, err := CleanupForValidation{}.Visit(in)
	require.NoError(t, err)

	var inKinds, outKinds []jschema.Kind
	for n := range jschema.Traverse(in) {
		inKinds = append(inKinds, n.Kind())
	}
	for n := range jschema.Traverse(out) {
		outKinds = append(outKinds, n.Kind())
	}
	assert.Equal(t, inKinds, outKinds)

	doc := out.(*jschema.Document)
	s, _ := doc.Lookup("string")
	assert.Equal(t, "date", s.(*jschema.String).Format)
	assert.Equal(t, []string{"a"}, s.(*jschema.String).Enum)
	obj, _ := doc.Lookup("object")
	assert.Equal(t, []string{"x"}, obj.(*jschema.Object).Required)
	oneOf, _ := doc.Lookup("oneOf")
	require.Len(t, oneOf.(*jschema.OneOf).Alternatives, 2)
	assert.Equal(t, "2", oneOf.(*jschema.OneOf).Alternatives[1].(*jschema.Constant).Value)
	assert.Equal(t, jschema.DraftURI, doc.Schema)

	// Input keeps its attributes.
	assert.Equal(t, "Title", in.Title)
}

func TestCleanupForValidation_Idempotent(t *testing.T) {
	once, err := CleanupForValidation{}.Visit(everyVariant())
	require.NoError(t, err)
	twice, err := CleanupForValidation{}.Visit(once)
	require.NoError(t, err)
	assert.True(t, jschema.Equal(once, twice))
}

func TestCleanupForValidation_UnexpectedVariant(t *testing.T) {
	_, err := CleanupForValidation{}.Visit(nil)
	assert.ErrorIs(t, err, jschema.ErrUnexpectedVariant)

	doc := &jschema.Document{Properties: []jschema.Property{
		{Name: "nested", Schema: &jschema.Array{Items: nil}},
	}}
	_, err = CleanupForValidation{}.Visit(doc)
	assert.NoError(t, err)
}
