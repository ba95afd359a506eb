// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Extension keywords carrying OGC attributes in exported schemas.
const (
	ExtRole            = "x-ogc-role"
	ExtEmbeddedRole    = "x-ogc-embeddedRole"
	ExtPropertySeq     = "x-ogc-propertySeq"
	ExtCodelistID      = "x-ogc-codelistId"
	ExtCodelistURI     = "x-ogc-codelistUri"
	ExtRefCollectionID = "x-ogc-collectionId"
	ExtRefURITemplate  = "x-ogc-uriTemplate"
)

// DraftURI is the meta-schema URI written into exported documents.
const DraftURI = "https://json-schema.org/draft/2020-12/schema"

// GeometryURI returns the GeoJSON schema URI for a geometry type.
func GeometryURI(geometryType string) string {
	if geometryType == "" {
		geometryType = "Geometry"
	}
	return "https://geojson.org/schema/" + geometryType + ".json"
}

// ToJSONSchema converts a node tree into a JSON Schema document.
func ToJSONSchema(n Node) *jsonschema.Schema {
	if n == nil {
		return nil
	}
	a := n.Attrs()
	s := &jsonschema.Schema{
		Title:       a.Title,
		Description: a.Description,
		ReadOnly:    a.ReadOnly,
		WriteOnly:   a.WriteOnly,
	}

	switch t := n.(type) {
	case *String:
		s.Type = "string"
		s.Format = t.Format
		s.Pattern = t.Pattern
		s.MinLength = t.MinLength
		s.MaxLength = t.MaxLength
		for _, e := range t.Enum {
			s.Enum = append(s.Enum, e)
		}
	case *Integer:
		s.Type = "integer"
		s.Minimum = intBound(t.Minimum)
		s.Maximum = intBound(t.Maximum)
		for _, e := range t.Enum {
			s.Enum = append(s.Enum, e)
		}
	case *Number:
		s.Type = "number"
		s.Minimum = t.Minimum
		s.Maximum = t.Maximum
	case *Boolean:
		s.Type = "boolean"
	case *Null:
		s.Type = "null"
	case *True:
	case *False:
		s.Not = &jsonschema.Schema{}
	case *Constant:
		v := t.Value
		s.Const = &v
	case *Object:
		s.Type = "object"
		s.Properties = exportProperties(t.Properties)
		s.PropertyOrder = propertyOrder(t.Properties)
		s.PatternProperties = exportProperties(t.PatternProperties)
		s.AdditionalProperties = ToJSONSchema(t.AdditionalProperties)
		s.Required = t.Required
	case *Array:
		s.Type = "array"
		s.Items = ToJSONSchema(t.Items)
		s.MinItems = t.MinItems
		s.MaxItems = t.MaxItems
	case *OneOf:
		for _, alt := range t.Alternatives {
			s.OneOf = append(s.OneOf, ToJSONSchema(alt))
		}
	case *AllOf:
		for _, p := range t.Parts {
			s.AllOf = append(s.AllOf, ToJSONSchema(p))
		}
	case *Ref:
		s.Ref = t.Ref
	case *Geometry:
		s.Ref = GeometryURI(t.Type)
	case *Document:
		s.Schema = t.Schema
		s.ID = t.ID
		s.Type = "object"
		s.Properties = exportProperties(t.Properties)
		s.PropertyOrder = propertyOrder(t.Properties)
		s.PatternProperties = exportProperties(t.PatternProperties)
		s.AdditionalProperties = ToJSONSchema(t.AdditionalProperties)
		s.Required = t.Required
		s.Defs = exportProperties(t.Definitions)
	}

	if ext := extensions(a); len(ext) > 0 {
		s.Extra = ext
	}
	return s
}

// MarshalJSON renders n as indented JSON Schema.
func MarshalJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(ToJSONSchema(n), "", "  ")
}

func exportProperties(props []Property) map[string]*jsonschema.Schema {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]*jsonschema.Schema, len(props))
	for _, p := range props {
		out[p.Name] = ToJSONSchema(p.Schema)
	}
	return out
}

func propertyOrder(props []Property) []string {
	if len(props) == 0 {
		return nil
	}
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	return names
}

func intBound(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

func extensions(a Attributes) map[string]any {
	ext := make(map[string]any)
	set := func(key, value string) {
		if value != "" {
			ext[key] = value
		}
	}
	set(ExtRole, a.Role)
	set(ExtEmbeddedRole, a.EmbeddedRole)
	set(ExtCodelistID, a.CodelistID)
	set(ExtCodelistURI, a.CodelistURI)
	set(ExtRefCollectionID, a.RefCollectionID)
	set(ExtRefURITemplate, a.RefURITemplate)
	if a.PropertySeq > 0 {
		ext[ExtPropertySeq] = a.PropertySeq
	}
	return ext
}
