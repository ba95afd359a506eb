// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package featuretype

import (
	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/spf13/cast"
)

// RefEncoding selects how feature references appear in a derived schema.
type RefEncoding int

// Reference encodings.
const (
	// RefObject publishes the stored reference object {id, title, type}.
	RefObject RefEncoding = iota
	// RefKey publishes the bare key.
	RefKey
	// RefURI publishes a URI reference.
	RefURI
	// RefLink publishes a {href, title} link object.
	RefLink
	// RefHTMLLink publishes a rendered hyperlink string.
	RefHTMLLink
)

// DeriveOptions control schema derivation.
type DeriveOptions struct {
	ID          string
	Title       string
	Description string

	// MediaType is the media type of the features the schema describes.
	MediaType   string
	RefEncoding RefEncoding
	// CodelistAsTitle publishes codelist values as plain title strings.
	CodelistAsTitle bool
}

// Derive builds the schema document for s.
func Derive(s *Schema, opts DeriveOptions) *jschema.Document {
	title := opts.Title
	if title == "" {
		title = s.Label
	}
	description := opts.Description
	if description == "" {
		description = s.Description
	}
	props, required := deriveProperties(s.Properties, opts)
	return &jschema.Document{
		Attributes: jschema.Attributes{Title: title, Description: description},
		ID:         opts.ID,
		Schema:     jschema.DraftURI,
		Properties: props,
		Required:   required,
	}
}

func deriveProperties(props PropertyList, opts DeriveOptions) ([]jschema.Property, []string) {
	if len(props) == 0 {
		return nil, nil
	}
	out := make([]jschema.Property, 0, len(props))
	var required []string
	for i, p := range props {
		out = append(out, jschema.Property{Name: p.Name, Schema: deriveProperty(p, i+1, opts)})
		if p.Constraints != nil && p.Constraints.Required {
			required = append(required, p.Name)
		}
	}
	return out, required
}

func deriveProperty(p *Property, seq int, opts DeriveOptions) jschema.Node {
	a := jschema.Attributes{
		Title:       p.Label,
		Description: p.Description,
		ReadOnly:    p.ReadOnly,
		WriteOnly:   p.WriteOnly,
		Role:        role(p.Role),
		PropertySeq: seq,
	}

	switch p.Type {
	case Object:
		return deriveObject(p, a, opts)
	case ObjectArray:
		return &jschema.Array{Attributes: a, Items: deriveObject(p, jschema.Attributes{}, opts)}
	case ValueArray:
		valueType := p.ValueType
		if valueType == "" {
			valueType = String
		}
		return &jschema.Array{Attributes: a, Items: deriveValue(p, valueType, jschema.Attributes{}, opts)}
	case FeatureRef:
		return deriveRef(p, a, opts)
	case FeatureRefArray:
		return &jschema.Array{Attributes: a, Items: deriveRef(p, jschema.Attributes{}, opts)}
	default:
		return deriveValue(p, p.Type, a, opts)
	}
}

func deriveObject(p *Property, a jschema.Attributes, opts DeriveOptions) *jschema.Object {
	props, required := deriveProperties(p.Properties, opts)
	return &jschema.Object{Attributes: a, Properties: props, Required: required}
}

func deriveValue(p *Property, t Type, a jschema.Attributes, opts DeriveOptions) jschema.Node {
	c := p.Constraints
	if c == nil {
		c = &Constraints{}
	}
	if c.Codelist != "" {
		if opts.CodelistAsTitle {
			return &jschema.String{Attributes: a}
		}
		a.CodelistID = c.Codelist
	}

	switch t {
	case Integer:
		n := &jschema.Integer{Attributes: a}
		for _, e := range c.Enum {
			if v, err := cast.ToInt64E(e); err == nil {
				n.Enum = append(n.Enum, v)
			}
		}
		if c.Min != nil {
			v := int64(*c.Min)
			n.Minimum = &v
		}
		if c.Max != nil {
			v := int64(*c.Max)
			n.Maximum = &v
		}
		return n
	case Float:
		return &jschema.Number{Attributes: a, Minimum: c.Min, Maximum: c.Max}
	case Boolean:
		return &jschema.Boolean{Attributes: a}
	case Geometry:
		return &jschema.Geometry{Attributes: a, Type: p.GeometryType}
	case Date:
		return &jschema.String{Attributes: a, Format: "date", Pattern: c.Pattern, Enum: c.Enum}
	case Datetime:
		return &jschema.String{Attributes: a, Format: "date-time", Pattern: c.Pattern, Enum: c.Enum}
	default:
		return &jschema.String{Attributes: a, Pattern: c.Pattern, Enum: c.Enum}
	}
}

func deriveRef(p *Property, a jschema.Attributes, opts DeriveOptions) jschema.Node {
	a.Role = jschema.RoleReference
	a.RefCollectionID = p.RefType
	a.RefURITemplate = p.RefURITemplate

	switch opts.RefEncoding {
	case RefKey:
		return refKey(p, a)
	case RefURI:
		return &jschema.String{Attributes: a, Format: "uri-reference"}
	case RefHTMLLink:
		return &jschema.String{Attributes: a}
	case RefLink:
		return &jschema.Object{
			Attributes: a,
			Properties: []jschema.Property{
				{Name: "href", Schema: &jschema.String{Format: "uri-reference"}},
				{Name: "title", Schema: &jschema.String{}},
			},
			Required: []string{"href"},
		}
	default:
		return &jschema.Object{
			Attributes: a,
			Properties: []jschema.Property{
				{Name: "id", Schema: refKey(p, jschema.Attributes{})},
				{Name: "title", Schema: &jschema.String{}},
				{Name: "type", Schema: &jschema.String{}},
			},
			Required: []string{"id"},
		}
	}
}

func refKey(p *Property, a jschema.Attributes) jschema.Node {
	if p.ValueType == Integer {
		return &jschema.Integer{Attributes: a}
	}
	return &jschema.String{Attributes: a}
}

func role(r Role) string {
	switch r {
	case RoleID:
		return jschema.RoleID
	case RolePrimaryGeometry:
		return jschema.RolePrimaryGeometry
	case RolePrimaryInstant:
		return jschema.RolePrimaryInstant
	}
	return ""
}
