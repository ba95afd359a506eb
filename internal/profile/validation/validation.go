// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validation provides the schema profiles that publish JSON Schema
// documents for validating returned or received features.
package validation

import (
	"github.com/dacolabs/ogcprofile/internal/featuretype"
	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/rewrite"
)

// Identifiers.
const (
	SetID         = "json-schema-validation"
	ReturnablesID = "validation-returnables"
	ReceivablesID = "validation-receivables"
)

// Returnables describes features as returned by the service. Write-only
// properties are dropped and references accept a key, a URI or a link.
type Returnables struct{ profile.Base }

func (Returnables) ID() string      { return ReturnablesID }
func (Returnables) SetID() string   { return SetID }
func (Returnables) IsDefault() bool { return true }

// ConfigureDerivation derives references as keys.
func (Returnables) ConfigureDerivation(opts *featuretype.DeriveOptions) {
	opts.RefEncoding = featuretype.RefKey
}

// RewriteDocument implements profile.DocumentRewriter.
func (Returnables) RewriteDocument(doc jschema.Node) (jschema.Node, error) {
	return shape(doc, func(a jschema.Attributes) bool { return a.WriteOnly }, returnableRef)
}

func returnableRef(n jschema.Node) jschema.Node {
	key := keyOf(n)
	alts := []jschema.Node{key}
	if key.Kind() == jschema.KindInteger {
		alts = append(alts, &jschema.String{Format: "uri-reference"})
	}
	alts = append(alts, &jschema.Object{
		Properties: []jschema.Property{
			{Name: "href", Schema: &jschema.String{Format: "uri-reference"}},
			{Name: "title", Schema: &jschema.String{}},
		},
		Required: []string{"href"},
	})
	return &jschema.OneOf{Attributes: n.Attrs(), Alternatives: alts}
}

// Receivables describes features as accepted by the service. Read-only
// properties are dropped and references are {id, type, title} objects.
type Receivables struct{ profile.Base }

func (Receivables) ID() string    { return ReceivablesID }
func (Receivables) SetID() string { return SetID }

// ConfigureDerivation derives references as keys.
func (Receivables) ConfigureDerivation(opts *featuretype.DeriveOptions) {
	opts.RefEncoding = featuretype.RefKey
}

// RewriteDocument implements profile.DocumentRewriter.
func (Receivables) RewriteDocument(doc jschema.Node) (jschema.Node, error) {
	return shape(doc, func(a jschema.Attributes) bool { return a.ReadOnly }, receivableRef)
}

func receivableRef(n jschema.Node) jschema.Node {
	a := n.Attrs()
	var typ jschema.Node = &jschema.String{}
	required := []string{"id", "type", "title"}
	if c := a.RefCollectionID; c != "" && c != featuretype.DynamicRefType {
		typ = &jschema.Constant{Value: c}
		required = []string{"id", "title"}
	}
	return &jschema.Object{
		Attributes: a,
		Properties: []jschema.Property{
			{Name: "id", Schema: keyOf(n)},
			{Name: "type", Schema: typ},
			{Name: "title", Schema: &jschema.String{}},
		},
		Required: required,
	}
}

// keyOf returns the key schema of a reference node.
func keyOf(n jschema.Node) jschema.Node {
	switch t := n.(type) {
	case *jschema.String:
		return &jschema.String{Format: t.Format, Pattern: t.Pattern}
	case *jschema.Integer:
		return &jschema.Integer{}
	case *jschema.Object:
		if id, ok := t.Lookup("id"); ok {
			return id
		}
	}
	return &jschema.String{}
}

// shape drops properties matching skip, replaces reference nodes and
// finishes with the validation cleanup.
func shape(doc jschema.Node, skip func(jschema.Attributes) bool, ref func(jschema.Node) jschema.Node) (jschema.Node, error) {
	shaped, err := (&shaper{skip: skip, ref: ref}).Visit(doc)
	if err != nil {
		return nil, err
	}
	return rewrite.CleanupForValidation{}.Visit(shaped)
}

type shaper struct {
	skip func(jschema.Attributes) bool
	ref  func(jschema.Node) jschema.Node
}

func (s *shaper) Visit(n jschema.Node) (jschema.Node, error) {
	if n != nil && n.Attrs().Role == jschema.RoleReference {
		return s.ref(n), nil
	}
	switch t := n.(type) {
	case *jschema.Object:
		c := *t
		c.Properties, c.Required = s.filter(t.Properties, t.Required)
		n = &c
	case *jschema.Document:
		c := *t
		c.Properties, c.Required = s.filter(t.Properties, t.Required)
		n = &c
	}
	return jschema.VisitChildren(s, n)
}

func (s *shaper) filter(props []jschema.Property, required []string) ([]jschema.Property, []string) {
	var kept []jschema.Property
	dropped := make(map[string]bool)
	for _, p := range props {
		if p.Schema != nil && s.skip(p.Schema.Attrs()) {
			dropped[p.Name] = true
			continue
		}
		kept = append(kept, p)
	}
	if len(dropped) == 0 {
		return props, required
	}
	var req []string
	for _, r := range required {
		if !dropped[r] {
			req = append(req, r)
		}
	}
	return kept, req
}

// NewSet returns the validation profile set. It is only negotiated when one
// of its profiles is requested.
func NewSet() *profile.Set {
	return &profile.Set{
		ID:          SetID,
		Kind:        profile.Schema,
		MediaType:   profile.SchemaMediaType,
		Profiles:    []profile.Profile{Returnables{}, Receivables{}},
		RequestOnly: true,
	}
}
