// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package profile defines profiles, profile sets and the resolver that picks
// one effective profile per set for a request.
package profile

import (
	"github.com/dacolabs/ogcprofile/internal/featuretype"
	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/transform"
)

// ResourceKind is the kind of resource a profile set applies to.
type ResourceKind int

// Resource kinds.
const (
	Feature ResourceKind = iota + 1
	Schema
)

func (k ResourceKind) String() string {
	switch k {
	case Feature:
		return "feature"
	case Schema:
		return "schema"
	}
	return "unknown"
}

// ParseResourceKind parses "feature" or "schema".
func ParseResourceKind(s string) (ResourceKind, bool) {
	switch s {
	case "feature":
		return Feature, true
	case "schema":
		return Schema, true
	}
	return 0, false
}

// Profile is a named representation choice within a profile set.
type Profile interface {
	ID() string
	SetID() string
	IsDefault() bool
	IsDefaultForComplex() bool
	IsDefaultForHumanReadable() bool
	// AddTransformations appends the property rules this profile needs for
	// features of ft encoded as mediaType.
	AddTransformations(ft *featuretype.Schema, mediaType string, b *transform.Builder)
}

// SchemaProcessor is implemented by profiles that rewrite codelist nodes.
type SchemaProcessor interface {
	Profile
	ProcessSchema(n jschema.Node, codelistID, codelistURI string) (jschema.Node, error)
}

// DocumentRewriter is implemented by profiles that rewrite a whole schema document.
type DocumentRewriter interface {
	Profile
	RewriteDocument(doc jschema.Node) (jschema.Node, error)
}

// DerivationOption is implemented by profiles that change how schemas are derived.
type DerivationOption interface {
	Profile
	ConfigureDerivation(opts *featuretype.DeriveOptions)
}

// Base provides the default answers of a profile. Embed it and define ID and SetID.
type Base struct{}

func (Base) IsDefault() bool                 { return false }
func (Base) IsDefaultForComplex() bool       { return false }
func (Base) IsDefaultForHumanReadable() bool { return false }

func (Base) AddTransformations(*featuretype.Schema, string, *transform.Builder) {}

// Format describes an output format.
type Format struct {
	ID            string
	MediaType     string
	HumanReadable bool
	Complex       bool
}

// URI returns the identifying URI of p under base.
func URI(base string, p Profile) string {
	return base + "/profile/" + p.ID()
}

// IDs returns the identifiers of profiles.
func IDs(profiles []Profile) []string {
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID()
	}
	return ids
}
