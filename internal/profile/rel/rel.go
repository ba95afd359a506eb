// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rel provides the profiles that choose how feature references are
// encoded: as the stored key, as a URI, or as a link.
package rel

import (
	"mime"

	"github.com/dacolabs/ogcprofile/internal/featuretype"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/transform"
)

// Identifiers.
const (
	SetID    = "rel"
	AsKeyID  = "rel-as-key"
	AsURIID  = "rel-as-uri"
	AsLinkID = "rel-as-link"
)

// Fields of a stored feature reference.
const (
	FieldID          = "id"
	FieldType        = "type"
	FieldTitle       = "title"
	FieldURITemplate = "uriTemplate"
)

// HTMLMediaType selects the hyperlink rendering of rel-as-link.
const HTMLMediaType = "text/html"

// URITemplate prefers a stored URI and falls back to the item URI built from
// the reference type and id.
const URITemplate = "{{" + FieldURITemplate + " | orElse:'{{apiUri}}/collections/{{" + FieldType + "}}/items/{{" + FieldID + "}}'}}"

// AsKey keeps the stored key. It is the default.
type AsKey struct{ profile.Base }

func (AsKey) ID() string      { return AsKeyID }
func (AsKey) SetID() string   { return SetID }
func (AsKey) IsDefault() bool { return true }

// ConfigureDerivation publishes references as keys.
func (AsKey) ConfigureDerivation(opts *featuretype.DeriveOptions) {
	opts.RefEncoding = featuretype.RefKey
}

// AsURI reduces references to their URI.
type AsURI struct{ profile.Base }

func (AsURI) ID() string    { return AsURIID }
func (AsURI) SetID() string { return SetID }

// AddTransformations reduces every feature reference to a URI.
func (AsURI) AddTransformations(ft *featuretype.Schema, _ string, b *transform.Builder) {
	for _, p := range ft.AllNestedProperties() {
		if p.IsFeatureRef() {
			b.Put(p.FullPath(), transform.RemoveSelect(FieldID), transform.ReduceFormat(uriTemplate(p)))
		}
	}
}

// ConfigureDerivation publishes references as URIs.
func (AsURI) ConfigureDerivation(opts *featuretype.DeriveOptions) {
	opts.RefEncoding = featuretype.RefURI
}

// AsLink encodes references as links. It is the default for complex formats.
type AsLink struct{ profile.Base }

func (AsLink) ID() string                { return AsLinkID }
func (AsLink) SetID() string             { return SetID }
func (AsLink) IsDefaultForComplex() bool { return true }

// AddTransformations renders references as hyperlinks for HTML and as
// {title, href} objects otherwise.
func (AsLink) AddTransformations(ft *featuretype.Schema, mediaType string, b *transform.Builder) {
	html := isHTML(mediaType)
	for _, p := range ft.AllNestedProperties() {
		if !p.IsFeatureRef() {
			continue
		}
		uri := uriTemplate(p)
		if html {
			b.Put(p.FullPath(),
				transform.RemoveSelect(FieldID),
				transform.ReduceFormat(`<a href="`+uri+`">{{`+FieldTitle+` | orElse:'{{`+FieldID+`}}'}}</a>`))
			continue
		}
		b.Put(p.FullPath(),
			transform.RemoveSelect(FieldID),
			transform.MapFormat(
				transform.Field{Name: FieldTitle, Template: "{{" + FieldTitle + "}}"},
				transform.Field{Name: "href", Template: uri},
			))
	}
}

// ConfigureDerivation publishes references as links, rendered as hyperlink
// strings for HTML.
func (AsLink) ConfigureDerivation(opts *featuretype.DeriveOptions) {
	if isHTML(opts.MediaType) {
		opts.RefEncoding = featuretype.RefHTMLLink
		return
	}
	opts.RefEncoding = featuretype.RefLink
}

// uriTemplate returns URITemplate, specialised for references with a fixed
// target collection or an explicit URI template.
func uriTemplate(p *featuretype.Property) string {
	switch {
	case p.RefURITemplate != "":
		return "{{" + FieldURITemplate + " | orElse:'" + p.RefURITemplate + "'}}"
	case p.RefType != "" && p.RefType != featuretype.DynamicRefType:
		return "{{" + FieldURITemplate + " | orElse:'{{apiUri}}/collections/" + p.RefType + "/items/{{" + FieldID + "}}'}}"
	}
	return URITemplate
}

func isHTML(mediaType string) bool {
	t, _, err := mime.ParseMediaType(mediaType)
	return err == nil && t == HTMLMediaType
}

// NewSet returns the rel profile set. It is enabled for feature types with
// feature references. rel-as-link is only offered for complex formats.
func NewSet() *profile.Set {
	return &profile.Set{
		ID:        SetID,
		Kind:      profile.Feature,
		MediaType: profile.AnyMediaType,
		Enabled:   (*featuretype.Schema).UsesFeatureRef,
		Profiles:  []profile.Profile{AsKey{}, AsURI{}, AsLink{}},
		Supported: func(p profile.Profile, f profile.Format) bool {
			return p.ID() != AsLinkID || f.Complex
		},
	}
}
