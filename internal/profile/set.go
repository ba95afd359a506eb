// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package profile

import (
	"mime"
	"strings"

	"github.com/dacolabs/ogcprofile/internal/featuretype"
)

// AnyMediaType matches every media type.
const AnyMediaType = "*/*"

// SchemaMediaType is the media type of JSON Schema documents.
const SchemaMediaType = "application/schema+json"

// Set is a named family of mutually exclusive profiles.
type Set struct {
	ID   string
	Kind ResourceKind
	// MediaType restricts the formats the set applies to.
	MediaType string
	// Enabled reports whether the set is relevant for a feature type. Nil means always.
	Enabled func(ft *featuretype.Schema) bool
	// Profiles are the members in declaration order.
	Profiles []Profile
	// Supported reports whether p can be produced for f. Nil means always.
	Supported func(p Profile, f Format) bool
	// RequestOnly sets take part in negotiation only when a member is requested.
	RequestOnly bool
}

// Member returns the member with the given id.
func (s *Set) Member(id string) (Profile, bool) {
	for _, p := range s.Profiles {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

func (s *Set) requested(ids []string) bool {
	for _, id := range ids {
		if _, ok := s.Member(id); ok {
			return true
		}
	}
	return false
}

// AppliesTo reports whether mediaType is compatible with the set's media type.
func (s *Set) AppliesTo(mediaType string) bool {
	return MediaTypesCompatible(s.MediaType, mediaType)
}

// SupportedProfiles returns the members that can be produced for f.
func (s *Set) SupportedProfiles(f Format) []Profile {
	if s.Supported == nil {
		return s.Profiles
	}
	var out []Profile
	for _, p := range s.Profiles {
		if s.Supported(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Set) supports(p Profile, f Format) bool {
	return s.Supported == nil || s.Supported(p, f)
}

// EnabledFor reports whether the set is enabled for one collection of ds,
// or for any collection when collectionID is empty.
func (s *Set) EnabledFor(ds Dataset, collectionID string) bool {
	if s.Enabled == nil {
		return true
	}
	if collectionID != "" {
		ft, ok := ds.FeatureType(collectionID)
		return ok && s.Enabled(ft)
	}
	for _, id := range ds.CollectionIDs() {
		if ft, ok := ds.FeatureType(id); ok && s.Enabled(ft) {
			return true
		}
	}
	return false
}

// MediaTypesCompatible reports whether two media types match, honouring
// "*" wildcards for type and subtype. Parameters are ignored. An empty
// media type matches everything.
func MediaTypesCompatible(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	at, as := splitMediaType(a)
	bt, bs := splitMediaType(b)
	return (at == "*" || bt == "*" || at == bt) && (as == "*" || bs == "*" || as == bs)
}

func splitMediaType(v string) (string, string) {
	if parsed, _, err := mime.ParseMediaType(v); err == nil {
		v = parsed
	}
	t, sub, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "/")
	if !ok {
		return t, "*"
	}
	return t, sub
}
