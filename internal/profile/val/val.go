// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package val provides the profiles that choose between codes and titles
// for codelist-constrained values.
package val

import (
	"github.com/dacolabs/ogcprofile/internal/featuretype"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/transform"
)

// Identifiers.
const (
	SetID     = "val"
	AsCodeID  = "val-as-code"
	AsTitleID = "val-as-title"
)

// AsCode keeps stored codes. It is the default.
type AsCode struct{ profile.Base }

func (AsCode) ID() string      { return AsCodeID }
func (AsCode) SetID() string   { return SetID }
func (AsCode) IsDefault() bool { return true }

// AsTitle replaces codes with codelist titles. It is the default for
// human-readable formats.
type AsTitle struct{ profile.Base }

func (AsTitle) ID() string                      { return AsTitleID }
func (AsTitle) SetID() string                   { return SetID }
func (AsTitle) IsDefaultForHumanReadable() bool { return true }

// AddTransformations maps every codelist-constrained property to its title.
func (AsTitle) AddTransformations(ft *featuretype.Schema, _ string, b *transform.Builder) {
	for _, p := range ft.AllNestedProperties() {
		if id := p.Codelist(); id != "" {
			b.Put(p.FullPath(), transform.Codelist(id))
		}
	}
}

// ConfigureDerivation publishes codelist values as titles.
func (AsTitle) ConfigureDerivation(opts *featuretype.DeriveOptions) {
	opts.CodelistAsTitle = true
}

// NewSet returns the val profile set. It is enabled for feature types that
// use a codelist.
func NewSet() *profile.Set {
	return &profile.Set{
		ID:        SetID,
		Kind:      profile.Feature,
		MediaType: profile.AnyMediaType,
		Enabled:   (*featuretype.Schema).UsesCodelist,
		Profiles:  []profile.Profile{AsCode{}, AsTitle{}},
	}
}
