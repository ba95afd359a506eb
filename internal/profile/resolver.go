// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package profile

import (
	"fmt"
)

// DefaultsSource provides configured default profiles, keyed by set id.
type DefaultsSource interface {
	// FormatDefaults returns the defaults configured for one output format.
	FormatDefaults(datasetID, collectionID, formatID string) map[string]string
	// ResourceDefaults returns the defaults configured for the resource.
	ResourceDefaults(datasetID, collectionID string) map[string]string
}

// Resolver picks the effective profile of each set for a request.
type Resolver struct {
	registry *Registry
	defaults DefaultsSource
}

// NewResolver returns a resolver over registry. defaults may be nil.
func NewResolver(registry *Registry, defaults DefaultsSource) *Resolver {
	return &Resolver{registry: registry, defaults: defaults}
}

// Resolve returns the effective profile of set. The first requested member
// supported by f wins; otherwise the format default, the resource default,
// and the member flagged for human-readable, complex or any format are
// tried, in that order.
func (r *Resolver) Resolve(requested []string, set *Set, ds Dataset, collectionID string, f Format) (Profile, error) {
	for _, id := range requested {
		if p, ok := set.Member(id); ok && set.supports(p, f) {
			return p, nil
		}
	}

	if id := r.configuredID(set, ds, collectionID, f); id != "" {
		return r.configured(set, id, f)
	}

	if f.HumanReadable {
		if p, ok := r.flagged(set, f, Profile.IsDefaultForHumanReadable); ok {
			return p, nil
		}
	}
	if f.Complex {
		if p, ok := r.flagged(set, f, Profile.IsDefaultForComplex); ok {
			return p, nil
		}
	}
	if p, ok := r.flagged(set, f, Profile.IsDefault); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: set %q, format %q", ErrNoDefaultProfile, set.ID, f.ID)
}

// configuredID returns the format default of set, or the resource default
// when the format has none.
func (r *Resolver) configuredID(set *Set, ds Dataset, collectionID string, f Format) string {
	if r.defaults == nil {
		return ""
	}
	if id := r.defaults.FormatDefaults(ds.DatasetID(), collectionID, f.ID)[set.ID]; id != "" {
		return id
	}
	return r.defaults.ResourceDefaults(ds.DatasetID(), collectionID)[set.ID]
}

func (r *Resolver) configured(set *Set, id string, f Format) (Profile, error) {
	p, ok := set.Member(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a member of set %q", ErrUnknownDefault, id, set.ID)
	}
	if !set.supports(p, f) {
		return nil, fmt.Errorf("%w: %q is not supported for format %q", ErrUnsupportedDefault, id, f.ID)
	}
	return p, nil
}

func (r *Resolver) flagged(set *Set, f Format, pred func(Profile) bool) (Profile, bool) {
	for _, p := range set.SupportedProfiles(f) {
		if pred(p) {
			return p, true
		}
	}
	return nil, false
}

// Negotiate resolves every set of kind that is enabled for the resource and
// applies to the format's media type.
func (r *Resolver) Negotiate(requested []string, kind ResourceKind, ds Dataset, collectionID string, f Format) ([]Profile, error) {
	var out []Profile
	for _, s := range r.registry.ProfilesFor(kind, ds, collectionID) {
		if !s.AppliesTo(f.MediaType) || (s.RequestOnly && !s.requested(requested)) {
			continue
		}
		p, err := r.Resolve(requested, s, ds, collectionID, f)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Alternate lists the profiles of a set that were not selected.
type Alternate struct {
	Set       *Set
	Effective Profile
	Others    []Profile
}

// Alternates returns, per negotiated set, the effective profile and the
// other profiles available for the format.
func (r *Resolver) Alternates(requested []string, kind ResourceKind, ds Dataset, collectionID string, f Format) ([]Alternate, error) {
	var out []Alternate
	for _, s := range r.registry.ProfilesFor(kind, ds, collectionID) {
		if !s.AppliesTo(f.MediaType) || (s.RequestOnly && !s.requested(requested)) {
			continue
		}
		p, err := r.Resolve(requested, s, ds, collectionID, f)
		if err != nil {
			return nil, err
		}
		a := Alternate{Set: s, Effective: p}
		for _, o := range s.SupportedProfiles(f) {
			if o.ID() != p.ID() {
				a.Others = append(a.Others, o)
			}
		}
		out = append(out, a)
	}
	return out, nil
}

// Validate checks the configured defaults of every dataset, collection and
// format. Each default must name a member of a known set, and the member the
// default chain picks must be supported by the format. Feature sets are
// checked against featureFormats, schema sets against schemaFormats.
func (r *Resolver) Validate(datasets []Dataset, featureFormats, schemaFormats []Format) error {
	if r.defaults == nil {
		return nil
	}
	formats := map[ResourceKind][]Format{Feature: featureFormats, Schema: schemaFormats}

	for _, ds := range datasets {
		collections := append([]string{""}, ds.CollectionIDs()...)
		for _, c := range collections {
			where := ds.DatasetID()
			if c != "" {
				where += "/" + c
			}
			if err := r.checkMembers(where, r.defaults.ResourceDefaults(ds.DatasetID(), c)); err != nil {
				return err
			}
			for _, kind := range []ResourceKind{Feature, Schema} {
				for _, f := range formats[kind] {
					at := where + " (" + f.ID + ")"
					if err := r.checkMembers(at, r.defaults.FormatDefaults(ds.DatasetID(), c, f.ID)); err != nil {
						return err
					}
					if err := r.checkSupported(at, kind, ds, c, f); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (r *Resolver) checkMembers(where string, defaults map[string]string) error {
	for setID, id := range defaults {
		if id == "" {
			continue
		}
		s, ok := r.registry.Set(setID)
		if !ok {
			return fmt.Errorf("%w: %s: unknown profile set %q", ErrUnknownDefault, where, setID)
		}
		if _, ok := s.Member(id); !ok {
			return fmt.Errorf("%w: %s: %q is not a member of set %q", ErrUnknownDefault, where, id, setID)
		}
	}
	return nil
}

// checkSupported resolves the configured default of every set negotiated for
// f the way Resolve does.
func (r *Resolver) checkSupported(where string, kind ResourceKind, ds Dataset, collectionID string, f Format) error {
	for _, s := range r.registry.ProfilesFor(kind, ds, collectionID) {
		if !s.AppliesTo(f.MediaType) || s.RequestOnly {
			continue
		}
		id := r.configuredID(s, ds, collectionID, f)
		if id == "" {
			continue
		}
		if _, err := r.configured(s, id, f); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
	}
	return nil
}
