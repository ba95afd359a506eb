// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package profile

import (
	"errors"
	"fmt"

	"github.com/dacolabs/ogcprofile/internal/featuretype"
)

// Configuration errors.
var (
	ErrConfig           = errors.New("profile configuration error")
	ErrAmbiguousDefault = fmt.Errorf("%w: ambiguous default profile", ErrConfig)
	ErrNoDefaultProfile = fmt.Errorf("%w: no default profile", ErrConfig)
	ErrUnknownDefault   = fmt.Errorf("%w: unknown default profile", ErrConfig)
	// ErrUnsupportedDefault is returned when a configured default cannot be
	// produced for a format it applies to.
	ErrUnsupportedDefault = fmt.Errorf("%w: unsupported default profile", ErrConfig)
	ErrDuplicate        = fmt.Errorf("%w: duplicate identifier", ErrConfig)
)

// Dataset gives access to the feature types of a dataset.
type Dataset interface {
	DatasetID() string
	CollectionIDs() []string
	FeatureType(collectionID string) (*featuretype.Schema, bool)
}

// Registry holds all profile sets known to the service.
type Registry struct {
	sets     []*Set
	profiles map[string]Profile
}

// NewRegistry validates sets and returns a registry holding them.
func NewRegistry(sets ...*Set) (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile)}
	seen := make(map[string]bool)
	for _, s := range sets {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: profile set %q", ErrDuplicate, s.ID)
		}
		seen[s.ID] = true

		for _, p := range s.Profiles {
			if p.SetID() != s.ID {
				return nil, fmt.Errorf("%w: profile %q declares set %q but is a member of %q", ErrConfig, p.ID(), p.SetID(), s.ID)
			}
			if _, dup := r.profiles[p.ID()]; dup {
				return nil, fmt.Errorf("%w: profile %q", ErrDuplicate, p.ID())
			}
			r.profiles[p.ID()] = p
		}
		if err := checkDefaults(s); err != nil {
			return nil, err
		}
		r.sets = append(r.sets, s)
	}
	return r, nil
}

func checkDefaults(s *Set) error {
	predicates := []struct {
		name string
		pred func(Profile) bool
	}{
		{"default", Profile.IsDefault},
		{"default for complex formats", Profile.IsDefaultForComplex},
		{"default for human-readable formats", Profile.IsDefaultForHumanReadable},
	}
	for _, c := range predicates {
		var ids []string
		for _, p := range s.Profiles {
			if c.pred(p) {
				ids = append(ids, p.ID())
			}
		}
		if len(ids) > 1 {
			return fmt.Errorf("%w: set %q has %d profiles marked %s: %v", ErrAmbiguousDefault, s.ID, len(ids), c.name, ids)
		}
		if c.name == "default" && len(ids) == 0 {
			return fmt.Errorf("%w: set %q has no profile marked default", ErrNoDefaultProfile, s.ID)
		}
	}
	return nil
}

// Sets returns all profile sets in registration order.
func (r *Registry) Sets() []*Set {
	return append([]*Set(nil), r.sets...)
}

// Set returns the profile set with the given id.
func (r *Registry) Set(id string) (*Set, bool) {
	for _, s := range r.sets {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Profile returns the profile with the given id.
func (r *Registry) Profile(id string) (Profile, bool) {
	p, ok := r.profiles[id]
	return p, ok
}

// ProfilesFor returns the sets of kind that are enabled for ds, restricted to
// one collection when collectionID is not empty.
func (r *Registry) ProfilesFor(kind ResourceKind, ds Dataset, collectionID string) []*Set {
	var out []*Set
	for _, s := range r.sets {
		if s.Kind == kind && s.EnabledFor(ds, collectionID) {
			out = append(out, s)
		}
	}
	return out
}

// ProfileIDs returns the profile ids that may be requested for kind.
func (r *Registry) ProfileIDs(kind ResourceKind, ds Dataset, collectionID string) []string {
	var ids []string
	for _, s := range r.ProfilesFor(kind, ds, collectionID) {
		ids = append(ids, IDs(s.Profiles)...)
	}
	return ids
}
