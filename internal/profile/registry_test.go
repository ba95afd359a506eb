// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(valLikeSet(), relLikeSet(), schemaSet())
	require.NoError(t, err)

	assert.Len(t, reg.Sets(), 3)
	s, ok := reg.Set("rel")
	require.True(t, ok)
	assert.Equal(t, "rel", s.ID)

	p, ok := reg.Profile("codelists-inline")
	require.True(t, ok)
	assert.Equal(t, "codelist", p.SetID())

	_, ok = reg.Profile("nope")
	assert.False(t, ok)
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sets    []*Set
		wantErr error
	}{
		{
			name:    "duplicate set",
			sets:    []*Set{valLikeSet(), valLikeSet()},
			wantErr: ErrDuplicate,
		},
		{
			name: "duplicate profile",
			sets: []*Set{valLikeSet(), {ID: "other", Profiles: []Profile{
				testProfile{id: "val-as-code", set: "other", def: true},
			}}},
			wantErr: ErrDuplicate,
		},
		{
			name: "wrong set id",
			sets: []*Set{{ID: "a", Profiles: []Profile{
				testProfile{id: "x", set: "b", def: true},
			}}},
			wantErr: ErrConfig,
		},
		{
			name: "two defaults",
			sets: []*Set{{ID: "a", Profiles: []Profile{
				testProfile{id: "x", set: "a", def: true},
				testProfile{id: "y", set: "a", def: true},
			}}},
			wantErr: ErrAmbiguousDefault,
		},
		{
			name: "two human-readable defaults",
			sets: []*Set{{ID: "a", Profiles: []Profile{
				testProfile{id: "x", set: "a", def: true, humans: true},
				testProfile{id: "y", set: "a", humans: true},
			}}},
			wantErr: ErrAmbiguousDefault,
		},
		{
			name: "no default",
			sets: []*Set{{ID: "a", Profiles: []Profile{
				testProfile{id: "x", set: "a"},
			}}},
			wantErr: ErrNoDefaultProfile,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.sets...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestRegistry_ProfilesFor(t *testing.T) {
	reg, err := NewRegistry(valLikeSet(), relLikeSet(), schemaSet())
	require.NoError(t, err)
	ds := roadsDataset()

	ids := func(sets []*Set) []string {
		var out []string
		for _, s := range sets {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []string{"val", "rel"}, ids(reg.ProfilesFor(Feature, ds, "")))
	assert.Equal(t, []string{"val", "rel"}, ids(reg.ProfilesFor(Feature, ds, "roads")))
	assert.Empty(t, reg.ProfilesFor(Feature, ds, "plain"))
	assert.Equal(t, []string{"codelist"}, ids(reg.ProfilesFor(Schema, ds, "plain")))

	assert.Equal(t,
		[]string{"val-as-code", "val-as-title", "rel-as-key", "rel-as-uri", "rel-as-link"},
		reg.ProfileIDs(Feature, ds, "roads"))
}
