// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package engine

import (
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/transform"
)

// Transformations returns the property rules of the effective feature
// profiles for req, with {{apiUri}} bound to the dataset URI.
func (e *Engine) Transformations(req Request) (transform.Rules, []profile.Profile, error) {
	ds, ft, err := e.featureType(req)
	if err != nil {
		return transform.Rules{}, nil, err
	}
	f, err := e.format(req.Format)
	if err != nil {
		return transform.Rules{}, nil, err
	}
	effective, err := e.resolver.Negotiate(req.Profiles, profile.Feature, ds, req.Collection, f)
	if err != nil {
		return transform.Rules{}, nil, err
	}

	b := transform.NewBuilder()
	for _, p := range effective {
		p.AddTransformations(ft, f.MediaType, b)
	}
	rules := b.Build().WithSubstitutions(map[string]string{
		"apiUri": ds.APIURI(e.cfg.BaseURI),
	})
	return rules, effective, nil
}

// Encode applies the transformations of req to the properties of each
// feature. The input is not modified.
func (e *Engine) Encode(req Request, features []map[string]any) ([]map[string]any, error) {
	rules, _, err := e.Transformations(req)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, len(features))
	for i, props := range features {
		out[i] = transform.Apply(rules, props, e.lists)
	}
	return out, nil
}
