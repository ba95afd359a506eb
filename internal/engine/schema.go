// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dacolabs/ogcprofile/internal/config"
	"github.com/dacolabs/ogcprofile/internal/featuretype"
	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/rewrite"
)

// Schema returns the schema document of a collection as encoded in
// req.Format, together with the effective feature and schema profiles.
// Documents are cached per feature type and profile combination.
func (e *Engine) Schema(req Request) (jschema.Node, []profile.Profile, error) {
	ds, ft, err := e.featureType(req)
	if err != nil {
		return nil, nil, err
	}
	f, err := e.format(req.Format)
	if err != nil {
		return nil, nil, err
	}

	featureProfiles, err := e.resolver.Negotiate(req.Profiles, profile.Feature, ds, req.Collection, f)
	if err != nil {
		return nil, nil, err
	}
	schemaProfiles, err := e.resolver.Negotiate(req.Profiles, profile.Schema, ds, req.Collection, e.schemaFormat)
	if err != nil {
		return nil, nil, err
	}
	effective := append(slices.Clone(featureProfiles), schemaProfiles...)

	key := cacheKey(ds.ID, req.Collection, f.ID, ft.Fingerprint(), effective)
	if cached, ok := e.cache.Get(key); ok {
		if doc, ok := cached.(jschema.Node); ok {
			return doc, effective, nil
		}
	}

	doc, err := e.derive(ds, req.Collection, f, ft, effective)
	if err != nil {
		return nil, nil, err
	}
	e.cache.Add(key, doc)
	return doc, effective, nil
}

func (e *Engine) derive(ds *config.Dataset, collectionID string, f profile.Format, ft *featuretype.Schema, effective []profile.Profile) (jschema.Node, error) {
	opts := featuretype.DeriveOptions{
		ID:        ds.APIURI(e.cfg.BaseURI) + "/collections/" + collectionID + "/schema",
		MediaType: f.MediaType,
	}
	for _, p := range effective {
		if d, ok := p.(profile.DerivationOption); ok {
			d.ConfigureDerivation(&opts)
		}
	}

	var doc jschema.Node = featuretype.Derive(ft, opts)
	uris := &rewrite.CodelistURIs{Base: e.cfg.BaseURI, SubPath: ds.SubPath}
	for _, p := range effective {
		sp, ok := p.(profile.SchemaProcessor)
		if !ok {
			continue
		}
		var err error
		doc, err = jschema.Rewrite(&rewrite.MapCodelists{Profile: sp, URIs: uris, Logger: e.logger}, doc)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.ID(), err)
		}
	}
	for _, p := range effective {
		dr, ok := p.(profile.DocumentRewriter)
		if !ok {
			continue
		}
		var err error
		doc, err = dr.RewriteDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.ID(), err)
		}
	}
	return doc, nil
}

func (e *Engine) featureType(req Request) (*config.Dataset, *featuretype.Schema, error) {
	ds, err := e.dataset(req)
	if err != nil {
		return nil, nil, err
	}
	if req.Collection == "" {
		return nil, nil, fmt.Errorf("%w: a collection is required", ErrUnknownCollection)
	}
	ft, ok := ds.FeatureType(req.Collection)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no feature type loaded for %q", ErrUnknownCollection, req.Collection)
	}
	return ds, ft, nil
}

func cacheKey(datasetID, collectionID, formatID string, fingerprint uint64, effective []profile.Profile) string {
	ids := profile.IDs(effective)
	slices.Sort(ids)
	return fmt.Sprintf("%s/%s/%s/%016x/%s", datasetID, collectionID, formatID, fingerprint, strings.Join(ids, "#"))
}
