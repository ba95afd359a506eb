// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package engine resolves the effective profiles of a request and applies
// them to feature type schemas and feature properties.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"

	"github.com/dacolabs/ogcprofile/internal/codelist"
	"github.com/dacolabs/ogcprofile/internal/config"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/profile/codelists"
	"github.com/dacolabs/ogcprofile/internal/profile/rel"
	"github.com/dacolabs/ogcprofile/internal/profile/val"
	"github.com/dacolabs/ogcprofile/internal/profile/validation"
	"github.com/dacolabs/ogcprofile/internal/rewrite"
)

// Request errors.
var (
	ErrUnknownDataset    = errors.New("unknown dataset")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownFormat     = errors.New("unknown format")
)

// DefaultCacheSize is the number of schema documents kept in memory.
const DefaultCacheSize = 256

// SchemaFormat is the format schema profiles are negotiated for unless
// the configuration declares a format with the same id.
var SchemaFormat = profile.Format{ID: "jsonschema", MediaType: profile.SchemaMediaType}

// Request identifies the resource and representation a caller asks for.
type Request struct {
	Dataset    string
	Collection string
	Format     string
	// Profiles are the requested profile ids, in request order.
	Profiles []string
}

// Engine answers schema and transformation requests for a configuration.
type Engine struct {
	cfg      *config.Config
	lists    codelist.Lookup
	registry *profile.Registry
	resolver *profile.Resolver
	cache    *lru.Cache
	logger   *slog.Logger

	cacheSize    int
	schemaFormat profile.Format
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine and its profiles.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithCacheSize sets the schema cache size.
func WithCacheSize(size int) Option {
	return func(e *Engine) { e.cacheSize = size }
}

// New builds the profile registry for cfg and checks every configured
// default against it. Feature types must already be loaded.
func New(cfg *config.Config, lists codelist.Lookup, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:          cfg,
		lists:        lists,
		logger:       slog.Default(),
		cacheSize:    DefaultCacheSize,
		schemaFormat: SchemaFormat,
	}
	for _, opt := range opts {
		opt(e)
	}
	if f, ok := cfg.Format(e.schemaFormat.ID); ok {
		e.schemaFormat = toProfileFormat(f)
	}

	registry, err := profile.NewRegistry(
		val.NewSet(),
		rel.NewSet(),
		codelists.NewSet(lists, e.logger),
		validation.NewSet(),
	)
	if err != nil {
		return nil, err
	}
	e.registry = registry
	e.resolver = profile.NewResolver(registry, cfg)

	if err := e.resolver.Validate(e.datasets(), e.formats(), []profile.Format{e.schemaFormat}); err != nil {
		return nil, err
	}
	if err := rewrite.ValidateCodelistBase(cfg.BaseURI); err != nil {
		e.logger.Warn("codelist uris will not be published", "error", err)
	}

	cache, err := lru.New(e.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema cache: %w", err)
	}
	e.cache = cache
	return e, nil
}

// Registry returns the profile registry.
func (e *Engine) Registry() *profile.Registry {
	return e.registry
}

// Codelists returns the codelist lookup.
func (e *Engine) Codelists() codelist.Lookup {
	return e.lists
}

// Alternates returns, per negotiated set of kind, the effective profile and
// the other profiles a client could request instead.
func (e *Engine) Alternates(req Request, kind profile.ResourceKind) ([]profile.Alternate, error) {
	ds, err := e.dataset(req)
	if err != nil {
		return nil, err
	}
	f, err := e.formatFor(kind, req.Format)
	if err != nil {
		return nil, err
	}
	return e.resolver.Alternates(req.Profiles, kind, ds, req.Collection, f)
}

// Profiles returns the effective profiles of kind for req.
func (e *Engine) Profiles(req Request, kind profile.ResourceKind) ([]profile.Profile, error) {
	ds, err := e.dataset(req)
	if err != nil {
		return nil, err
	}
	f, err := e.formatFor(kind, req.Format)
	if err != nil {
		return nil, err
	}
	return e.resolver.Negotiate(req.Profiles, kind, ds, req.Collection, f)
}

func (e *Engine) dataset(req Request) (*config.Dataset, error) {
	ds, ok := e.cfg.Dataset(req.Dataset)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, req.Dataset)
	}
	if req.Collection != "" {
		if _, ok := ds.Collection(req.Collection); !ok {
			return nil, fmt.Errorf("%w: %q in dataset %q", ErrUnknownCollection, req.Collection, req.Dataset)
		}
	}
	return ds, nil
}

func (e *Engine) format(id string) (profile.Format, error) {
	f, ok := e.cfg.Format(id)
	if !ok {
		return profile.Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, id)
	}
	return toProfileFormat(f), nil
}

func (e *Engine) formatFor(kind profile.ResourceKind, id string) (profile.Format, error) {
	if kind == profile.Schema {
		return e.schemaFormat, nil
	}
	return e.format(id)
}

func (e *Engine) datasets() []profile.Dataset {
	out := make([]profile.Dataset, len(e.cfg.Datasets))
	for i, d := range e.cfg.Datasets {
		out[i] = d
	}
	return out
}

func (e *Engine) formats() []profile.Format {
	out := make([]profile.Format, len(e.cfg.Formats))
	for i, f := range e.cfg.Formats {
		out[i] = toProfileFormat(f)
	}
	return out
}

func toProfileFormat(f config.Format) profile.Format {
	return profile.Format{
		ID:            f.ID,
		MediaType:     f.MediaType,
		HumanReadable: f.HumanReadable,
		Complex:       f.Complex,
	}
}
