// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/dacolabs/ogcprofile/internal/codelist"
	"github.com/dacolabs/ogcprofile/internal/config"
	"github.com/dacolabs/ogcprofile/internal/engine"
)

var (
	// ErrNotInitialized indicates no ogcprofile.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in an ogcprofile project (ogcprofile.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFeatureTypeNotFound indicates a feature type referenced by config couldn't be loaded.
	ErrFeatureTypeNotFound = errors.New("feature type not loaded")

	// ErrInvalidCodelists indicates the codelist directory couldn't be read.
	ErrInvalidCodelists = errors.New("invalid codelists")
)

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "ogcprofile.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the loaded project and the engine built from it.
type Context struct {
	// Dir is the project directory.
	Dir       string
	Config    *config.Config
	Codelists *codelist.Store
	Engine    *engine.Engine
}

// Load loads the project from the current working directory and returns a
// new context.Context with the session Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	fsys := os.DirFS(cwd)
	for _, ds := range cfg.Datasets {
		if err := ds.LoadFeatureTypes(fsys); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFeatureTypeNotFound, err)
		}
	}

	lists, err := loadCodelists(fsys, cfg.Codelists)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCodelists, err)
	}

	eng, err := engine.New(cfg, lists, engine.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	sessionCtx := &Context{
		Dir:       cwd,
		Config:    cfg,
		Codelists: lists,
		Engine:    eng,
	}
	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

func loadCodelists(fsys fs.FS, dir string) (*codelist.Store, error) {
	if dir == "" {
		return codelist.NewStore(), nil
	}
	return codelist.Load(fsys, path.Clean(filepath.ToSlash(dir)))
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
