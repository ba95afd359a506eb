// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/engine"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/prompts"
	"github.com/dacolabs/ogcprofile/internal/session"
)

// resourceOptions select the resource and representation of a request.
// Missing values are prompted for.
type resourceOptions struct {
	dataset    string
	collection string
	format     string
	profiles   string
}

func (o *resourceOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.dataset, "dataset", "d", "", "Dataset id")
	cmd.Flags().StringVarP(&o.collection, "collection", "c", "", "Collection id")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format id")
	cmd.Flags().StringVarP(&o.profiles, "profile", "p", "", "Requested profiles, comma-separated")
}

// request builds the engine request. The collection is only prompted for
// when needCollection is set.
func (o *resourceOptions) request(ctx *session.Context, needCollection bool) (engine.Request, error) {
	if o.dataset == "" {
		if err := prompts.Select("Dataset", &o.dataset, ctx.Config.DatasetIDs()); err != nil {
			return engine.Request{}, err
		}
	}
	ds, ok := ctx.Config.Dataset(o.dataset)
	if !ok {
		return engine.Request{}, fmt.Errorf("%w: %q", engine.ErrUnknownDataset, o.dataset)
	}
	if o.collection == "" && needCollection {
		if err := prompts.Select("Collection", &o.collection, ds.CollectionIDs()); err != nil {
			return engine.Request{}, err
		}
	}
	if o.format == "" {
		if err := prompts.Select("Format", &o.format, ctx.Config.FormatIDs()); err != nil {
			return engine.Request{}, err
		}
	}

	requested, err := profile.ParseRequested(o.profiles, knownProfiles(ctx.Engine.Registry()))
	if err != nil {
		return engine.Request{}, err
	}
	return engine.Request{
		Dataset:    o.dataset,
		Collection: o.collection,
		Format:     o.format,
		Profiles:   requested,
	}, nil
}

func knownProfiles(r *profile.Registry) []string {
	var ids []string
	for _, s := range r.Sets() {
		ids = append(ids, profile.IDs(s.Profiles)...)
	}
	return ids
}
