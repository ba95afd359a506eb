// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/engine"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/session"
)

type profilesListOptions struct {
	dataset    string
	collection string
}

func newProfilesListCmd() *cobra.Command {
	opts := &profilesListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profile sets and their profiles",
		Long: `List the registered profile sets. With --dataset, only the sets enabled for
the dataset (or one of its collections with --collection) are shown.`,
		Example: `  # List all profile sets
  ogcprofile profiles list

  # List the sets enabled for a collection
  ogcprofile profiles list --dataset daraa --collection roads`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runProfilesList(cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataset, "dataset", "d", "", "Only show sets enabled for this dataset")
	cmd.Flags().StringVarP(&opts.collection, "collection", "c", "", "Only show sets enabled for this collection")

	return cmd
}

func runProfilesList(out io.Writer, ctx *session.Context, opts *profilesListOptions) error {
	registry := ctx.Engine.Registry()
	sets := registry.Sets()

	if opts.dataset != "" {
		ds, ok := ctx.Config.Dataset(opts.dataset)
		if !ok {
			return fmt.Errorf("%w: %q", engine.ErrUnknownDataset, opts.dataset)
		}
		if opts.collection != "" {
			if _, ok := ds.Collection(opts.collection); !ok {
				return fmt.Errorf("%w: %q", engine.ErrUnknownCollection, opts.collection)
			}
		}
		sets = append(registry.ProfilesFor(profile.Feature, ds, opts.collection),
			registry.ProfilesFor(profile.Schema, ds, opts.collection)...)
	}

	if len(sets) == 0 {
		_, _ = fmt.Fprintln(out, "No profile sets enabled.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SET\tKIND\tMEDIA TYPE\tPROFILES")
	for _, s := range sets {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Kind, s.MediaType, strings.Join(profile.IDs(s.Profiles), ", "))
	}
	return w.Flush()
}

func newProfilesResolveCmd() *cobra.Command {
	opts := &resourceOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the effective profiles of a request",
		Long: `Resolve the effective profile of every enabled profile set for a dataset,
collection and format, and list the alternates a client could request instead.`,
		Example: `  # Defaults for HTML
  ogcprofile profiles resolve --dataset daraa --collection roads --format html

  # With requested profiles
  ogcprofile profiles resolve -d daraa -c roads -f geojson -p rel-as-uri,codelists-inline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			req, err := opts.request(ctx, false)
			if err != nil {
				return err
			}
			return runProfilesResolve(cmd.OutOrStdout(), ctx, req)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runProfilesResolve(out io.Writer, ctx *session.Context, req engine.Request) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tSET\tEFFECTIVE\tALTERNATES\tURI")

	for _, kind := range []profile.ResourceKind{profile.Feature, profile.Schema} {
		alts, err := ctx.Engine.Alternates(req, kind)
		if err != nil {
			return err
		}
		for _, a := range alts {
			others := "-"
			if len(a.Others) > 0 {
				others = strings.Join(profile.IDs(a.Others), ", ")
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				kind, a.Set.ID, a.Effective.ID(), others, profile.URI(ctx.Config.BaseURI, a.Effective))
		}
	}
	return w.Flush()
}
