// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/session"
)

func newTransformationsCmd() *cobra.Command {
	opts := &resourceOptions{}

	cmd := &cobra.Command{
		Use:   "transformations",
		Short: "Show the property transformations of a request",
		Long: `List the property transformation rules the effective feature profiles
contribute for a collection and output format.`,
		Example: `  # Rules for HTML
  ogcprofile transformations --dataset daraa --collection roads --format html

  # Rules when references are requested as URIs
  ogcprofile transformations -d daraa -c roads -f geojson -p rel-as-uri`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runTransformations(cmd.OutOrStdout(), ctx, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runTransformations(out io.Writer, ctx *session.Context, opts *resourceOptions) error {
	req, err := opts.request(ctx, true)
	if err != nil {
		return err
	}
	rules, effective, err := ctx.Engine.Transformations(req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Profiles: %s\n\n", strings.Join(profile.IDs(effective), ", "))
	if rules.Len() == 0 {
		_, _ = fmt.Fprintln(out, "No transformations.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PATH\tOPERATIONS")
	for _, path := range rules.Paths() {
		ops := rules.Get(path)
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = op.String()
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", path, strings.Join(names, " | "))
	}
	return w.Flush()
}
