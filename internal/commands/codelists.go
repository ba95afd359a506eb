// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/prompts"
	"github.com/dacolabs/ogcprofile/internal/session"
)

// ErrUnknownCodelist is returned when a codelist id is not in the project.
var ErrUnknownCodelist = errors.New("unknown codelist")

func newCodelistsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the project codelists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runCodelistsList(cmd.OutOrStdout(), ctx)
		},
	}
}

func runCodelistsList(out io.Writer, ctx *session.Context) error {
	ids := ctx.Codelists.IDs()
	if len(ids) == 0 {
		_, _ = fmt.Fprintln(out, "No codelists found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tLABEL\tENTRIES")
	for _, id := range ids {
		cl, _ := ctx.Codelists.Lookup(id)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", id, cl.Label, len(cl.Entries))
	}
	return w.Flush()
}

func newCodelistsDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [id]",
		Short: "Show the entries of a codelist",
		Args:  cobra.MaximumNArgs(1),
		Example: `  ogcprofile codelists describe status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			var id string
			if len(args) > 0 {
				id = args[0]
			} else if err := prompts.Select("Codelist", &id, ctx.Codelists.IDs()); err != nil {
				return err
			}
			return runCodelistsDescribe(cmd.OutOrStdout(), ctx, id)
		},
	}
}

func runCodelistsDescribe(out io.Writer, ctx *session.Context, id string) error {
	cl, ok := ctx.Codelists.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodelist, id)
	}

	if cl.Label != "" {
		_, _ = fmt.Fprintf(out, "%s (%s)\n\n", cl.Label, id)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tTITLE")
	for _, e := range cl.Entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", e.Code, e.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "\n%s entries\n", strconv.Itoa(len(cl.Entries)))
	return nil
}
