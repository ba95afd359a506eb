// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/session"
)

type encodeOptions struct {
	resourceOptions
	input string
}

func newEncodeCmd() *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Apply property transformations to features",
		Long: `Read feature properties as JSON (one object or an array of objects) and
write them back with the transformations of the effective feature profiles applied.`,
		Example: `  # Codelist titles and hyperlinks for HTML
  ogcprofile encode -d daraa -c roads -f html --input roads.json

  # Read from stdin
  cat roads.json | ogcprofile encode -d daraa -c roads -f geojson -p rel-as-uri --input -`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runEncode(cmd.OutOrStdout(), cmd.InOrStdin(), ctx, opts)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "JSON input file, '-' for stdin")

	return cmd
}

func runEncode(out io.Writer, in io.Reader, ctx *session.Context, opts *encodeOptions) error {
	req, err := opts.request(ctx, true)
	if err != nil {
		return err
	}
	features, single, err := readPayload(opts.input, in)
	if err != nil {
		return err
	}
	encoded, err := ctx.Engine.Encode(req, features)
	if err != nil {
		return err
	}
	if single {
		return writeJSON(out, encoded[0])
	}
	return writeJSON(out, encoded)
}
