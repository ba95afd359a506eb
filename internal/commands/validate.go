// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	validationprofile "github.com/dacolabs/ogcprofile/internal/profile/validation"
	"github.com/dacolabs/ogcprofile/internal/prompts"
	"github.com/dacolabs/ogcprofile/internal/session"
	"github.com/dacolabs/ogcprofile/internal/validation"
)

// ErrInvalidFeatures is returned when at least one feature fails validation.
var ErrInvalidFeatures = errors.New("features failed validation")

type validateOptions struct {
	resourceOptions
	input string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate features against the validation schema of a collection",
		Long: `Validate feature properties (one JSON object or an array of objects) against
the JSON Schema published for validation. validation-returnables is used
unless validation-receivables is requested.`,
		Example: `  # Validate features returned by the service
  ogcprofile validate -d daraa -c roads -f geojson --input roads.json

  # Validate features sent to the service
  ogcprofile validate -d daraa -c roads -f geojson -p validation-receivables --input new-road.json`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), cmd.InOrStdin(), ctx, opts)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "JSON input file, '-' for stdin")

	return cmd
}

func runValidate(out io.Writer, in io.Reader, ctx *session.Context, opts *validateOptions) error {
	req, err := opts.request(ctx, true)
	if err != nil {
		return err
	}
	if !requestsValidation(req.Profiles) {
		req.Profiles = append(req.Profiles, validationprofile.ReturnablesID)
	}

	doc, _, err := ctx.Engine.Schema(req)
	if err != nil {
		return err
	}
	schema, err := validation.Compile(doc)
	if err != nil {
		return err
	}
	features, _, err := readPayload(opts.input, in)
	if err != nil {
		return err
	}

	failed := 0
	for i, f := range features {
		err := schema.Validate(f)
		if err == nil {
			continue
		}
		var verr *validation.Error
		if !errors.As(err, &verr) {
			return err
		}
		failed++
		for _, fe := range verr.Fields {
			_, _ = fmt.Fprintf(out, "feature %d: %s\n", i, fe)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidFeatures, failed, len(features))
	}

	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Schema", Value: schema.URL()},
		{Label: "Features", Value: strconv.Itoa(len(features))},
	}, "All features are valid")
	return nil
}

func requestsValidation(ids []string) bool {
	for _, id := range ids {
		if id == validationprofile.ReturnablesID || id == validationprofile.ReceivablesID {
			return true
		}
	}
	return false
}
