// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/dacolabs/ogcprofile/internal/session"
)

type schemaOptions struct {
	resourceOptions
	output string // output format: text, json, yaml
}

func newSchemaCmd() *cobra.Command {
	opts := &schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the schema of a collection",
		Long: `Derive the schema of a collection from its feature type and rewrite it with
the effective feature and schema profiles.`,
		Example: `  # Human-readable summary
  ogcprofile schema --dataset daraa --collection roads --format geojson

  # JSON Schema with inlined codelists
  ogcprofile schema -d daraa -c roads -f geojson -p codelists-inline -o json

  # Schema for validating received features
  ogcprofile schema -d daraa -c roads -f geojson -p validation-receivables -o yaml`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSchema(cmd.OutOrStdout(), ctx, opts)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runSchema(out io.Writer, ctx *session.Context, opts *schemaOptions) error {
	req, err := opts.request(ctx, true)
	if err != nil {
		return err
	}
	doc, effective, err := ctx.Engine.Schema(req)
	if err != nil {
		return err
	}

	switch opts.output {
	case "json":
		data, err := jschema.MarshalJSON(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case "yaml":
		data, err := jschema.MarshalJSON(doc)
		if err != nil {
			return err
		}
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return err
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(&node)

	case "text", "":
		_, _ = fmt.Fprintf(out, "Profiles: %s\n\n", strings.Join(profile.IDs(effective), ", "))
		printSchemaText(out, doc, "")
		return nil

	default:
		return fmt.Errorf("unsupported output format %q", opts.output)
	}
}

// blockStyle clears the flow styles yaml.v3 keeps from JSON input.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func printSchemaText(out io.Writer, n jschema.Node, indent string) {
	a := n.Attrs()
	if a.Title != "" {
		_, _ = fmt.Fprintf(out, "%sTitle: %s\n", indent, a.Title)
	}
	if a.Description != "" {
		_, _ = fmt.Fprintf(out, "%sDescription: %s\n", indent, a.Description)
	}

	switch t := n.(type) {
	case *jschema.Document:
		if t.ID != "" {
			_, _ = fmt.Fprintf(out, "%sID: %s\n", indent, t.ID)
		}
		printProperties(out, t.Properties, t.Required, indent)
	case *jschema.Object:
		printProperties(out, t.Properties, t.Required, indent)
	case *jschema.Array:
		if t.Items != nil {
			_, _ = fmt.Fprintf(out, "%sItems: %s\n", indent, describe(t.Items))
		}
	case *jschema.OneOf:
		_, _ = fmt.Fprintf(out, "%sOne of:\n", indent)
		for _, alt := range t.Alternatives {
			_, _ = fmt.Fprintf(out, "%s  - %s\n", indent, describe(alt))
		}
	default:
		_, _ = fmt.Fprintf(out, "%sType: %s\n", indent, describe(n))
	}
}

func printProperties(out io.Writer, props []jschema.Property, required []string, indent string) {
	if len(props) == 0 {
		return
	}
	requiredSet := make(map[string]bool, len(required))
	for _, r := range required {
		requiredSet[r] = true
	}

	_, _ = fmt.Fprintf(out, "%sProperties:\n", indent)
	for _, p := range props {
		suffix := ""
		if requiredSet[p.Name] {
			suffix = " (required)"
		}
		_, _ = fmt.Fprintf(out, "%s  - %s (%s)%s\n", indent, p.Name, describe(p.Schema), suffix)
		switch p.Schema.(type) {
		case *jschema.Object, *jschema.OneOf:
			printSchemaText(out, p.Schema, indent+"    ")
		}
	}
}

// describe returns a one-line summary of a node.
func describe(n jschema.Node) string {
	if n == nil {
		return "any"
	}
	var parts []string
	switch t := n.(type) {
	case *jschema.String:
		parts = append(parts, "string")
		if t.Format != "" {
			parts = append(parts, "format: "+t.Format)
		}
		if len(t.Enum) > 0 {
			parts = append(parts, "enum: ["+strings.Join(t.Enum, ", ")+"]")
		}
	case *jschema.Constant:
		parts = append(parts, fmt.Sprintf("%v", t.Value))
	case *jschema.Geometry:
		parts = append(parts, "geometry: "+t.Type)
	case *jschema.Ref:
		parts = append(parts, "ref: "+t.Ref)
	case *jschema.Array:
		parts = append(parts, "array of "+describe(t.Items))
	default:
		parts = append(parts, n.Kind().String())
	}

	a := n.Attrs()
	if a.Role != "" {
		parts = append(parts, "role: "+a.Role)
	}
	if a.CodelistID != "" {
		parts = append(parts, "codelist: "+a.CodelistID)
	}
	if a.CodelistURI != "" {
		parts = append(parts, a.CodelistURI)
	}
	if n.Kind() == jschema.KindConstant && a.Title != "" {
		parts = append(parts, a.Title)
	}
	return strings.Join(parts, ", ")
}
