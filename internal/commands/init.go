// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/config"
	"github.com/dacolabs/ogcprofile/internal/prompts"
	"github.com/dacolabs/ogcprofile/internal/session"
)

type initOptions struct {
	answers        prompts.InitAnswers
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ogcprofile project",
		Long: `Initialize a new project with an ogcprofile.yaml configuration file,
a codelists directory and a stub feature type for the first collection.`,
		Example: `  # Interactive mode
  ogcprofile init

  # Non-interactive
  ogcprofile init --base-uri https://demo.ldproxy.net --dataset daraa \
    --collection roads --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.answers.BaseURI, "base-uri", "", "Service base URI")
	cmd.Flags().StringVarP(&opts.answers.Dataset, "dataset", "d", "", "Dataset id")
	cmd.Flags().StringVarP(&opts.answers.Collection, "collection", "c", "", "First collection id")
	cmd.Flags().StringVar(&opts.answers.FeatureType, "feature-type", "", "Feature type file (default featuretypes/<collection>.yaml)")
	cmd.Flags().StringVar(&opts.answers.Codelists, "codelists", "codelists", "Codelists directory")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --base-uri, --dataset and --collection)")

	return cmd
}

func runInit(out io.Writer, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", session.ConfigFileName)
	}

	a := &opts.answers
	if opts.nonInteractive {
		if a.BaseURI == "" || a.Dataset == "" || a.Collection == "" {
			return errors.New("non-interactive mode requires --base-uri, --dataset and --collection")
		}
	} else if err := prompts.RunInitForm(a); err != nil {
		return err
	}
	if a.FeatureType == "" {
		a.FeatureType = "featuretypes/" + a.Collection + ".yaml"
	}

	cfg := &config.Config{
		Version:   config.CurrentConfigVersion,
		BaseURI:   a.BaseURI,
		Codelists: a.Codelists,
		Formats:   defaultFormats(),
		Datasets: []*config.Dataset{{
			ID:          a.Dataset,
			SubPath:     []string{a.Dataset},
			Collections: []*config.Collection{{ID: a.Collection, FeatureType: a.FeatureType}},
		}},
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.Codelists != "" {
		if err := os.MkdirAll(filepath.Join(cwd, a.Codelists), 0o750); err != nil {
			return fmt.Errorf("failed to create codelists directory: %w", err)
		}
	}
	if err := writeFeatureTypeStub(filepath.Join(cwd, a.FeatureType), a.Collection); err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Dataset", Value: a.Dataset},
		{Label: "Feature type", Value: a.FeatureType},
	}, "Initialization completed")
	return nil
}

func defaultFormats() []config.Format {
	return []config.Format{
		{ID: "html", MediaType: "text/html", HumanReadable: true, Complex: true},
		{ID: "geojson", MediaType: "application/geo+json", Complex: true},
		{ID: "csv", MediaType: "text/csv"},
	}
}

// writeFeatureTypeStub creates a minimal feature type unless one exists.
func writeFeatureTypeStub(path, name string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create feature type directory: %w", err)
	}
	stub := fmt.Sprintf("name: %s\nproperties:\n  id:\n    type: INTEGER\n    role: ID\n", name)
	if err := os.WriteFile(path, []byte(stub), 0o600); err != nil {
		return fmt.Errorf("failed to write feature type: %w", err)
	}
	return nil
}
