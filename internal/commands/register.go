// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/logging"
	"github.com/dacolabs/ogcprofile/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI. logLevel is
// the default for the --log-level flag.
func NewRootCmd(logLevel string) *cobra.Command {
	if logLevel == "" {
		logLevel = logging.DefaultLevel
	}

	rootCmd := &cobra.Command{
		Use:   "ogcprofile",
		Short: "Resolve OGC API profiles and apply them to schemas and features",
		Long: `Resolve the effective profiles of a request for a dataset, collection and
output format, and apply them to feature type schemas and feature properties.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newTransformationsCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())
	registerProfilesCmd(rootCmd)
	registerCodelistsCmd(rootCmd)

	return rootCmd
}

func registerProfilesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect profile sets and resolve profiles",
	}

	cmd.AddCommand(withProject(newProfilesListCmd()))
	cmd.AddCommand(withProject(newProfilesResolveCmd()))

	parent.AddCommand(cmd)
}

func registerCodelistsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "codelists",
		Short: "Inspect the project codelists",
	}

	cmd.AddCommand(withProject(newCodelistsListCmd()))
	cmd.AddCommand(withProject(newCodelistsDescribeCmd()))

	parent.AddCommand(cmd)
}

// withProject loads the project before cmd runs.
func withProject(cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = session.PreRunLoad
	return cmd
}
