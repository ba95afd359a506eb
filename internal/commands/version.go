// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/ogcprofile/internal/prompts"
	"github.com/dacolabs/ogcprofile/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			info := version.Get()
			if short {
				_, err := out.Write([]byte(info.Version + "\n"))
				return err
			}
			prompts.PrintResult(out, []prompts.ResultField{
				{Label: "Version", Value: info.Version},
				{Label: "Commit", Value: info.Commit},
				{Label: "Built", Value: info.Date},
				{Label: "Go", Value: info.GoVersion},
			}, "")
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return cmd
}
