// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitAnswers are the values collected by RunInitForm.
type InitAnswers struct {
	BaseURI     string
	Dataset     string
	Collection  string
	FeatureType string
	Codelists   string
}

// RunInitForm runs the interactive form for the init command. Fields that
// are already set are offered as defaults.
func RunInitForm(a *InitAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Service base URI").
				Placeholder("https://demo.ldproxy.net").
				Validate(AbsoluteURIValidator).
				Value(&a.BaseURI),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Dataset id").
				Placeholder("daraa").
				Validate(IdentifierValidator).
				Value(&a.Dataset),
			huh.NewInput().
				Title("First collection id").
				Placeholder("roads").
				Validate(IdentifierValidator).
				Value(&a.Collection),
			huh.NewInput().
				Title("Feature type file").
				Placeholder("featuretypes/roads.yaml").
				Validate(requiredValidator("feature type file")).
				Value(&a.FeatureType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Codelists directory").
				Placeholder("codelists").
				Value(&a.Codelists),
		),
	).WithTheme(Theme()).Run()
}
