// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Select prompts the user to pick one of ids. A single candidate is picked
// without asking.
func Select(title string, value *string, ids []string) error {
	switch len(ids) {
	case 0:
		return fmt.Errorf("%s: nothing to select", title)
	case 1:
		*value = ids[0]
		return nil
	}

	options := make([]huh.Option[string], 0, len(ids))
	for _, id := range ids {
		options = append(options, huh.NewOption(id, id))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}
