// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownProfile is returned for requested profile ids nobody knows.
var ErrUnknownProfile = errors.New("unknown profile")

// ParseRequested splits a comma-separated profile parameter and checks every
// id against known.
func ParseRequested(value string, known []string) ([]string, error) {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if !slices.Contains(known, id) {
			return nil, fmt.Errorf("%w: unknown value for parameter 'profile': '%s'. Known values are: [ %s ]",
				ErrUnknownProfile, id, strings.Join(known, ", "))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
