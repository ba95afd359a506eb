// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"log/slog"

	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/profile"
)

// MapCodelists hands every node with a codelist id to the profile's
// ProcessSchema, after rewriting its children.
type MapCodelists struct {
	Profile profile.SchemaProcessor
	// URIs is optional; without it no codelist URI is passed on.
	URIs   *CodelistURIs
	Logger *slog.Logger
}

// Visit implements jschema.Visitor.
func (m *MapCodelists) Visit(n jschema.Node) (jschema.Node, error) {
	out, err := jschema.VisitChildren(m, n)
	if err != nil {
		return nil, err
	}
	id := out.Attrs().CodelistID
	if id == "" {
		return out, nil
	}
	return m.Profile.ProcessSchema(out, id, m.uri(id))
}

func (m *MapCodelists) uri(id string) string {
	if m.URIs == nil {
		return ""
	}
	uri, err := m.URIs.URI(id)
	if err != nil {
		m.logger().Debug("codelist uri not available", "codelist", id, "error", err)
		return ""
	}
	return uri
}

func (m *MapCodelists) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
