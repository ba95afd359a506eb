// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codelists provides the schema profiles that either reference a
// codelist by URI or inline its entries.
package codelists

import (
	"log/slog"
	"slices"

	"github.com/dacolabs/ogcprofile/internal/codelist"
	"github.com/dacolabs/ogcprofile/internal/featuretype"
	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/spf13/cast"
)

// Identifiers.
const (
	SetID    = "codelist"
	RefID    = "codelists-ref"
	InlineID = "codelists-inline"
)

// Ref links codelist-constrained values to the codelist resource. It is the default.
type Ref struct{ profile.Base }

func (Ref) ID() string      { return RefID }
func (Ref) SetID() string   { return SetID }
func (Ref) IsDefault() bool { return true }

// ProcessSchema attaches codelistURI to string, integer and inlined nodes.
func (Ref) ProcessSchema(n jschema.Node, _ string, codelistURI string) (jschema.Node, error) {
	if codelistURI == "" {
		return n, nil
	}
	switch n.(type) {
	case *jschema.String, *jschema.Integer, *jschema.OneOf:
		a := n.Attrs()
		a.CodelistURI = codelistURI
		return jschema.WithAttrs(n, a), nil
	}
	return n, nil
}

// Inline replaces codelist-constrained values by a choice of constants.
type Inline struct {
	profile.Base
	lists  codelist.Lookup
	logger *slog.Logger
}

// NewInline returns an Inline profile resolving codelists through lists.
func NewInline(lists codelist.Lookup, logger *slog.Logger) *Inline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inline{lists: lists, logger: logger}
}

func (*Inline) ID() string    { return InlineID }
func (*Inline) SetID() string { return SetID }

// ProcessSchema turns a string or integer node into a OneOf with one
// constant per codelist entry. Entries outside an enum restriction are
// dropped. Nodes are returned unchanged when the codelist is unknown.
func (p *Inline) ProcessSchema(n jschema.Node, codelistID, _ string) (jschema.Node, error) {
	var allowed []string
	integer := false
	switch t := n.(type) {
	case *jschema.String:
		allowed = t.Enum
	case *jschema.Integer:
		integer = true
		for _, e := range t.Enum {
			allowed = append(allowed, cast.ToString(e))
		}
	case *jschema.OneOf:
		// already inlined
		return n, nil
	default:
		p.logger.Warn("codelist can only be inlined for string and integer values",
			"codelist", codelistID, "kind", n.Kind().String())
		return n, nil
	}

	list, ok := p.lists.Lookup(codelistID)
	if !ok {
		p.logger.Warn("codelist not found", "codelist", codelistID)
		return n, nil
	}

	out := &jschema.OneOf{Attributes: n.Attrs()}
	for _, e := range list.Entries {
		if len(allowed) > 0 && !slices.Contains(allowed, e.Code) {
			continue
		}
		var value any = e.Code
		if integer {
			v, err := cast.ToInt64E(e.Code)
			if err != nil {
				p.logger.Warn("skipping non-integer codelist entry", "codelist", codelistID, "code", e.Code)
				continue
			}
			value = v
		}
		out.Alternatives = append(out.Alternatives, &jschema.Constant{
			Attributes: jschema.Attributes{Title: e.Title},
			Value:      value,
		})
	}
	return out, nil
}

// NewSet returns the codelist profile set for schema documents. It is
// enabled for feature types that use a codelist.
func NewSet(lists codelist.Lookup, logger *slog.Logger) *profile.Set {
	return &profile.Set{
		ID:        SetID,
		Kind:      profile.Schema,
		MediaType: profile.SchemaMediaType,
		Enabled:   (*featuretype.Schema).UsesCodelist,
		Profiles:  []profile.Profile{Ref{}, NewInline(lists, logger)},
	}
}
