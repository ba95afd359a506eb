// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"fmt"

	"github.com/dacolabs/ogcprofile/internal/jschema"
)

// CleanupForValidation strips descriptive and OGC extension attributes from
// every node. Structure, types and codelist ids are kept.
type CleanupForValidation struct{}

// Visit implements jschema.Visitor.
func (c CleanupForValidation) Visit(n jschema.Node) (jschema.Node, error) {
	switch n.(type) {
	case *jschema.String, *jschema.Integer, *jschema.Number, *jschema.Boolean,
		*jschema.Null, *jschema.True, *jschema.False, *jschema.Constant,
		*jschema.Object, *jschema.Array, *jschema.OneOf, *jschema.AllOf,
		*jschema.Ref, *jschema.Geometry, *jschema.Document:
	default:
		return nil, fmt.Errorf("%w: %T", jschema.ErrUnexpectedVariant, n)
	}

	out, err := jschema.VisitChildren(c, n)
	if err != nil {
		return nil, err
	}
	return jschema.WithAttrs(out, out.Attrs().Stripped()), nil
}
