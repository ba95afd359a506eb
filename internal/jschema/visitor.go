// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"errors"
	"fmt"
)

// ErrUnexpectedVariant is returned when a rewrite meets a node it has no case for.
var ErrUnexpectedVariant = errors.New("unexpected schema node variant")

// Visitor rewrites a node. Implementations must not modify their input.
type Visitor interface {
	Visit(n Node) (Node, error)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n Node) (Node, error)

// Visit calls f(n).
func (f VisitorFunc) Visit(n Node) (Node, error) {
	return f(n)
}

// Rewrite applies v to n. A nil node stays nil.
func Rewrite(v Visitor, n Node) (Node, error) {
	if n == nil {
		return nil, nil
	}
	return v.Visit(n)
}

// VisitChildren returns n with each direct child rewritten by v.
// Leaf nodes are returned unchanged. An unknown or nil node yields
// ErrUnexpectedVariant.
func VisitChildren(v Visitor, n Node) (Node, error) {
	switch t := n.(type) {
	case *String, *Integer, *Number, *Boolean, *Null, *True, *False, *Constant, *Geometry:
		return n, nil
	case *Object:
		c := *t
		var err error
		if c.Properties, err = visitProperties(v, t.Properties); err != nil {
			return nil, err
		}
		if c.PatternProperties, err = visitProperties(v, t.PatternProperties); err != nil {
			return nil, err
		}
		if c.AdditionalProperties, err = Rewrite(v, t.AdditionalProperties); err != nil {
			return nil, err
		}
		return &c, nil
	case *Array:
		items, err := Rewrite(v, t.Items)
		if err != nil {
			return nil, err
		}
		c := *t
		c.Items = items
		return &c, nil
	case *OneOf:
		alts, err := visitNodes(v, t.Alternatives)
		if err != nil {
			return nil, err
		}
		c := *t
		c.Alternatives = alts
		return &c, nil
	case *AllOf:
		parts, err := visitNodes(v, t.Parts)
		if err != nil {
			return nil, err
		}
		c := *t
		c.Parts = parts
		return &c, nil
	case *Ref:
		def, err := Rewrite(v, t.Def)
		if err != nil {
			return nil, err
		}
		c := *t
		c.Def = def
		return &c, nil
	case *Document:
		c := *t
		var err error
		if c.Properties, err = visitProperties(v, t.Properties); err != nil {
			return nil, err
		}
		if c.PatternProperties, err = visitProperties(v, t.PatternProperties); err != nil {
			return nil, err
		}
		if c.AdditionalProperties, err = Rewrite(v, t.AdditionalProperties); err != nil {
			return nil, err
		}
		if c.Definitions, err = visitProperties(v, t.Definitions); err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedVariant, n)
	}
}

func visitProperties(v Visitor, props []Property) ([]Property, error) {
	if len(props) == 0 {
		return props, nil
	}
	out := make([]Property, len(props))
	for i, p := range props {
		s, err := Rewrite(v, p.Schema)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		out[i] = Property{Name: p.Name, Schema: s}
	}
	return out, nil
}

func visitNodes(v Visitor, nodes []Node) ([]Node, error) {
	if len(nodes) == 0 {
		return nodes, nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		s, err := Rewrite(v, n)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
