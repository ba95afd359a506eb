// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import "iter"

// Traverse returns a pre-order iterator over all nodes in the tree.
func Traverse(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		traverse(n, yield)
	}
}

func traverse(n Node, yield func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	for _, c := range Children(n) {
		if !traverse(c, yield) {
			return false
		}
	}
	return true
}

// Children returns the direct children of n in declaration order.
func Children(n Node) []Node {
	var out []Node
	appendProps := func(props []Property) {
		for _, p := range props {
			out = append(out, p.Schema)
		}
	}
	switch t := n.(type) {
	case *Object:
		appendProps(t.Properties)
		appendProps(t.PatternProperties)
		if t.AdditionalProperties != nil {
			out = append(out, t.AdditionalProperties)
		}
	case *Array:
		if t.Items != nil {
			out = append(out, t.Items)
		}
	case *OneOf:
		out = append(out, t.Alternatives...)
	case *AllOf:
		out = append(out, t.Parts...)
	case *Ref:
		if t.Def != nil {
			out = append(out, t.Def)
		}
	case *Document:
		appendProps(t.Properties)
		appendProps(t.PatternProperties)
		if t.AdditionalProperties != nil {
			out = append(out, t.AdditionalProperties)
		}
		appendProps(t.Definitions)
	}
	return out
}
