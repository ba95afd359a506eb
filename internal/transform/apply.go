// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package transform

import (
	"maps"
	"strings"

	"github.com/dacolabs/ogcprofile/internal/codelist"
	"github.com/spf13/cast"
)

// Apply returns a copy of properties with rules applied. Values inside
// arrays along a path are rewritten element by element. The input is not
// modified.
func Apply(rules Rules, properties map[string]any, lists codelist.Lookup) map[string]any {
	var out any = properties
	for _, path := range rules.paths {
		out = applyAt(out, strings.Split(path, "."), rules.ops[path], lists)
	}
	m, _ := out.(map[string]any)
	return m
}

func applyAt(v any, segs []string, ops []Operation, lists codelist.Lookup) any {
	if arr, ok := v.([]any); ok {
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = applyAt(e, segs, ops, lists)
		}
		return out
	}
	if len(segs) == 0 {
		return applyOps(v, ops, lists)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	child, ok := m[segs[0]]
	if !ok || child == nil {
		return v
	}
	out := maps.Clone(m)
	out[segs[0]] = applyAt(child, segs[1:], ops, lists)
	return out
}

// applyOps runs ops in order. Templates always read the original value.
func applyOps(v any, ops []Operation, lists codelist.Lookup) any {
	src, _ := v.(map[string]any)
	lookup := func(name string) (string, bool) {
		f, ok := src[name]
		if !ok || f == nil {
			return "", false
		}
		s, err := cast.ToStringE(f)
		return s, err == nil
	}

	cur := v
	for _, op := range ops {
		switch op.Kind {
		case KindRemoveSelect:
			if m, ok := cur.(map[string]any); ok {
				m = maps.Clone(m)
				delete(m, op.Field)
				cur = m
			}
		case KindReduceFormat:
			if src != nil {
				cur = Render(op.Template, lookup)
			}
		case KindMapFormat:
			if src != nil {
				m := make(map[string]any, len(op.Fields))
				for _, f := range op.Fields {
					m[f.Name] = Render(f.Template, lookup)
				}
				cur = m
			}
		case KindCodelist:
			cur = codelistTitle(cur, op.Codelist, lists)
		}
	}
	return cur
}

func codelistTitle(v any, id string, lists codelist.Lookup) any {
	if lists == nil {
		return v
	}
	list, ok := lists.Lookup(id)
	if !ok {
		return v
	}
	code, err := cast.ToStringE(v)
	if err != nil {
		return v
	}
	if title, ok := list.Title(code); ok {
		return title
	}
	return v
}
