// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package transform

import "strings"

// Render expands {{name}} and {{name | orElse:'fallback'}} placeholders.
// The fallback may itself contain placeholders. Unknown names without a
// fallback render as the empty string.
func Render(tmpl string, value func(name string) (string, bool)) string {
	var sb strings.Builder
	for {
		start := strings.Index(tmpl, "{{")
		if start < 0 {
			sb.WriteString(tmpl)
			return sb.String()
		}
		end := closing(tmpl, start+2)
		if end < 0 {
			sb.WriteString(tmpl)
			return sb.String()
		}
		sb.WriteString(tmpl[:start])
		sb.WriteString(evaluate(tmpl[start+2:end], value))
		tmpl = tmpl[end+2:]
	}
}

// Substitute replaces {{key}} with subs[key] and leaves other placeholders intact.
func Substitute(tmpl string, subs map[string]string) string {
	if tmpl == "" {
		return tmpl
	}
	for k, v := range subs {
		tmpl = strings.ReplaceAll(tmpl, "{{"+k+"}}", v)
	}
	return tmpl
}

// closing returns the index of the "}}" matching an opening at from,
// skipping quoted fallbacks.
func closing(s string, from int) int {
	quoted := false
	for i := from; i+1 < len(s); i++ {
		switch {
		case s[i] == '\'':
			quoted = !quoted
		case !quoted && s[i] == '}' && s[i+1] == '}':
			return i
		}
	}
	return -1
}

func evaluate(expr string, value func(string) (string, bool)) string {
	name, filter, hasFilter := strings.Cut(expr, "|")
	if v, ok := value(strings.TrimSpace(name)); ok && v != "" {
		return v
	}
	if !hasFilter {
		return ""
	}
	if arg, ok := strings.CutPrefix(strings.TrimSpace(filter), "orElse:"); ok {
		arg = strings.TrimSpace(arg)
		arg = strings.TrimPrefix(arg, "'")
		arg = strings.TrimSuffix(arg, "'")
		return Render(arg, value)
	}
	return ""
}
