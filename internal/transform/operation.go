// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package transform describes value rewrites that an encoder applies to
// feature properties, keyed by property path.
package transform

import (
	"fmt"
	"strings"
)

// Kind identifies an operation.
type Kind int

// Operation kinds.
const (
	// KindRemoveSelect drops the selected field from an object value.
	KindRemoveSelect Kind = iota + 1
	// KindReduceFormat replaces an object value with a rendered string.
	KindReduceFormat
	// KindMapFormat replaces an object value with a new object of rendered fields.
	KindMapFormat
	// KindCodelist replaces a code with its codelist title.
	KindCodelist
)

func (k Kind) String() string {
	switch k {
	case KindRemoveSelect:
		return "removeSelect"
	case KindReduceFormat:
		return "reduceFormat"
	case KindMapFormat:
		return "mapFormat"
	case KindCodelist:
		return "codelist"
	}
	return "unknown"
}

// Field is a named template used by MapFormat.
type Field struct {
	Name     string
	Template string
}

// Operation is a single value rewrite.
type Operation struct {
	Kind     Kind
	Field    string
	Template string
	Fields   []Field
	Codelist string
}

// RemoveSelect returns an operation that removes field from an object value.
func RemoveSelect(field string) Operation {
	return Operation{Kind: KindRemoveSelect, Field: field}
}

// ReduceFormat returns an operation that renders an object value into a string.
func ReduceFormat(template string) Operation {
	return Operation{Kind: KindReduceFormat, Template: template}
}

// MapFormat returns an operation that maps an object value to the given fields.
func MapFormat(fields ...Field) Operation {
	return Operation{Kind: KindMapFormat, Fields: fields}
}

// Codelist returns an operation that maps a code to its title in codelist id.
func Codelist(id string) Operation {
	return Operation{Kind: KindCodelist, Codelist: id}
}

func (o Operation) String() string {
	switch o.Kind {
	case KindRemoveSelect:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Field)
	case KindReduceFormat:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Template)
	case KindMapFormat:
		parts := make([]string, len(o.Fields))
		for i, f := range o.Fields {
			parts[i] = f.Name + "=" + f.Template
		}
		return fmt.Sprintf("%s(%s)", o.Kind, strings.Join(parts, ", "))
	case KindCodelist:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Codelist)
	}
	return o.Kind.String()
}

func (o Operation) substitute(subs map[string]string) Operation {
	o.Template = Substitute(o.Template, subs)
	if len(o.Fields) > 0 {
		fields := make([]Field, len(o.Fields))
		for i, f := range o.Fields {
			fields[i] = Field{Name: f.Name, Template: Substitute(f.Template, subs)}
		}
		o.Fields = fields
	}
	return o
}
