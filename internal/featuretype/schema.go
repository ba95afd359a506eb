// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package featuretype describes the stored shape of a feature collection and
// derives the schema tree published for it.
package featuretype

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Type is the value type of a property.
type Type string

// Property types.
const (
	String          Type = "STRING"
	Integer         Type = "INTEGER"
	Float           Type = "FLOAT"
	Boolean         Type = "BOOLEAN"
	Datetime        Type = "DATETIME"
	Date            Type = "DATE"
	Geometry        Type = "GEOMETRY"
	Object          Type = "OBJECT"
	ObjectArray     Type = "OBJECT_ARRAY"
	ValueArray      Type = "VALUE_ARRAY"
	FeatureRef      Type = "FEATURE_REF"
	FeatureRefArray Type = "FEATURE_REF_ARRAY"
)

func (t Type) valid() bool {
	switch t {
	case String, Integer, Float, Boolean, Datetime, Date, Geometry,
		Object, ObjectArray, ValueArray, FeatureRef, FeatureRefArray:
		return true
	}
	return false
}

// DynamicRefType marks references whose target collection is stored per value.
const DynamicRefType = "DYNAMIC"

// Role marks properties with a special meaning for the feature.
type Role string

// Property roles.
const (
	RoleID              Role = "ID"
	RolePrimaryGeometry Role = "PRIMARY_GEOMETRY"
	RolePrimaryInstant  Role = "PRIMARY_INSTANT"
)

// Constraints restrict the values of a property.
type Constraints struct {
	Codelist string   `yaml:"codelist,omitempty" json:"codelist,omitempty"`
	Enum     []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Min      *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Pattern  string   `yaml:"regex,omitempty" json:"regex,omitempty"`
}

// Property is a stored attribute of a feature, possibly with nested properties.
type Property struct {
	Name         string       `yaml:"-" json:"name"`
	Type         Type         `yaml:"type" json:"type"`
	ValueType    Type         `yaml:"valueType,omitempty" json:"valueType,omitempty"`
	GeometryType string       `yaml:"geometryType,omitempty" json:"geometryType,omitempty"`
	Role         Role         `yaml:"role,omitempty" json:"role,omitempty"`
	Label        string       `yaml:"label,omitempty" json:"label,omitempty"`
	Description  string       `yaml:"description,omitempty" json:"description,omitempty"`
	Constraints  *Constraints `yaml:"constraints,omitempty" json:"constraints,omitempty"`

	// RefType is the collection a feature reference points to.
	RefType        string `yaml:"refType,omitempty" json:"refType,omitempty"`
	RefKeyTemplate string `yaml:"refKeyTemplate,omitempty" json:"refKeyTemplate,omitempty"`
	RefURITemplate string `yaml:"refUriTemplate,omitempty" json:"refUriTemplate,omitempty"`

	ReadOnly  bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`

	Properties PropertyList `yaml:"properties,omitempty" json:"properties,omitempty"`

	path []string
}

// PropertyList keeps properties in declaration order.
type PropertyList []*Property

// UnmarshalYAML decodes a mapping of property name to definition.
func (l *PropertyList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", value.Line)
	}
	out := make(PropertyList, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var p Property
		if err := value.Content[i+1].Decode(&p); err != nil {
			return fmt.Errorf("property %s: %w", value.Content[i].Value, err)
		}
		p.Name = value.Content[i].Value
		out = append(out, &p)
	}
	*l = out
	return nil
}

// FullPath returns the dot-joined path from the feature root.
func (p *Property) FullPath() string {
	if len(p.path) == 0 {
		return p.Name
	}
	return strings.Join(p.path, ".")
}

// PathSegments returns the path from the feature root.
func (p *Property) PathSegments() []string {
	if len(p.path) == 0 {
		return []string{p.Name}
	}
	return append([]string(nil), p.path...)
}

// IsFeatureRef reports whether the property references other features.
func (p *Property) IsFeatureRef() bool {
	return p.Type == FeatureRef || p.Type == FeatureRefArray
}

// Codelist returns the codelist constraint, or "".
func (p *Property) Codelist() string {
	if p.Constraints == nil {
		return ""
	}
	return p.Constraints.Codelist
}

// Schema is the stored shape of one feature collection.
type Schema struct {
	Name        string       `yaml:"name" json:"name"`
	Label       string       `yaml:"label,omitempty" json:"label,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  PropertyList `yaml:"properties" json:"properties"`
}

// New creates a schema and records the full path of every nested property.
func New(name string, props ...*Property) *Schema {
	s := &Schema{Name: name, Properties: props}
	s.index()
	return s
}

func (s *Schema) index() {
	var walk func(props PropertyList, parent []string)
	walk = func(props PropertyList, parent []string) {
		for _, p := range props {
			p.path = append(append([]string(nil), parent...), p.Name)
			walk(p.Properties, p.path)
		}
	}
	walk(s.Properties, nil)
}

// AllNestedProperties returns every property in the tree, pre-order.
func (s *Schema) AllNestedProperties() []*Property {
	var out []*Property
	var walk func(props PropertyList)
	walk = func(props PropertyList) {
		for _, p := range props {
			out = append(out, p)
			walk(p.Properties)
		}
	}
	walk(s.Properties)
	return out
}

// UsesCodelist reports whether any nested property has a codelist constraint.
func (s *Schema) UsesCodelist() bool {
	for _, p := range s.AllNestedProperties() {
		if p.Codelist() != "" {
			return true
		}
	}
	return false
}

// UsesFeatureRef reports whether any nested property is a feature reference.
func (s *Schema) UsesFeatureRef() bool {
	for _, p := range s.AllNestedProperties() {
		if p.IsFeatureRef() {
			return true
		}
	}
	return false
}

// Fingerprint returns a stable hash of the schema content.
func (s *Schema) Fingerprint() uint64 {
	data, err := json.Marshal(s)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// Validate checks property types and names.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("feature type name is required")
	}
	for _, p := range s.AllNestedProperties() {
		if p.Name == "" {
			return fmt.Errorf("%s: property name is required", s.Name)
		}
		if !p.Type.valid() {
			return fmt.Errorf("%s.%s: unknown property type %q", s.Name, p.FullPath(), p.Type)
		}
		if p.Type == ValueArray && p.ValueType != "" && !p.ValueType.valid() {
			return fmt.Errorf("%s.%s: unknown value type %q", s.Name, p.FullPath(), p.ValueType)
		}
	}
	return nil
}
