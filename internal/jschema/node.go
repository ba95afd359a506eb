// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides the schema tree that describes a feature type,
// together with traversal, rewriting and JSON Schema export.
//
// Nodes are immutable once built. Rewrites produce new nodes and share
// unchanged subtrees with their input.
package jschema

import "reflect"

// Kind identifies the variant of a Node.
type Kind int

// Node kinds.
const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindNull
	KindTrue
	KindFalse
	KindConstant
	KindObject
	KindArray
	KindOneOf
	KindAllOf
	KindRef
	KindGeometry
	KindDocument
)

var kindNames = [...]string{
	KindString:   "string",
	KindInteger:  "integer",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindNull:     "null",
	KindTrue:     "true",
	KindFalse:    "false",
	KindConstant: "constant",
	KindObject:   "object",
	KindArray:    "array",
	KindOneOf:    "oneOf",
	KindAllOf:    "allOf",
	KindRef:      "ref",
	KindGeometry: "geometry",
	KindDocument: "document",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Role values used in Attributes.Role.
const (
	RoleID              = "id"
	RolePrimaryGeometry = "primary-geometry"
	RolePrimaryInstant  = "primary-instant"
	RoleReference       = "reference"
)

// Attributes are the optional annotations every node carries.
// The zero value of a field means the attribute is absent.
type Attributes struct {
	Title       string
	Description string
	ReadOnly    bool
	WriteOnly   bool

	CodelistID  string
	CodelistURI string

	Role         string
	EmbeddedRole string
	// PropertySeq is the 1-based position of the property in its parent.
	PropertySeq int

	RefCollectionID string
	RefURITemplate  string
}

// Stripped returns a copy with every descriptive and OGC extension
// attribute cleared. The codelist identifier is kept.
func (a Attributes) Stripped() Attributes {
	return Attributes{CodelistID: a.CodelistID}
}

// Node is a schema tree node. The set of implementations is closed.
type Node interface {
	Kind() Kind
	Attrs() Attributes
	withAttrs(a Attributes) Node
}

// WithAttrs returns a copy of n carrying a.
func WithAttrs(n Node, a Attributes) Node {
	return n.withAttrs(a)
}

// Property is a named child of an object-like node.
type Property struct {
	Name   string
	Schema Node
}

// String is a string-valued node.
type String struct {
	Attributes
	Format    string
	Pattern   string
	Enum      []string
	MinLength *int
	MaxLength *int
}

// Integer is an integer-valued node.
type Integer struct {
	Attributes
	Enum    []int64
	Minimum *int64
	Maximum *int64
}

// Number is a floating point node.
type Number struct {
	Attributes
	Minimum *float64
	Maximum *float64
}

// Boolean is a boolean node.
type Boolean struct{ Attributes }

// Null only accepts null.
type Null struct{ Attributes }

// True accepts any value.
type True struct{ Attributes }

// False rejects every value.
type False struct{ Attributes }

// Constant accepts exactly Value.
type Constant struct {
	Attributes
	Value any
}

// Object is a structured node with ordered properties.
type Object struct {
	Attributes
	Properties           []Property
	Required             []string
	PatternProperties    []Property
	AdditionalProperties Node
}

// Array is a list node.
type Array struct {
	Attributes
	Items    Node
	MinItems *int
	MaxItems *int
}

// OneOf accepts values matching exactly one alternative.
type OneOf struct {
	Attributes
	Alternatives []Node
}

// AllOf accepts values matching every part.
type AllOf struct {
	Attributes
	Parts []Node
}

// Ref points at a definition, either in the same document or elsewhere.
type Ref struct {
	Attributes
	Ref string
	// Def is the resolved definition, if known.
	Def Node
}

// Geometry is a spatial value; Type is a GeoJSON geometry type name.
type Geometry struct {
	Attributes
	Type string
}

// Document is the root of a schema tree.
type Document struct {
	Attributes
	ID                   string
	Schema               string
	Properties           []Property
	Required             []string
	PatternProperties    []Property
	AdditionalProperties Node
	Definitions          []Property
}

func (*String) Kind() Kind   { return KindString }
func (*Integer) Kind() Kind  { return KindInteger }
func (*Number) Kind() Kind   { return KindNumber }
func (*Boolean) Kind() Kind  { return KindBoolean }
func (*Null) Kind() Kind     { return KindNull }
func (*True) Kind() Kind     { return KindTrue }
func (*False) Kind() Kind    { return KindFalse }
func (*Constant) Kind() Kind { return KindConstant }
func (*Object) Kind() Kind   { return KindObject }
func (*Array) Kind() Kind    { return KindArray }
func (*OneOf) Kind() Kind    { return KindOneOf }
func (*AllOf) Kind() Kind    { return KindAllOf }
func (*Ref) Kind() Kind      { return KindRef }
func (*Geometry) Kind() Kind { return KindGeometry }
func (*Document) Kind() Kind { return KindDocument }

func (n *String) Attrs() Attributes   { return n.Attributes }
func (n *Integer) Attrs() Attributes  { return n.Attributes }
func (n *Number) Attrs() Attributes   { return n.Attributes }
func (n *Boolean) Attrs() Attributes  { return n.Attributes }
func (n *Null) Attrs() Attributes     { return n.Attributes }
func (n *True) Attrs() Attributes     { return n.Attributes }
func (n *False) Attrs() Attributes    { return n.Attributes }
func (n *Constant) Attrs() Attributes { return n.Attributes }
func (n *Object) Attrs() Attributes   { return n.Attributes }
func (n *Array) Attrs() Attributes    { return n.Attributes }
func (n *OneOf) Attrs() Attributes    { return n.Attributes }
func (n *AllOf) Attrs() Attributes    { return n.Attributes }
func (n *Ref) Attrs() Attributes      { return n.Attributes }
func (n *Geometry) Attrs() Attributes { return n.Attributes }
func (n *Document) Attrs() Attributes { return n.Attributes }

func (n *String) withAttrs(a Attributes) Node   { c := *n; c.Attributes = a; return &c }
func (n *Integer) withAttrs(a Attributes) Node  { c := *n; c.Attributes = a; return &c }
func (n *Number) withAttrs(a Attributes) Node   { c := *n; c.Attributes = a; return &c }
func (n *Boolean) withAttrs(a Attributes) Node  { c := *n; c.Attributes = a; return &c }
func (n *Null) withAttrs(a Attributes) Node     { c := *n; c.Attributes = a; return &c }
func (n *True) withAttrs(a Attributes) Node     { c := *n; c.Attributes = a; return &c }
func (n *False) withAttrs(a Attributes) Node    { c := *n; c.Attributes = a; return &c }
func (n *Constant) withAttrs(a Attributes) Node { c := *n; c.Attributes = a; return &c }
func (n *Object) withAttrs(a Attributes) Node   { c := *n; c.Attributes = a; return &c }
func (n *Array) withAttrs(a Attributes) Node    { c := *n; c.Attributes = a; return &c }
func (n *OneOf) withAttrs(a Attributes) Node    { c := *n; c.Attributes = a; return &c }
func (n *AllOf) withAttrs(a Attributes) Node    { c := *n; c.Attributes = a; return &c }
func (n *Ref) withAttrs(a Attributes) Node      { c := *n; c.Attributes = a; return &c }
func (n *Geometry) withAttrs(a Attributes) Node { c := *n; c.Attributes = a; return &c }
func (n *Document) withAttrs(a Attributes) Node { c := *n; c.Attributes = a; return &c }

// Lookup returns the schema of the named property.
func (n *Object) Lookup(name string) (Node, bool) {
	return lookup(n.Properties, name)
}

// Lookup returns the schema of the named property.
func (n *Document) Lookup(name string) (Node, bool) {
	return lookup(n.Properties, name)
}

func lookup(props []Property, name string) (Node, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}
