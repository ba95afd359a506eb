// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upperTitles sets a marker title on every string node and recurses elsewhere.
type upperTitles struct{}

func (v upperTitles) Visit(n Node) (Node, error) {
	if s, ok := n.(*String); ok {
		a := s.Attrs()
		a.Title = "visited"
		return WithAttrs(s, a), nil
	}
	return VisitChildren(v, n)
}

func sampleDocument() *Document {
	return &Document{
		Schema: DraftURI,
		Properties: []Property{
			{Name: "name", Schema: &String{}},
			{Name: "tags", Schema: &Array{Items: &String{}}},
			{Name: "address", Schema: &Object{
				Properties: []Property{
					{Name: "street", Schema: &String{}},
					{Name: "number", Schema: &Integer{}},
				},
			}},
			{Name: "kind", Schema: &OneOf{Alternatives: []Node{&String{}, &Null{}}}},
			{Name: "geometry", Schema: &Geometry{Type: "Point"}},
		},
		Definitions: []Property{
			{Name: "link", Schema: &Ref{Ref: "#/$defs/link", Def: &AllOf{Parts: []Node{&String{}}}}},
		},
	}
}

func TestVisitChildren_RewritesNestedNodes(t *testing.T) {
	doc := sampleDocument()

	out, err := upperTitles{}.Visit(doc)
	require.NoError(t, err)

	count := 0
	for n := range Traverse(out) {
		if s, ok := n.(*String); ok {
			assert.Equal(t, "visited", s.Title)
			count++
		}
	}
	assert.Equal(t, 5, count)

	// The input tree is left untouched.
	for n := range Traverse(doc) {
		assert.Empty(t, n.Attrs().Title)
	}
}

func TestVisitChildren_PreservesPropertyOrder(t *testing.T) {
	out, err := upperTitles{}.Visit(sampleDocument())
	require.NoError(t, err)

	doc, ok := out.(*Document)
	require.True(t, ok)
	names := make([]string, len(doc.Properties))
	for i, p := range doc.Properties {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"name", "tags", "address", "kind", "geometry"}, names)
}

func TestVisitChildren_Leaves(t *testing.T) {
	leaves := []Node{
		&String{}, &Integer{}, &Number{}, &Boolean{}, &Null{},
		&True{}, &False{}, &Constant{Value: "x"}, &Geometry{},
	}
	for _, leaf := range leaves {
		t.Run(leaf.Kind().String(), func(t *testing.T) {
			out, err := VisitChildren(upperTitles{}, leaf)
			require.NoError(t, err)
			assert.Same(t, leaf, out)
		})
	}
}

func TestVisitChildren_NilNode(t *testing.T) {
	_, err := VisitChildren(upperTitles{}, nil)
	assert.ErrorIs(t, err, ErrUnexpectedVariant)
}

func TestVisitorFunc(t *testing.T) {
	v := VisitorFunc(func(n Node) (Node, error) {
		return &Boolean{}, nil
	})
	out, err := Rewrite(v, &String{})
	require.NoError(t, err)
	assert.Equal(t, KindBoolean, out.Kind())

	out, err = Rewrite(v, nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWithAttrs(t *testing.T) {
	orig := &Integer{Attributes: Attributes{Title: "a"}, Enum: []int64{1}}
	out := WithAttrs(orig, Attributes{Title: "b"})

	assert.Equal(t, "a", orig.Title)
	assert.Equal(t, "b", out.Attrs().Title)
	assert.Equal(t, []int64{1}, out.(*Integer).Enum)
}

func TestAttributes_Stripped(t *testing.T) {
	a := Attributes{
		Title: "t", Description: "d", ReadOnly: true, WriteOnly: true,
		CodelistID: "status", CodelistURI: "u", Role: RoleID, EmbeddedRole: "e",
		PropertySeq: 3, RefCollectionID: "c", RefURITemplate: "x",
	}
	assert.Equal(t, Attributes{CodelistID: "status"}, a.Stripped())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(sampleDocument(), sampleDocument()))
	assert.False(t, Equal(&String{Format: "date"}, &String{}))
	assert.False(t, Equal(&String{}, &Integer{}))
}
