// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codelists

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dacolabs/ogcprofile/internal/codelist"
	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLists() *codelist.Store {
	return codelist.NewStore(
		&codelist.Codelist{ID: "status", Entries: codelist.Entries{
			{Code: "1", Title: "Active"},
			{Code: "2", Title: "Closed"},
		}},
		&codelist.Codelist{ID: "mixed", Entries: codelist.Entries{
			{Code: "1", Title: "One"},
			{Code: "x", Title: "Not a number"},
			{Code: "3", Title: "Three"},
		}},
	)
}

func newInline(buf *bytes.Buffer) *Inline {
	return NewInline(testLists(), slog.New(slog.NewTextHandler(buf, nil)))
}

func constants(t *testing.T, n jschema.Node) []*jschema.Constant {
	t.Helper()
	oneOf, ok := n.(*jschema.OneOf)
	require.True(t, ok, "expected OneOf, got %T", n)
	out := make([]*jschema.Constant, len(oneOf.Alternatives))
	for i, alt := range oneOf.Alternatives {
		c, ok := alt.(*jschema.Constant)
		require.True(t, ok)
		out[i] = c
	}
	return out
}

func TestInline_String(t *testing.T) {
	var buf bytes.Buffer
	node := &jschema.String{Attributes: jschema.Attributes{Title: "Status", CodelistID: "status"}}

	out, err := newInline(&buf).ProcessSchema(node, "status", "")
	require.NoError(t, err)

	assert.Equal(t, "Status", out.Attrs().Title)
	assert.Equal(t, "status", out.Attrs().CodelistID)
	cs := constants(t, out)
	require.Len(t, cs, 2)
	assert.Equal(t, "1", cs[0].Value)
	assert.Equal(t, "Active", cs[0].Title)
	assert.Equal(t, "2", cs[1].Value)
	assert.Equal(t, "Closed", cs[1].Title)
	assert.Empty(t, buf.String())
}

func TestInline_IntegerParsesCodes(t *testing.T) {
	var buf bytes.Buffer
	node := &jschema.Integer{Attributes: jschema.Attributes{CodelistID: "mixed"}}

	out, err := newInline(&buf).ProcessSchema(node, "mixed", "")
	require.NoError(t, err)

	cs := constants(t, out)
	require.Len(t, cs, 2)
	assert.Equal(t, int64(1), cs[0].Value)
	assert.Equal(t, int64(3), cs[1].Value)
	assert.Contains(t, buf.String(), "skipping non-integer codelist entry")
}

func TestInline_EnumRestriction(t *testing.T) {
	var buf bytes.Buffer
	inline := newInline(&buf)

	out, err := inline.ProcessSchema(&jschema.String{Enum: []string{"2"}}, "status", "")
	require.NoError(t, err)
	cs := constants(t, out)
	require.Len(t, cs, 1)
	assert.Equal(t, "Closed", cs[0].Title)

	out, err = inline.ProcessSchema(&jschema.Integer{Enum: []int64{3}}, "mixed", "")
	require.NoError(t, err)
	cs = constants(t, out)
	require.Len(t, cs, 1)
	assert.Equal(t, int64(3), cs[0].Value)
}

func TestInline_UnknownCodelist(t *testing.T) {
	var buf bytes.Buffer
	node := &jschema.String{Attributes: jschema.Attributes{CodelistID: "nope"}}

	out, err := newInline(&buf).ProcessSchema(node, "nope", "")
	require.NoError(t, err)
	assert.Same(t, jschema.Node(node), out)
	assert.Contains(t, buf.String(), "codelist not found")
	assert.Contains(t, buf.String(), "nope")
}

func TestInline_UnsupportedVariant(t *testing.T) {
	var buf bytes.Buffer
	node := &jschema.Number{Attributes: jschema.Attributes{CodelistID: "status"}}

	out, err := newInline(&buf).ProcessSchema(node, "status", "")
	require.NoError(t, err)
	assert.Same(t, jschema.Node(node), out)
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestInline_AlreadyInlined(t *testing.T) {
	var buf bytes.Buffer
	inline := newInline(&buf)

	once, err := inline.ProcessSchema(&jschema.String{Attributes: jschema.Attributes{CodelistID: "status"}}, "status", "")
	require.NoError(t, err)
	twice, err := inline.ProcessSchema(once, "status", "")
	require.NoError(t, err)
	assert.True(t, jschema.Equal(once, twice))
	assert.Empty(t, buf.String())
}

func TestRef_ProcessSchema(t *testing.T) {
	uri := "https://host/api/daraa/codelists/status"
	tests := []struct {
		name    string
		node    jschema.Node
		uri     string
		wantURI string
	}{
		{"string", &jschema.String{}, uri, uri},
		{"integer", &jschema.Integer{}, uri, uri},
		{"one of", &jschema.OneOf{}, uri, uri},
		{"number untouched", &jschema.Number{}, uri, ""},
		{"no uri", &jschema.String{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Ref{}.ProcessSchema(tt.node, "status", tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURI, out.Attrs().CodelistURI)
			assert.Equal(t, tt.node.Kind(), out.Kind())
		})
	}
}

func TestNewSet(t *testing.T) {
	set := NewSet(testLists(), nil)
	_, err := profile.NewRegistry(set)
	require.NoError(t, err)

	assert.Equal(t, profile.Schema, set.Kind)
	assert.Equal(t, profile.SchemaMediaType, set.MediaType)
	assert.True(t, set.AppliesTo("application/schema+json"))
	assert.False(t, set.AppliesTo("text/html"))

	ref, ok := set.Member(RefID)
	require.True(t, ok)
	assert.True(t, ref.IsDefault())

	inline, ok := set.Member(InlineID)
	require.True(t, ok)
	_, isProcessor := inline.(profile.SchemaProcessor)
	assert.True(t, isProcessor)
}
