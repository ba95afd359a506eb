// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodelistURIs_URI(t *testing.T) {
	tests := []struct {
		name    string
		uris    CodelistURIs
		id      string
		want    string
		wantErr bool
	}{
		{
			name: "with sub path",
			uris: CodelistURIs{Base: "https://host/api", SubPath: []string{"daraa"}},
			id:   "status",
			want: "https://host/api/daraa/codelists/status",
		},
		{
			name: "trailing slash",
			uris: CodelistURIs{Base: "https://host/api/", SubPath: []string{"daraa"}},
			id:   "status",
			want: "https://host/api/daraa/codelists/status",
		},
		{
			name: "sub path already in base",
			uris: CodelistURIs{Base: "https://host/api/daraa", SubPath: []string{"daraa"}},
			id:   "status",
			want: "https://host/api/daraa/codelists/status",
		},
		{
			name: "no sub path",
			uris: CodelistURIs{Base: "https://host"},
			id:   "surface",
			want: "https://host/codelists/surface",
		},
		{
			name: "multi-segment sub path",
			uris: CodelistURIs{Base: "https://host/api", SubPath: []string{"a/b"}},
			id:   "x",
			want: "https://host/api/a/b/codelists/x",
		},
		{
			name: "escaped id",
			uris: CodelistURIs{Base: "https://host"},
			id:   "road status",
			want: "https://host/codelists/road%20status",
		},
		{name: "relative base", uris: CodelistURIs{Base: "/api"}, id: "status", wantErr: true},
		{name: "unparseable base", uris: CodelistURIs{Base: "https://[::1"}, id: "status", wantErr: true},
		{name: "empty id", uris: CodelistURIs{Base: "https://host"}, id: "", wantErr: true},
		{name: "slash in id", uris: CodelistURIs{Base: "https://host"}, id: "a/b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.uris.URI(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCodelistBase(t *testing.T) {
	assert.NoError(t, ValidateCodelistBase("https://host/api"))
	assert.ErrorIs(t, ValidateCodelistBase(""), ErrMalformedURI)
	assert.ErrorIs(t, ValidateCodelistBase("host/api"), ErrMalformedURI)
}
