// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rewrite contains the schema tree rewriters applied by schema profiles.
package rewrite

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/dacolabs/ogcprofile/internal/jschema"
	"github.com/dacolabs/ogcprofile/internal/profile/codelists"
)

// ErrMalformedURI is returned when a codelist URI cannot be built.
var ErrMalformedURI = errors.New("malformed codelist uri")

// CodelistURIs builds codelist resource URIs below a service base URI.
type CodelistURIs struct {
	Base    string
	SubPath []string
}

// URI returns {base}/{subPath...}/codelists/{codelistID}. Path segments
// already present at the end of the base are not repeated.
func (c CodelistURIs) URI(codelistID string) (string, error) {
	if codelistID == "" || strings.Contains(codelistID, "/") {
		return "", fmt.Errorf("%w: invalid codelist id %q", ErrMalformedURI, codelistID)
	}
	u, err := parseBase(c.Base)
	if err != nil {
		return "", err
	}

	segs := pathSegments(u.Path)
	segs = ensureSuffix(segs, c.SubPath)
	segs = ensureSuffix(segs, []string{"codelists", codelistID})

	u.Path = "/" + strings.Join(segs, "/")
	u.RawPath = ""
	return u.String(), nil
}

// ValidateCodelistBase reports whether base can serve as a codelist base URI.
func ValidateCodelistBase(base string) error {
	_, err := parseBase(base)
	return err
}

func parseBase(base string) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURI, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute URI", ErrMalformedURI, base)
	}
	return u, nil
}

func pathSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func ensureSuffix(segs, suffix []string) []string {
	var clean []string
	for _, s := range suffix {
		clean = append(clean, pathSegments(s)...)
	}
	if len(clean) == 0 {
		return segs
	}
	if len(segs) >= len(clean) && slices.Equal(segs[len(segs)-len(clean):], clean) {
		return segs
	}
	return append(segs, clean...)
}

// WithCodelistURI returns a rewriter that attaches the codelist URI to every
// string, integer or inlined node with a codelist id. Nodes keep no URI when
// it cannot be built.
func WithCodelistURI(uris *CodelistURIs, logger *slog.Logger) jschema.Visitor {
	return &MapCodelists{Profile: codelists.Ref{}, URIs: uris, Logger: logger}
}
