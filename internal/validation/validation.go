// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validation checks feature payloads against published schema documents.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dacolabs/ogcprofile/internal/jschema"
)

// defaultURL locates documents without an id.
const defaultURL = "schema.json"

var geometryTypes = []string{
	"Geometry",
	"Point",
	"MultiPoint",
	"LineString",
	"MultiLineString",
	"Polygon",
	"MultiPolygon",
	"GeometryCollection",
}

var printer = message.NewPrinter(language.English)

// Schema is a compiled schema document.
type Schema struct {
	url      string
	compiled *jsonschema.Schema
}

// Compile compiles a schema document. GeoJSON geometry references resolve
// to local schemas that check the geometry type only.
func Compile(doc jschema.Node) (*Schema, error) {
	data, err := jschema.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid schema JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	for _, t := range geometryTypes {
		if err := c.AddResource(jschema.GeometryURI(t), geometrySchema(t)); err != nil {
			return nil, fmt.Errorf("failed to add geometry schema: %w", err)
		}
	}

	url := defaultURL
	if d, ok := doc.(*jschema.Document); ok && d.ID != "" {
		url = d.ID
	}
	if err := c.AddResource(url, raw); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Schema{url: url, compiled: compiled}, nil
}

// URL returns the location the schema was compiled from.
func (s *Schema) URL() string {
	return s.url
}

// Validate checks a decoded payload. Any value that encodes to JSON is
// accepted. Violations are returned as *Error.
func (s *Schema) Validate(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return s.ValidateJSON(data)
}

// ValidateJSON checks a JSON payload.
func (s *Schema) ValidateJSON(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid payload JSON: %w", err)
	}
	if err := s.compiled.Validate(inst); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok { //nolint:errorlint // Validate returns the concrete type
			return newError(verr)
		}
		return err
	}
	return nil
}

func geometrySchema(geometryType string) map[string]any {
	s := map[string]any{
		"type":     "object",
		"required": []any{"type"},
	}
	if geometryType != "Geometry" {
		s["properties"] = map[string]any{
			"type": map[string]any{"const": geometryType},
		}
	}
	return s
}

// FieldError is one violation at a payload location.
type FieldError struct {
	// Path is a JSON pointer into the payload.
	Path string
	// Keyword is the failing schema keyword, e.g. "required".
	Keyword string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Error lists the violations of a payload.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Paths returns the distinct payload locations with violations.
func (e *Error) Paths() []string {
	var paths []string
	for _, f := range e.Fields {
		if !slices.Contains(paths, f.Path) {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

func newError(verr *jsonschema.ValidationError) *Error {
	e := &Error{}
	collect(verr, e)
	slices.SortStableFunc(e.Fields, func(a, b FieldError) int {
		return strings.Compare(a.Path, b.Path)
	})
	return e
}

// collect adds the leaves of the error tree.
func collect(verr *jsonschema.ValidationError, e *Error) {
	if verr == nil {
		return
	}
	if len(verr.Causes) == 0 {
		f := FieldError{Path: "/" + strings.Join(verr.InstanceLocation, "/")}
		if verr.ErrorKind != nil {
			f.Keyword = strings.Join(verr.ErrorKind.KeywordPath(), "/")
			f.Message = verr.ErrorKind.LocalizedString(printer)
		}
		e.Fields = append(e.Fields, f)
		return
	}
	for _, cause := range verr.Causes {
		collect(cause, e)
	}
}
