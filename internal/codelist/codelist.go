// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codelist provides named code-to-title mappings.
package codelist

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry maps one code to its human-readable title.
type Entry struct {
	Code  string
	Title string
}

// Codelist is an ordered set of entries.
type Codelist struct {
	ID      string  `yaml:"-"`
	Label   string  `yaml:"label,omitempty"`
	Entries Entries `yaml:"entries"`
}

// Entries keeps codelist entries in declaration order.
type Entries []Entry

// UnmarshalYAML decodes a mapping of code to title, preserving key order.
func (e *Entries) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: entries must be a mapping of code to title", value.Line)
	}
	out := make(Entries, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: title for code %q must be a scalar", v.Line, k.Value)
		}
		out = append(out, Entry{Code: k.Value, Title: v.Value})
	}
	*e = out
	return nil
}

// MarshalYAML encodes entries as an ordered mapping.
func (e Entries) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range e {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Code},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Title},
		)
	}
	return node, nil
}

// Title returns the title for code.
func (c *Codelist) Title(code string) (string, bool) {
	for _, e := range c.Entries {
		if e.Code == code {
			return e.Title, true
		}
	}
	return "", false
}

// Lookup resolves codelists by identifier.
type Lookup interface {
	Lookup(id string) (*Codelist, bool)
}

// Store is an immutable in-memory Lookup.
type Store struct {
	lists map[string]*Codelist
}

// NewStore creates a store holding lists. Later lists replace earlier ones with the same ID.
func NewStore(lists ...*Codelist) *Store {
	s := &Store{lists: make(map[string]*Codelist, len(lists))}
	for _, l := range lists {
		s.lists[l.ID] = l
	}
	return s
}

// Lookup returns the codelist with the given identifier.
func (s *Store) Lookup(id string) (*Codelist, bool) {
	if s == nil {
		return nil, false
	}
	l, ok := s.lists[id]
	return l, ok
}

// IDs returns the identifiers of all codelists, sorted.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.lists))
	for id := range s.lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Load reads every *.yaml and *.yml file in dir. The file name without
// extension becomes the codelist identifier.
func Load(fsys fs.FS, dir string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read codelists directory: %w", err)
	}

	var lists []*Codelist
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		ext := path.Ext(de.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, de.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read codelist %s: %w", de.Name(), err)
		}
		var l Codelist
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to parse codelist %s: %w", de.Name(), err)
		}
		l.ID = strings.TrimSuffix(de.Name(), ext)
		lists = append(lists, &l)
	}
	return NewStore(lists...), nil
}
