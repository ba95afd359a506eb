// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package transform

// Rules is an immutable ordered mapping of property path to operations.
type Rules struct {
	paths []string
	ops   map[string][]Operation
}

// Paths returns the rule paths in insertion order.
func (r Rules) Paths() []string {
	return append([]string(nil), r.paths...)
}

// Get returns the operations for path.
func (r Rules) Get(path string) []Operation {
	return append([]Operation(nil), r.ops[path]...)
}

// Len returns the number of paths with rules.
func (r Rules) Len() int {
	return len(r.paths)
}

// WithSubstitutions returns a copy with every {{key}} placeholder in
// templates replaced by its value in subs.
func (r Rules) WithSubstitutions(subs map[string]string) Rules {
	out := Rules{paths: r.Paths(), ops: make(map[string][]Operation, len(r.ops))}
	for path, ops := range r.ops {
		replaced := make([]Operation, len(ops))
		for i, op := range ops {
			replaced[i] = op.substitute(subs)
		}
		out.ops[path] = replaced
	}
	return out
}

// Builder accumulates rules. Operations for the same path are appended in
// insertion order.
type Builder struct {
	paths []string
	ops   map[string][]Operation
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{ops: make(map[string][]Operation)}
}

// Put appends ops for path.
func (b *Builder) Put(path string, ops ...Operation) *Builder {
	if len(ops) == 0 {
		return b
	}
	if _, ok := b.ops[path]; !ok {
		b.paths = append(b.paths, path)
	}
	b.ops[path] = append(b.ops[path], ops...)
	return b
}

// Build returns the accumulated rules.
func (b *Builder) Build() Rules {
	r := Rules{paths: append([]string(nil), b.paths...), ops: make(map[string][]Operation, len(b.ops))}
	for path, ops := range b.ops {
		r.ops[path] = append([]Operation(nil), ops...)
	}
	return r
}
