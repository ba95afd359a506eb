// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// readPayload reads a JSON object or an array of objects from path, or from
// in when path is "-". It reports whether the input was a single object.
func readPayload(path string, in io.Reader) ([]map[string]any, bool, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path is provided by the user
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read input: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false, fmt.Errorf("invalid input JSON: %w", err)
	}

	switch t := v.(type) {
	case map[string]any:
		return []map[string]any{t}, true, nil
	case []any:
		out := make([]map[string]any, len(t))
		for i, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, false, fmt.Errorf("input element %d is not an object", i)
			}
			out[i] = m
		}
		return out, false, nil
	}
	return nil, false, errors.New("input must be an object or an array of objects")
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
