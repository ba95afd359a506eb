// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{name: "default", level: "", wantWarn: true},
		{name: "debug", level: "debug", wantDebug: true, wantWarn: true},
		{name: "error", level: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			require.NoError(t, err)

			logger.Debug("codelist uri not available", "codelist", "status")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("codelist uri not available")))

			buf.Reset()
			logger.Warn("codelist not found", "codelist", "district")
			out := buf.String()
			if tt.wantWarn {
				assert.Contains(t, out, "codelist not found")
				assert.Contains(t, out, "district")
			} else {
				assert.Empty(t, out)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
