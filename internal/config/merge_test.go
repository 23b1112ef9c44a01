// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_ValidateFlag(t *testing.T) {
	tests := []struct {
		name string
		base bool
		body string
		want bool
	}{
		{name: "file turns validation off", base: true, body: "analysis:\n  validate: false\n", want: false},
		{name: "file turns validation on", base: false, body: "analysis:\n  validate: true\n", want: true},
		{name: "unset keeps current value", base: true, body: "analysis:\n  window: 8\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Analysis.Validate = tt.base
			require.NoError(t, cfg.merge([]byte(tt.body)))
			assert.Equal(t, tt.want, cfg.Analysis.Validate)
		})
	}
}
