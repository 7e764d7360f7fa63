package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ten digit national", "5551234567", "+15551234567"},
		{"eleven digits with country code", "15551234567", "+15551234567"},
		{"already e164", "+15551234567", "+15551234567"},
		{"foreign e164 untouched", "+445551234567", "+445551234567"},
		{"formatted national", "(555) 123-4567", "+15551234567"},
		{"formatted with country code", "1-555-123-4567", "+15551234567"},
		{"unknown length gets plus prefix", "555123", "+555123"},
		{"empty", "", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
