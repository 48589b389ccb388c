package n8n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	n8n "github.com/n8nsdk/n8n-go"
)

func TestCompatibleServerVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.0.0", true},
		{"1.45.2", true},
		{"2.0.0", true},
		{"0.236.3", false},
		{"not-a-version", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, n8n.CompatibleServerVersion(tt.version))
		})
	}
}
