package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    map[string]interface{}
		wantErr string
	}{
		{
			name: "empty document",
			data: map[string]interface{}{},
		},
		{
			name: "numeric version",
			data: map[string]interface{}{"version": 1.0},
		},
		{
			name: "extension section",
			data: map[string]interface{}{"logging": map[string]interface{}{"level": "debug"}},
		},
		{
			name: "valid nested values",
			data: map[string]interface{}{
				"form":    map[string]interface{}{"submit_delay": "1s", "success_rate": 0.5},
				"sidebar": map[string]interface{}{"breakpoint": 640},
			},
		},
		{
			name:    "unknown form key",
			data:    map[string]interface{}{"form": map[string]interface{}{"colour": "red"}},
			wantErr: "/form",
		},
		{
			name:    "wrong type",
			data:    map[string]interface{}{"sidebar": map[string]interface{}{"breakpoint": "wide"}},
			wantErr: "/sidebar/breakpoint",
		},
		{
			name:    "bad duration string",
			data:    map[string]interface{}{"form": map[string]interface{}{"shake": "quickly"}},
			wantErr: "/form/shake",
		},
		{
			name: "link missing text",
			data: map[string]interface{}{"navigation": map[string]interface{}{
				"links": []interface{}{map[string]interface{}{"id": "a"}},
			}},
			wantErr: "/navigation/links/0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
