package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAmountUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected float64
	}{
		{"plain number", "value: 292000", 292000},
		{"quoted french format", `value: "292 000"`, 292000},
		{"comma decimal", `value: "1,5"`, 1.5},
		{"dot thousands comma decimal", `value: "1.234,56"`, 1234.56},
		{"plain decimal", "value: 12.5", 12.5},
		{"garbage falls back to zero", `value: "abc"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Value Amount `yaml:"value"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &out))
			assert.Equal(t, tt.expected, float64(out.Value))
		})
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected float64
	}{
		{"plain number", `{"value": 292000}`, 292000},
		{"quoted french format", `{"value": "292 000"}`, 292000},
		{"quoted comma decimal", `{"value": "0,75"}`, 0.75},
		{"null", `{"value": null}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Value Amount `json:"value"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.json), &out))
			assert.Equal(t, tt.expected, float64(out.Value))
		})
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Value Amount `json:"value"`
	}{Value: 1234.56})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 1234.56}`, string(data))
}
