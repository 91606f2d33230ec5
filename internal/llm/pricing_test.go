package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		name    string
		modelID string
		known   bool
	}{
		{"anthropic sonnet", "claude-sonnet-4-20250514", true},
		{"anthropic haiku", "claude-haiku-4-5-20251001", true},
		{"openai mini", "gpt-4o-mini", true},
		{"gemini flash", "gemini-2.5-flash", true},
		{"unknown model", "some-future-model", false},
		{"empty id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupCost(tt.modelID)
			if !tt.known {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Greater(t, got.InputPerMTok, 0.0)
			assert.Greater(t, got.OutputPerMTok, got.InputPerMTok)
		})
	}
}

func TestModelCostCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}

	tests := []struct {
		name   string
		input  int
		output int
		want   float64
	}{
		{"zero tokens", 0, 0, 0},
		{"input only", 1_000_000, 0, 3},
		{"output only", 0, 1_000_000, 15},
		{"mixed", 500_000, 100_000, 3},
		{"small request", 1000, 500, 0.0105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.Cost(tt.input, tt.output), 1e-9)
		})
	}
}

func TestLookupCostReturnsCopy(t *testing.T) {
	a := LookupCost("gpt-4o")
	require.NotNil(t, a)
	a.InputPerMTok = 999

	b := LookupCost("gpt-4o")
	require.NotNil(t, b)
	assert.NotEqual(t, 999.0, b.InputPerMTok)
}
