package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-verification",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{"type": "boolean"},
			"feedback":   map[string]any{"type": "string"},
		},
		"required":             []any{"is_correct", "feedback"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"is_correct": true, "feedback": "nice"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("validateResponse() = %v, want nil", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	raw := json.RawMessage(`{"is_correct": true}`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("validateResponse() = %v, want ErrInvalidResponse", err)
	}
	if string(inv.Content) != string(raw) {
		t.Error("ErrInvalidResponse does not carry the offending content")
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"is_correct":`)
	var inv *ErrInvalidResponse
	if err := validateResponse(testSchema, raw); !errors.As(err, &inv) {
		t.Fatalf("validateResponse() = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Errorf("validateResponse(nil schema) = %v, want nil", err)
	}
}
