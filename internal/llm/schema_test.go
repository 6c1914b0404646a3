package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var adviceSchema = &Schema{
	Name: "test-advice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill":  map[string]any{"type": "string", "enum": []any{"speaking", "writing"}},
			"drills": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []any{"skill"},
		"additionalProperties": false,
	},
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"skill":"speaking","drills":["a"]}`, false},
		{"missing required", `{"drills":[]}`, true},
		{"bad enum", `{"skill":"dancing"}`, true},
		{"extra field", `{"skill":"writing","x":1}`, true},
		{"not json", `{skill`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(adviceSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			var inv *ErrInvalidResponse
			if err != nil && !errors.As(err, &inv) {
				t.Errorf("error type %T", err)
			}
		})
	}
	if err := Validate(nil, json.RawMessage(`garbage`)); err != nil {
		t.Errorf("nil schema: %v", err)
	}
}

func TestMockValidatesStructuredOutput(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: json.RawMessage(`{"skill":"x"}`)})
	req := UserPrompt("sys", "user")
	req.Schema = adviceSchema
	_, err := m.Generate(t.Context(), req)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected invalid response, got %v", err)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(adviceSchema.Definition)
	if s.Type != "OBJECT" {
		t.Errorf("type = %q", s.Type)
	}
	if len(s.Required) != 1 || s.Required[0] != "skill" {
		t.Errorf("required = %v", s.Required)
	}
	if got := s.Properties["skill"].Enum; len(got) != 2 {
		t.Errorf("enum = %v", got)
	}
	if s.Properties["drills"].Items == nil || s.Properties["drills"].Items.Type != "STRING" {
		t.Errorf("items = %+v", s.Properties["drills"].Items)
	}
}
