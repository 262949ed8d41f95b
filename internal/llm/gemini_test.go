package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"advice":     map[string]any{"type": "string"},
			"score":      map[string]any{"type": "integer"},
			"matchLevel": map[string]any{"type": "string", "enum": []any{"high", "medium", "low"}},
			"gapPoints": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
		},
		"required": []any{"advice", "matchLevel"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["advice"].Type != "STRING" {
		t.Fatalf("expected STRING for advice, got %s", schema.Properties["advice"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["matchLevel"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["matchLevel"].Enum))
	}
	if schema.Properties["gapPoints"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for gapPoints, got %s", schema.Properties["gapPoints"].Type)
	}
	if schema.Properties["gapPoints"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for gapPoints items, got %s", schema.Properties["gapPoints"].Items.Type)
	}
	if mi := schema.Properties["gapPoints"].MinItems; mi == nil || *mi != 1 {
		t.Fatalf("expected minItems 1, got %v", mi)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
