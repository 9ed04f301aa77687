package llm

import (
	"context"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `[1]`, `[1]`},
		{"json fence", "```json\n[1]\n```", `[1]`},
		{"plain fence", "```\n[1]\n```", `[1]`},
		{"leading whitespace", "  ```json\n[1]\n```  ", `[1]`},
		{"unterminated fence", "```json\n[1]", `[1]`},
	}
	for _, tt := range tests {
		if got := StripFences(tt.in); got != tt.want {
			t.Errorf("%s: StripFences = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("PurposeFrom(empty) = %s, want unknown", got)
	}
	ctx = WithPurpose(ctx, PurposeFlashcards)
	if got := PurposeFrom(ctx); got != PurposeFlashcards {
		t.Errorf("PurposeFrom = %s, want %s", got, PurposeFlashcards)
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"friendly": "vendor-id-1"}
	if got := resolveModel("friendly", models); got != "vendor-id-1" {
		t.Errorf("resolveModel = %s", got)
	}
	if got := resolveModel("vendor-id-9", models); got != "vendor-id-9" {
		t.Errorf("unmapped name must pass through, got %s", got)
	}
}
