// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/finance-tracker/analytics/internal/application/adapter"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}}},
		},
	}
}

func TestGeminiService_IsAvailable(t *testing.T) {
	if NewGeminiService("", "").IsAvailable() {
		t.Error("expected service without key to be unavailable")
	}
	if !NewGeminiService("key", "").IsAvailable() {
		t.Error("expected service with key to be available")
	}
	if NewGeminiService("key", "").modelName != DefaultGeminiModel {
		t.Error("expected default model")
	}
}

func TestGeminiService_ExplainDebtPlanNotConfigured(t *testing.T) {
	_, err := NewGeminiService("", "").ExplainDebtPlan(context.Background(), &adapter.DebtPlanSummary{})
	if err == nil {
		t.Error("expected error when not configured")
	}
}

func TestBuildExplanationPrompt(t *testing.T) {
	prompt, err := buildExplanationPrompt(&adapter.DebtPlanSummary{
		Strategy:      "avalanche",
		ExtraPayment:  200,
		DebtFreeMonth: 18,
		Converged:     true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"Strategy": "avalanche"`, `"DebtFreeMonth": 18`, "RESPONSE FORMAT"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestParseExplanationResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
		wantErr  bool
	}{
		{"plain json", textResponse(`{"explanation": "Pay the card first."}`), "Pay the card first.", false},
		{"fenced json", textResponse("```json\n{\"explanation\": \" Done in 18 months. \"}\n```"), "Done in 18 months.", false},
		{"nil response", nil, "", true},
		{"no candidates", &genai.GenerateContentResponse{}, "", true},
		{"invalid json", textResponse("sure, here it is"), "", true},
		{"empty explanation", textResponse(`{"explanation": ""}`), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExplanationResponse(tt.resp)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
