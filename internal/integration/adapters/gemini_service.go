// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finance-tracker/analytics/internal/application/adapter"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements the ExplanationService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// ExplainDebtPlan asks Gemini for a short narrative of the payoff plan.
func (s *GeminiService) ExplainDebtPlan(ctx context.Context, summary *adapter.DebtPlanSummary) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	prompt, err := buildExplanationPrompt(summary)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	explanation, err := parseExplanationResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return explanation, nil
}

// buildExplanationPrompt creates the prompt for Gemini. Every number in the
// explanation must come from the summary.
func buildExplanationPrompt(summary *adapter.DebtPlanSummary) (string, error) {
	facts, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`You explain debt payoff plans to people with no finance background.

RULES:
- Use only the numbers present in the facts below. Never compute or invent new figures.
- Two to four sentences, plain language, no markdown.
- Strategy "avalanche" pays the highest interest rate first. "snowball" pays the smallest balance first.
- If Converged is false the plan never finishes within 30 years; say so and suggest raising the payment.
- If NegativeAmortization lists debts, warn that their minimum payment does not cover the interest.

FACTS:
`)
	sb.Write(facts)
	sb.WriteString(`

RESPONSE FORMAT: {"explanation": "string"}
`)

	return sb.String(), nil
}

// geminiExplanation represents the raw response from Gemini.
type geminiExplanation struct {
	Explanation string `json:"explanation"`
}

// parseExplanationResponse extracts the explanation text from the Gemini response.
func parseExplanationResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var parsed geminiExplanation
	if err := json.Unmarshal([]byte(textContent), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	explanation := strings.TrimSpace(parsed.Explanation)
	if explanation == "" {
		return "", fmt.Errorf("empty explanation in response")
	}
	return explanation, nil
}
