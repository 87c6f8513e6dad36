// README: Gemini-backed TextGenerator using Google's official SDK.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements TextGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider initialises a Gemini client with the given API key.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Close releases the underlying client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateText issues one generation call with the given sampling parameters.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string, params Params) (string, error) {
	model := p.client.GenerativeModel(params.Model)
	model.SetTemperature(params.Temperature)
	model.SetMaxOutputTokens(params.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &EmptyResponseError{Feedback: promptFeedback(resp)}
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, okText := part.(genai.Text)
		if !okText || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", &EmptyResponseError{Feedback: promptFeedback(resp)}
	}

	return strings.Join(textParts, "\n"), nil
}

func promptFeedback(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.PromptFeedback == nil {
		return "none"
	}
	return fmt.Sprintf("block_reason=%v", resp.PromptFeedback.BlockReason)
}
