// README: OpenAI-backed TextGenerator (chat completions via the official SDK).
package ai

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements TextGenerator using OpenAI chat completions.
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider builds a provider authenticated with the given API key.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

// GenerateText issues one chat completion with the given sampling parameters.
func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string, params Params) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(params.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(float64(params.Temperature)),
		MaxCompletionTokens: openai.Int(int64(params.MaxOutputTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &EmptyResponseError{Feedback: "empty choices"}
	}
	return resp.Choices[0].Message.Content, nil
}
