// README: Generation client; gates on configuration and absorbs backend failures into Results.
package ai

import (
	"context"
	"errors"

	logx "github.com/sankalp69/AI-travel-planner/pkg/logger"
)

// Client wraps a TextGenerator behind the configured gate. Every backend
// failure is converted into a Result at this boundary so callers never
// handle transport faults themselves.
type Client struct {
	provider TextGenerator
	name     string
}

// NewClient builds a Client over the given provider. A nil provider means
// the backend credential was never configured; every call then short-circuits
// with a not-configured Result and no network attempt is made.
func NewClient(provider TextGenerator, name string) *Client {
	return &Client{provider: provider, name: name}
}

// Configured reports whether a generation backend is available.
func (c *Client) Configured() bool {
	return c != nil && c.provider != nil
}

// Generate runs one generation call for the named task. It never returns an
// error: empty responses and backend faults come back as tagged Results.
func (c *Client) Generate(ctx context.Context, task, prompt string, p Params) Result {
	if !c.Configured() {
		return notConfigured()
	}

	logx.Info().
		Str("provider", c.name).
		Str("task", task).
		Str("model", p.Model).
		Float32("temperature", p.Temperature).
		Msg("generating")

	text, err := c.provider.GenerateText(ctx, prompt, p)
	if err != nil {
		var emptyErr *EmptyResponseError
		if errors.As(err, &emptyErr) {
			logx.Warn().Str("task", task).Str("feedback", emptyErr.Feedback).Msg("empty or blocked response")
			return empty(emptyErr.Feedback)
		}
		logx.Error().Str("task", task).Err(err).Msg("generation failed")
		return fault(err)
	}

	logx.Info().Str("task", task).Int("chars", len(text)).Msg("generated")
	return ok(text)
}
