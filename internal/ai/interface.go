// README: Vendor boundary for text generation; providers implement TextGenerator.
package ai

import (
	"context"
	"fmt"
)

// Params are the sampling parameters for a single generation call.
type Params struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// TextGenerator is the contract a generation backend must satisfy.
// Implementations return the generated text, or an error; an
// *EmptyResponseError marks a response with no usable content (for
// example when the backend's safety filtering blocked the prompt).
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, p Params) (string, error)
}

// EmptyResponseError reports a backend response that contained no content
// parts. Feedback carries any metadata the backend supplied about why.
type EmptyResponseError struct {
	Feedback string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty or blocked response (feedback: %s)", e.Feedback)
}
