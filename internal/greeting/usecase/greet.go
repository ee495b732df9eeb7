package usecase

import (
	"context"
	"fmt"

	"gemini-hello/internal/greeting"
	"gemini-hello/pkg/gemini"
)

// Greet sends greeting.Prompt as a single user message. There is no retry:
// the first failure is returned to the caller.
func (uc *implUseCase) Greet(ctx context.Context) (greeting.Output, error) {
	req := &gemini.Request{
		Messages: []gemini.Content{
			{
				Role:  gemini.RoleUser,
				Parts: []gemini.Part{{Text: greeting.Prompt}},
			},
		},
	}

	uc.l.Debugf(ctx, "greeting.usecase.Greet: sending prompt to model %s", uc.llm.Model())

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Debugf(ctx, "greeting.usecase.Greet: generate content: %v", err)
		return greeting.Output{}, fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		uc.l.Debugf(ctx, "greeting.usecase.Greet: empty completion (finish reason %q)", resp.FinishReason)
		return greeting.Output{}, greeting.ErrEmptyText
	}

	out := greeting.Output{
		Text:         text,
		Model:        uc.llm.Model(),
		FinishReason: resp.FinishReason,
	}
	if resp.Usage != nil {
		out.Usage = greeting.Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	uc.l.Infof(ctx, "greeting.usecase.Greet: model=%s tokens=%d", out.Model, out.Usage.TotalTokens)
	return out, nil
}
