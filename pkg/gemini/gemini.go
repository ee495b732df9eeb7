package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiImpl struct {
	client *genai.Client
	model  string
}

// newGeminiImpl creates a new Gemini implementation on top of the genai SDK
func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.APIURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &geminiImpl{client: client, model: cfg.Model}, nil
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents, config := g.transformRequest(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}

	return g.transformResponse(resp)
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// transformRequest converts request to genai format
func (g *geminiImpl) transformRequest(req *Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := make([]*genai.Content, len(req.Messages))
	for i, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		contents[i] = &genai.Content{Role: role, Parts: transformParts(msg.Parts)}
	}

	if req.SystemInstruction == nil && req.Temperature <= 0 && req.MaxTokens <= 0 {
		return contents, nil
	}

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		config.SystemInstruction = &genai.Content{Parts: transformParts(req.SystemInstruction.Parts)}
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	return contents, config
}

func transformParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, len(parts))
	for i, part := range parts {
		out[i] = genai.NewPartFromText(part.Text)
	}
	return out
}

// transformResponse converts the first candidate into the package Response
func (g *geminiImpl) transformResponse(resp *genai.GenerateContentResponse) (*Response, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	parts := make([]Part, 0, len(candidate.Content.Parts))
	for _, p := range candidate.Content.Parts {
		if p == nil || p.Thought || p.Text == "" {
			continue
		}
		parts = append(parts, Part{Text: p.Text})
	}

	out := &Response{
		Content:      Content{Role: candidate.Content.Role, Parts: parts},
		FinishReason: string(candidate.FinishReason),
		Usage:        &Usage{},
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage.InputTokens = int(u.PromptTokenCount)
		out.Usage.OutputTokens = int(u.CandidatesTokenCount)
		out.Usage.TotalTokens = int(u.TotalTokenCount)
	}
	return out, nil
}
