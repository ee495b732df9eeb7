package gemini

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrMissingAPIKey is returned by Config.Validate when no key is set.
	ErrMissingAPIKey = errors.New("gemini: API key is required")

	// ErrMissingModel is returned by Config.Validate when no model is set.
	ErrMissingModel = errors.New("gemini: model is required")

	// ErrEmptyResponse means the API answered without any candidate content.
	ErrEmptyResponse = errors.New("gemini: response has no candidates")
)

// Config holds the Gemini client configuration.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string // optional endpoint override, e.g. a proxy or test server
	APIVersion string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return ErrMissingModel
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return nil
}

// Request is a single generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string
	Parts []Part
}

// Part holds a text segment of a message.
type Part struct {
	Text string
}

// Response is the first candidate of a generation response.
type Response struct {
	Content      Content
	FinishReason string
	Usage        *Usage
}

// Text concatenates the text of all parts in the response content.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
